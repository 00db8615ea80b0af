package postscript

import (
	"context"
	"net/url"
	"strconv"
)

var campaignHandlers = map[Action]Handler{
	ActionGetAll:   campaignGetAll,
	ActionGet:      campaignGet,
	ActionGetStats: campaignGetStats,
	ActionSchedule: campaignSchedule,
}

func campaignGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	filters := params.Object("filters")
	query := url.Values{}

	if status, ok := objString(filters, "status"); ok && status != "" {
		query.Set("status", status)
	}

	for _, key := range []string{"created_after", "created_before"} {
		raw, ok := filters[key]
		if !ok {
			continue
		}

		formatted, err := FormatDate(raw)
		if err != nil {
			return nil, err
		}

		query.Set(key, formatted)
	}

	if params.BoolOr("returnAll", false) {
		return client.Campaigns().ListAll(ctx, query)
	}

	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Campaigns().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func campaignGet(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	campaignID, err := params.String("campaignId")
	if err != nil {
		return nil, err
	}

	return client.Campaigns().Get(ctx, campaignID)
}

func campaignGetStats(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	campaignID, err := params.String("campaignId")
	if err != nil {
		return nil, err
	}

	return client.Campaigns().GetStats(ctx, campaignID, params.BoolOr("includeDetails", false))
}

func campaignSchedule(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	campaignID, err := params.String("campaignId")
	if err != nil {
		return nil, err
	}

	sendAt, err := params.String("sendAt")
	if err != nil {
		return nil, err
	}

	formatted, err := FormatDate(sendAt)
	if err != nil {
		return nil, err
	}

	request := CampaignScheduleRequest{"send_at": formatted}
	for key, value := range params.Object("options") {
		request[key] = value
	}

	return client.Campaigns().Schedule(ctx, campaignID, request)
}
