package postscript

import (
	"context"
	"fmt"
	"net/url"
)

var shopHandlers = map[Action]Handler{
	ActionGet:                   shopGet,
	ActionGetStats:              shopGetStats,
	ActionGetComplianceSettings: shopGetComplianceSettings,
}

func shopGet(ctx context.Context, client Client, _ ParamSource) (interface{}, error) {
	return client.Shop().Get(ctx)
}

func shopGetStats(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	dateRange, err := params.String("dateRange")
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("range", dateRange)
	query.Set("include_breakdown", fmt.Sprintf("%t", params.BoolOr("includeBreakdown", false)))

	if dateRange == "custom" {
		query.Set("start_date", params.StringOr("startDate", ""))
		query.Set("end_date", params.StringOr("endDate", ""))
	}

	return client.Shop().GetStats(ctx, query)
}

func shopGetComplianceSettings(ctx context.Context, client Client, _ ParamSource) (interface{}, error) {
	return client.Shop().GetComplianceSettings(ctx)
}
