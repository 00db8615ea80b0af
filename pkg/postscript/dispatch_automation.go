package postscript

import (
	"context"
	"net/url"
	"strconv"
)

var automationHandlers = map[Action]Handler{
	ActionGetAll:   automationGetAll,
	ActionGet:      automationGet,
	ActionGetStats: automationGetStats,
	ActionTrigger:  automationTrigger,
	ActionEnable:   automationEnable,
	ActionDisable:  automationDisable,
}

func automationGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	filters := params.Object("filters")
	query := url.Values{}

	if status, ok := objString(filters, "status"); ok && status != "" {
		query.Set("status", status)
	}

	if triggerType, ok := objString(filters, "trigger_type"); ok && triggerType != "" {
		query.Set("trigger_type", triggerType)
	}

	if params.BoolOr("returnAll", false) {
		return client.Automations().ListAll(ctx, query)
	}

	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Automations().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func automationGet(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	automationID, err := params.String("automationId")
	if err != nil {
		return nil, err
	}

	return client.Automations().Get(ctx, automationID)
}

func automationGetStats(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	automationID, err := params.String("automationId")
	if err != nil {
		return nil, err
	}

	dateRange, err := params.String("dateRange")
	if err != nil {
		return nil, err
	}

	return client.Automations().GetStats(ctx, automationID, dateRange)
}

func automationTrigger(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	automationID, err := params.String("automationId")
	if err != nil {
		return nil, err
	}

	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	request := &AutomationTriggerRequest{SubscriberID: subscriberID}

	options := params.Object("options")

	if properties, ok := objString(options, "properties"); ok {
		parsed, err := parseJSONObject("properties", properties)
		if err != nil {
			return nil, err
		}

		request.Properties = parsed
	}

	if skipDelay, ok := objBool(options, "skipDelay"); ok {
		request.SkipDelay = &skipDelay
	}

	return client.Automations().Trigger(ctx, automationID, request)
}

func automationEnable(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	automationID, err := params.String("automationId")
	if err != nil {
		return nil, err
	}

	return client.Automations().Enable(ctx, automationID)
}

func automationDisable(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	automationID, err := params.String("automationId")
	if err != nil {
		return nil, err
	}

	return client.Automations().Disable(ctx, automationID)
}
