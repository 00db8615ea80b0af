package postscript

import (
	"context"
	"net/url"
	"strconv"
)

var messageHandlers = map[Action]Handler{
	ActionGetAll:   messageGetAll,
	ActionGet:      messageGet,
	ActionSend:     messageSend,
	ActionSendMMS:  messageSendMMS,
	ActionGetStats: messageGetStats,
}

func messageGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	filters := params.Object("filters")
	query := url.Values{}

	if subscriberID, ok := objString(filters, "subscriber_id"); ok && subscriberID != "" {
		query.Set("subscriber_id", subscriberID)
	}

	if status, ok := objString(filters, "status"); ok && status != "" {
		query.Set("status", status)
	}

	for _, key := range []string{"sent_after", "sent_before"} {
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
		return client.Messages().ListAll(ctx, query)
	}

	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Messages().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func messageGet(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	messageID, err := params.String("messageId")
	if err != nil {
		return nil, err
	}

	return client.Messages().Get(ctx, messageID)
}

func messageSend(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	body, err := params.String("body")
	if err != nil {
		return nil, err
	}

	return client.Messages().Send(ctx, subscriberID, body, messageOptionsFrom(params.Object("options")))
}

func messageSendMMS(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	body, err := params.String("body")
	if err != nil {
		return nil, err
	}

	mediaURL, err := params.String("mediaUrl")
	if err != nil {
		return nil, err
	}

	return client.Messages().SendMMS(ctx, subscriberID, body, mediaURL, messageOptionsFrom(params.Object("options")))
}

func messageGetStats(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	dateRange, err := params.String("dateRange")
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("range", dateRange)

	if dateRange == "custom" {
		query.Set("start_date", params.StringOr("startDate", ""))
		query.Set("end_date", params.StringOr("endDate", ""))
	}

	return client.Messages().GetStats(ctx, query)
}

// messageOptionsFrom reads the optional send fields from a host-supplied
// options object. Pointer fields keep an explicit false distinct from absent.
func messageOptionsFrom(obj map[string]interface{}) *MessageOptions {
	options := &MessageOptions{}

	if mediaURL, ok := objString(obj, "mediaUrl"); ok {
		options.MediaURL = mediaURL
	}

	if keywordID, ok := objString(obj, "keywordId"); ok {
		options.KeywordID = keywordID
	}

	if skipFatigue, ok := objBool(obj, "skipFatigue"); ok {
		options.SkipFatigue = &skipFatigue
	}

	if useShortLinks, ok := objBool(obj, "useShortLinks"); ok {
		options.UseShortLinks = &useShortLinks
	}

	return options
}
