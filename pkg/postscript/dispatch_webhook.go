package postscript

import (
	"context"
	"net/url"
	"strconv"
)

var webhookHandlers = map[Action]Handler{
	ActionGetAll: webhookGetAll,
	ActionCreate: webhookCreate,
	ActionUpdate: webhookUpdate,
	ActionDelete: webhookDelete,
}

func webhookGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	if params.BoolOr("returnAll", false) {
		return client.Webhooks().ListAll(ctx)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Webhooks().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func webhookCreate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	webhookURL, err := params.String("url")
	if err != nil {
		return nil, err
	}

	topic, err := params.String("topic")
	if err != nil {
		return nil, err
	}

	request := &WebhookCreateRequest{
		URL:    webhookURL,
		Topic:  topic,
		Format: "json",
	}

	options := params.Object("options")
	if active, ok := objBool(options, "active"); ok {
		request.Active = &active
	}

	return client.Webhooks().Create(ctx, request)
}

func webhookUpdate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	webhookID, err := params.String("webhookId")
	if err != nil {
		return nil, err
	}

	updates := WebhookUpdateRequest{}
	for key, value := range params.Object("updateFields") {
		updates[key] = value
	}

	return client.Webhooks().Update(ctx, webhookID, updates)
}

func webhookDelete(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	webhookID, err := params.String("webhookId")
	if err != nil {
		return nil, err
	}

	if err := client.Webhooks().Delete(ctx, webhookID); err != nil {
		return nil, err
	}

	return &Ack{Success: true}, nil
}
