package postscript

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

var keywordHandlers = map[Action]Handler{
	ActionGetAll: keywordGetAll,
	ActionGet:    keywordGet,
	ActionCreate: keywordCreate,
	ActionUpdate: keywordUpdate,
	ActionDelete: keywordDelete,
}

func keywordGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	filters := params.Object("filters")
	query := url.Values{}

	if active, ok := objBool(filters, "active"); ok {
		query.Set("active", fmt.Sprintf("%t", active))
	}

	if params.BoolOr("returnAll", false) {
		return client.Keywords().ListAll(ctx, query)
	}

	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Keywords().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func keywordGet(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	keywordID, err := params.String("keywordId")
	if err != nil {
		return nil, err
	}

	return client.Keywords().Get(ctx, keywordID)
}

func keywordCreate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	keyword, err := params.String("keyword")
	if err != nil {
		return nil, err
	}

	responseMessage, err := params.String("responseMessage")
	if err != nil {
		return nil, err
	}

	request := &KeywordCreateRequest{
		Keyword:         keyword,
		ResponseMessage: responseMessage,
	}

	additional := params.Object("additionalFields")

	if tagIDs, ok := objString(additional, "tag_ids"); ok {
		request.TagIDs = splitCSV(tagIDs)
	}

	if automationID, ok := objString(additional, "automation_id"); ok {
		request.AutomationID = automationID
	}

	return client.Keywords().Create(ctx, request)
}

func keywordUpdate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	keywordID, err := params.String("keywordId")
	if err != nil {
		return nil, err
	}

	updates := KeywordUpdateRequest{}
	for key, value := range params.Object("updateFields") {
		updates[key] = value
	}

	if tagIDs, ok := updates["tag_ids"].(string); ok {
		updates["tag_ids"] = splitCSV(tagIDs)
	}

	return client.Keywords().Update(ctx, keywordID, updates)
}

func keywordDelete(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	keywordID, err := params.String("keywordId")
	if err != nil {
		return nil, err
	}

	if err := client.Keywords().Delete(ctx, keywordID); err != nil {
		return nil, err
	}

	return &Ack{Success: true}, nil
}
