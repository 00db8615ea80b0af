package postscript

import (
	"context"
	"net/url"
	"strconv"
)

var segmentHandlers = map[Action]Handler{
	ActionGetAll:         segmentGetAll,
	ActionGet:            segmentGet,
	ActionCreate:         segmentCreate,
	ActionGetSubscribers: segmentGetSubscribers,
	ActionGetCount:       segmentGetCount,
}

func segmentGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	if params.BoolOr("returnAll", false) {
		return client.Segments().ListAll(ctx, nil)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Segments().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func segmentGet(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	segmentID, err := params.String("segmentId")
	if err != nil {
		return nil, err
	}

	return client.Segments().Get(ctx, segmentID)
}

func segmentCreate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	name, err := params.String("name")
	if err != nil {
		return nil, err
	}

	options := params.Object("options")

	request := &SegmentCreateRequest{
		Name:      name,
		MatchType: "all",
	}

	if matchType, ok := objString(options, "matchType"); ok && matchType != "" {
		request.MatchType = matchType
	}

	conditions := params.Object("conditions")
	if values, ok := conditions["conditionValues"].([]interface{}); ok {
		for _, value := range values {
			condition, ok := value.(map[string]interface{})
			if !ok {
				continue
			}

			field, _ := objString(condition, "field")
			operator, _ := objString(condition, "operator")

			request.Conditions = append(request.Conditions, SegmentCondition{
				Field:    field,
				Operator: operator,
				Value:    condition["value"],
			})
		}
	}

	return client.Segments().Create(ctx, request)
}

func segmentGetSubscribers(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	segmentID, err := params.String("segmentId")
	if err != nil {
		return nil, err
	}

	if params.BoolOr("returnAll", false) {
		return client.Segments().ListAllSubscribers(ctx, segmentID)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Segments().ListSubscribers(ctx, segmentID, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func segmentGetCount(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	segmentID, err := params.String("segmentId")
	if err != nil {
		return nil, err
	}

	return client.Segments().GetCount(ctx, segmentID)
}
