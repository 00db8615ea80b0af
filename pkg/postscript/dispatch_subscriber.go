package postscript

import (
	"context"
	"strconv"
)

var subscriberHandlers = map[Action]Handler{
	ActionGetAll:           subscriberGetAll,
	ActionGet:              subscriberGet,
	ActionGetByPhone:       subscriberGetByPhone,
	ActionCreate:           subscriberCreate,
	ActionUpdate:           subscriberUpdate,
	ActionUnsubscribe:      subscriberUnsubscribe,
	ActionAddTag:           subscriberAddTag,
	ActionRemoveTag:        subscriberRemoveTag,
	ActionUpdateProperties: subscriberUpdateProperties,
}

func subscriberGetAll(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	query, err := BuildSubscriberQuery(params.Object("filters"))
	if err != nil {
		return nil, err
	}

	if params.BoolOr("returnAll", false) {
		return client.Subscribers().ListAll(ctx, query)
	}

	query.Set("limit", strconv.Itoa(params.IntOr("limit", DefaultListLimit)))

	list, err := client.Subscribers().List(ctx, query)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

func subscriberGet(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	return client.Subscribers().Get(ctx, subscriberID)
}

func subscriberGetByPhone(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	phoneNumber, err := params.String("phoneNumber")
	if err != nil {
		return nil, err
	}

	formatted, err := NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	return client.Subscribers().GetByPhone(ctx, formatted)
}

func subscriberCreate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	phoneNumber, err := params.String("phoneNumber")
	if err != nil {
		return nil, err
	}

	formatted, err := NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	keywordID, err := params.String("keywordId")
	if err != nil {
		return nil, err
	}

	request := &SubscriberCreateRequest{
		PhoneNumber: formatted,
		KeywordID:   keywordID,
	}

	additional := params.Object("additionalFields")

	if email, ok := objString(additional, "email"); ok {
		request.Email = email
	}

	if firstName, ok := objString(additional, "first_name"); ok {
		request.FirstName = firstName
	}

	if lastName, ok := objString(additional, "last_name"); ok {
		request.LastName = lastName
	}

	if origin, ok := objString(additional, "origin"); ok {
		request.Origin = origin
	}

	if tags, ok := objString(additional, "tags"); ok {
		request.Tags = splitCSV(tags)
	}

	if properties, ok := objString(additional, "properties"); ok {
		parsed, err := parseJSONObject("properties", properties)
		if err != nil {
			return nil, err
		}

		request.Properties = parsed
	}

	return client.Subscribers().Create(ctx, request)
}

func subscriberUpdate(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	updates := SubscriberUpdateRequest{}
	for key, value := range params.Object("updateFields") {
		updates[key] = value
	}

	if phoneNumber, ok := updates["phone_number"].(string); ok && phoneNumber != "" {
		formatted, err := NormalizePhoneNumber(phoneNumber)
		if err != nil {
			return nil, err
		}

		updates["phone_number"] = formatted
	}

	return client.Subscribers().Update(ctx, subscriberID, updates)
}

func subscriberUnsubscribe(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	return client.Subscribers().Unsubscribe(ctx, subscriberID)
}

func subscriberAddTag(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	tagName, err := params.String("tagName")
	if err != nil {
		return nil, err
	}

	return client.Subscribers().AddTag(ctx, subscriberID, tagName)
}

func subscriberRemoveTag(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	tagName, err := params.String("tagName")
	if err != nil {
		return nil, err
	}

	if err := client.Subscribers().RemoveTag(ctx, subscriberID, tagName); err != nil {
		return nil, err
	}

	return &Ack{Success: true}, nil
}

func subscriberUpdateProperties(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	subscriberID, err := params.String("subscriberId")
	if err != nil {
		return nil, err
	}

	properties, err := params.String("properties")
	if err != nil {
		return nil, err
	}

	parsed, err := parseJSONObject("properties", properties)
	if err != nil {
		return nil, err
	}

	return client.Subscribers().UpdateProperties(ctx, subscriberID, parsed)
}
