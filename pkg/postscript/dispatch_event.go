package postscript

import "context"

var eventHandlers = map[Action]Handler{
	ActionTrack:          eventTrack,
	ActionTrackEcommerce: eventTrackEcommerce,
	ActionGetTypes:       eventGetTypes,
}

func eventTrack(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	eventType, err := params.String("eventType")
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

	request := &EventTrackRequest{
		EventType:  eventType,
		Properties: parsed,
	}

	if err := setEventIdentifier(request, params); err != nil {
		return nil, err
	}

	options := params.Object("options")
	if occurredAt, ok := options["occurred_at"]; ok {
		formatted, err := FormatDate(occurredAt)
		if err != nil {
			return nil, err
		}

		request.OccurredAt = formatted
	}

	return client.Events().Track(ctx, request)
}

func eventTrackEcommerce(ctx context.Context, client Client, params ParamSource) (interface{}, error) {
	eventType, err := params.String("ecommerceEventType")
	if err != nil {
		return nil, err
	}

	request := &EventTrackRequest{
		EventType:  eventType,
		Properties: ecommerceProperties(eventType, params),
	}

	if err := setEventIdentifier(request, params); err != nil {
		return nil, err
	}

	if additional := params.StringOr("additionalProperties", ""); additional != "" {
		parsed, err := parseJSONObject("additionalProperties", additional)
		if err != nil {
			return nil, err
		}

		for key, value := range parsed {
			request.Properties[key] = value
		}
	}

	return client.Events().Track(ctx, request)
}

func eventGetTypes(ctx context.Context, client Client, _ ParamSource) (interface{}, error) {
	return client.Events().GetTypes(ctx)
}

// setEventIdentifier fills exactly one of subscriber_id or phone_number,
// selected by the identifierType parameter.
func setEventIdentifier(request *EventTrackRequest, params ParamSource) error {
	identifierType, err := params.String("identifierType")
	if err != nil {
		return err
	}

	if identifierType == "subscriber_id" {
		subscriberID, err := params.String("subscriberId")
		if err != nil {
			return err
		}

		request.SubscriberID = subscriberID

		return nil
	}

	phoneNumber, err := params.String("phoneNumber")
	if err != nil {
		return err
	}

	formatted, err := NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return err
	}

	request.PhoneNumber = formatted

	return nil
}

// ecommerceProperties assembles the per-event-type property set, skipping
// zero values the same way the host form omits unfilled fields.
func ecommerceProperties(eventType string, params ParamSource) map[string]interface{} {
	properties := map[string]interface{}{}

	set := func(key, value string) {
		if value != "" {
			properties[key] = value
		}
	}

	setNumber := func(key string, value float64) {
		if value != 0 {
			properties[key] = value
		}
	}

	switch eventType {
	case "order_completed":
		set("order_id", params.StringOr("orderId", ""))
		setNumber("order_total", params.FloatOr("orderTotal", 0))
		set("currency", params.StringOr("currency", "USD"))
	case "product_viewed", "added_to_cart", "browse_abandonment":
		set("product_id", params.StringOr("productId", ""))
		set("product_name", params.StringOr("productName", ""))
		setNumber("product_price", params.FloatOr("productPrice", 0))
		set("product_url", params.StringOr("productUrl", ""))
		set("product_image_url", params.StringOr("productImageUrl", ""))
	case "cart_abandonment", "checkout_started":
		set("cart_id", params.StringOr("cartId", ""))
		setNumber("cart_total", params.FloatOr("cartTotal", 0))
		set("cart_url", params.StringOr("cartUrl", ""))
	}

	return properties
}
