package postscript

import "encoding/json"

// Meta carries pagination metadata on list responses.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// HasMore reports whether more pages exist after the one described by this
// metadata. The API contract uses the requested limit, not the returned page
// size.
func (m *Meta) HasMore() bool {
	return m.Page*m.Limit < m.Total
}

// ListResponse represents the {data, meta} envelope used by list endpoints.
type ListResponse[T any] struct {
	Data []T   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Subscriber represents a Postscript subscriber.
type Subscriber struct {
	ID          string                 `json:"id,omitempty"`
	PhoneNumber string                 `json:"phone_number"`
	Email       string                 `json:"email,omitempty"`
	FirstName   string                 `json:"first_name,omitempty"`
	LastName    string                 `json:"last_name,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
	Origin      string                 `json:"origin,omitempty"`
	Subscribed  *bool                  `json:"subscribed,omitempty"`
	CreatedAt   string                 `json:"created_at,omitempty"`
	UpdatedAt   string                 `json:"updated_at,omitempty"`
}

// SubscriberCreateRequest is the body for creating a subscriber.
type SubscriberCreateRequest struct {
	PhoneNumber string                 `json:"phone_number"`
	KeywordID   string                 `json:"keyword_id,omitempty"`
	Email       string                 `json:"email,omitempty"`
	FirstName   string                 `json:"first_name,omitempty"`
	LastName    string                 `json:"last_name,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
	Origin      string                 `json:"origin,omitempty"`
}

// SubscriberUpdateRequest is the body for updating a subscriber. Fields are
// free-form because the API accepts partial updates of arbitrary attributes.
type SubscriberUpdateRequest map[string]interface{}

// Message represents a Postscript SMS/MMS message.
type Message struct {
	ID            string `json:"id,omitempty"`
	SubscriberID  string `json:"subscriber_id"`
	Body          string `json:"body"`
	MediaURL      string `json:"media_url,omitempty"`
	KeywordID     string `json:"keyword_id,omitempty"`
	SkipFatigue   *bool  `json:"skip_fatigue,omitempty"`
	UseShortLinks *bool  `json:"use_short_links,omitempty"`
	Status        string `json:"status,omitempty"`
	SentAt        string `json:"sent_at,omitempty"`
	DeliveredAt   string `json:"delivered_at,omitempty"`
}

// MessageOptions holds the optional fields for sending a message. Pointer
// fields distinguish "absent" from an explicit false.
type MessageOptions struct {
	MediaURL      string
	KeywordID     string
	SkipFatigue   *bool
	UseShortLinks *bool
}

// Keyword represents a Postscript keyword.
type Keyword struct {
	ID              string   `json:"id,omitempty"`
	Keyword         string   `json:"keyword"`
	ResponseMessage string   `json:"response_message,omitempty"`
	TagIDs          []string `json:"tag_ids,omitempty"`
	AutomationID    string   `json:"automation_id,omitempty"`
	Active          *bool    `json:"active,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
}

// KeywordCreateRequest is the body for creating a keyword.
type KeywordCreateRequest struct {
	Keyword         string   `json:"keyword"`
	ResponseMessage string   `json:"response_message"`
	TagIDs          []string `json:"tag_ids,omitempty"`
	AutomationID    string   `json:"automation_id,omitempty"`
}

// KeywordUpdateRequest is the body for updating a keyword.
type KeywordUpdateRequest map[string]interface{}

// Campaign represents a Postscript campaign.
type Campaign struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Message   string `json:"message,omitempty"`
	SegmentID string `json:"segment_id,omitempty"`
	SendAt    string `json:"send_at,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CampaignScheduleRequest is the body for scheduling a campaign.
type CampaignScheduleRequest map[string]interface{}

// Automation represents a Postscript automation.
type Automation struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	TriggerType string `json:"trigger_type,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// AutomationTriggerRequest is the body for triggering an automation for a
// subscriber.
type AutomationTriggerRequest struct {
	SubscriberID string                 `json:"subscriber_id"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	SkipDelay    *bool                  `json:"skip_delay,omitempty"`
}

// Segment represents a Postscript segment.
type Segment struct {
	ID         string             `json:"id,omitempty"`
	Name       string             `json:"name"`
	MatchType  string             `json:"match_type,omitempty"`
	Conditions []SegmentCondition `json:"conditions,omitempty"`
	CreatedAt  string             `json:"created_at,omitempty"`
}

// SegmentCondition is one membership condition of a segment.
type SegmentCondition struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// SegmentCreateRequest is the body for creating a segment.
type SegmentCreateRequest struct {
	Name       string             `json:"name"`
	MatchType  string             `json:"match_type"`
	Conditions []SegmentCondition `json:"conditions,omitempty"`
}

// EventTrackRequest is the body for tracking a custom or e-commerce event.
// Exactly one of SubscriberID or PhoneNumber identifies the subscriber.
type EventTrackRequest struct {
	EventType    string                 `json:"event_type"`
	SubscriberID string                 `json:"subscriber_id,omitempty"`
	PhoneNumber  string                 `json:"phone_number,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	OccurredAt   string                 `json:"occurred_at,omitempty"`
}

// Shop represents the Postscript shop for the configured API key.
type Shop struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	URL    string `json:"url,omitempty"`
	Status string `json:"status,omitempty"`
}

// Webhook represents a registered Postscript webhook.
type Webhook struct {
	ID     string `json:"id,omitempty"`
	URL    string `json:"url"`
	Topic  string `json:"topic"`
	Format string `json:"format,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// WebhookCreateRequest is the body for registering a webhook.
type WebhookCreateRequest struct {
	URL    string `json:"url"`
	Topic  string `json:"topic"`
	Format string `json:"format,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// WebhookUpdateRequest is the body for updating a webhook.
type WebhookUpdateRequest map[string]interface{}

// Ack is the synthetic response for delete-style operations whose remote
// response carries no useful body.
type Ack struct {
	Success bool `json:"success"`
}

// Stats holds an endpoint-specific statistics payload. The stats shapes vary
// by endpoint and date range, so they are kept as raw JSON objects.
type Stats map[string]interface{}

// RawItem is one item of a paginated list before typed decoding.
type RawItem = json.RawMessage
