package postscript

import (
	"context"
	"net/url"
)

// Client is the interface for interacting with the Postscript API.
type Client interface {
	// Subscribers returns the subscribers resource client.
	Subscribers() SubscribersClient

	// Messages returns the messages resource client.
	Messages() MessagesClient

	// Keywords returns the keywords resource client.
	Keywords() KeywordsClient

	// Campaigns returns the campaigns resource client.
	Campaigns() CampaignsClient

	// Automations returns the automations resource client.
	Automations() AutomationsClient

	// Segments returns the segments resource client.
	Segments() SegmentsClient

	// Events returns the events resource client.
	Events() EventsClient

	// Shop returns the shop resource client.
	Shop() ShopClient

	// Webhooks returns the webhooks resource client.
	Webhooks() WebhooksClient

	// TestCredentials validates the configured API key against the
	// primary API. Any 2xx response means the key is usable.
	TestCredentials(ctx context.Context) error
}

// SubscribersClient manages subscribers.
type SubscribersClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Subscriber], error)
	ListAll(ctx context.Context, query url.Values) ([]Subscriber, error)
	Get(ctx context.Context, subscriberID string) (*Subscriber, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*Subscriber, error)
	Create(ctx context.Context, request *SubscriberCreateRequest) (*Subscriber, error)
	Update(ctx context.Context, subscriberID string, request SubscriberUpdateRequest) (*Subscriber, error)
	Unsubscribe(ctx context.Context, subscriberID string) (*Subscriber, error)
	AddTag(ctx context.Context, subscriberID, tag string) (*Subscriber, error)
	RemoveTag(ctx context.Context, subscriberID, tag string) error
	UpdateProperties(ctx context.Context, subscriberID string, properties map[string]interface{}) (*Subscriber, error)
}

// MessagesClient sends and inspects messages.
type MessagesClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Message], error)
	ListAll(ctx context.Context, query url.Values) ([]Message, error)
	Get(ctx context.Context, messageID string) (*Message, error)
	Send(ctx context.Context, subscriberID, body string, options *MessageOptions) (*Message, error)
	SendMMS(ctx context.Context, subscriberID, body, mediaURL string, options *MessageOptions) (*Message, error)
	GetStats(ctx context.Context, query url.Values) (Stats, error)
}

// KeywordsClient manages keywords.
type KeywordsClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Keyword], error)
	ListAll(ctx context.Context, query url.Values) ([]Keyword, error)
	Get(ctx context.Context, keywordID string) (*Keyword, error)
	Create(ctx context.Context, request *KeywordCreateRequest) (*Keyword, error)
	Update(ctx context.Context, keywordID string, request KeywordUpdateRequest) (*Keyword, error)
	Delete(ctx context.Context, keywordID string) error
}

// CampaignsClient inspects and schedules campaigns.
type CampaignsClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Campaign], error)
	ListAll(ctx context.Context, query url.Values) ([]Campaign, error)
	Get(ctx context.Context, campaignID string) (*Campaign, error)
	GetStats(ctx context.Context, campaignID string, includeDetails bool) (Stats, error)
	Schedule(ctx context.Context, campaignID string, request CampaignScheduleRequest) (*Campaign, error)
}

// AutomationsClient inspects and controls automations.
type AutomationsClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Automation], error)
	ListAll(ctx context.Context, query url.Values) ([]Automation, error)
	Get(ctx context.Context, automationID string) (*Automation, error)
	GetStats(ctx context.Context, automationID, dateRange string) (Stats, error)
	Trigger(ctx context.Context, automationID string, request *AutomationTriggerRequest) (Stats, error)
	Enable(ctx context.Context, automationID string) (*Automation, error)
	Disable(ctx context.Context, automationID string) (*Automation, error)
}

// SegmentsClient manages segments.
type SegmentsClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Segment], error)
	ListAll(ctx context.Context, query url.Values) ([]Segment, error)
	Get(ctx context.Context, segmentID string) (*Segment, error)
	Create(ctx context.Context, request *SegmentCreateRequest) (*Segment, error)
	ListSubscribers(ctx context.Context, segmentID string, query url.Values) (*ListResponse[Subscriber], error)
	ListAllSubscribers(ctx context.Context, segmentID string) ([]Subscriber, error)
	GetCount(ctx context.Context, segmentID string) (Stats, error)
}

// EventsClient tracks subscriber events.
type EventsClient interface {
	Track(ctx context.Context, request *EventTrackRequest) (Stats, error)
	GetTypes(ctx context.Context) ([]RawItem, error)
}

// ShopClient inspects the shop attached to the API key.
type ShopClient interface {
	Get(ctx context.Context) (*Shop, error)
	GetStats(ctx context.Context, query url.Values) (Stats, error)
	GetComplianceSettings(ctx context.Context) (Stats, error)
}

// WebhooksClient manages webhook registrations.
type WebhooksClient interface {
	List(ctx context.Context, query url.Values) (*ListResponse[Webhook], error)
	ListAll(ctx context.Context) ([]Webhook, error)
	Create(ctx context.Context, request *WebhookCreateRequest) (*Webhook, error)
	Update(ctx context.Context, webhookID string, request WebhookUpdateRequest) (*Webhook, error)
	Delete(ctx context.Context, webhookID string) error
}
