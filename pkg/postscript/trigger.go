package postscript

import (
	"context"
	"fmt"
)

// WebhookTopic is one of the event topics the remote API can deliver.
type WebhookTopic string

const (
	TopicSubscriberSubscribed   WebhookTopic = "subscriber.subscribed"
	TopicSubscriberUnsubscribed WebhookTopic = "subscriber.unsubscribed"
	TopicMessageSent            WebhookTopic = "message.sent"
	TopicMessageDelivered       WebhookTopic = "message.delivered"
	TopicMessageFailed          WebhookTopic = "message.failed"
	TopicMessageClicked         WebhookTopic = "message.clicked"
	TopicMessageReplied         WebhookTopic = "message.replied"
)

// WebhookTopics lists every supported topic.
func WebhookTopics() []WebhookTopic {
	return []WebhookTopic{
		TopicSubscriberSubscribed,
		TopicSubscriberUnsubscribed,
		TopicMessageSent,
		TopicMessageDelivered,
		TopicMessageFailed,
		TopicMessageClicked,
		TopicMessageReplied,
	}
}

// ValidWebhookTopic reports whether topic is one of the supported topics.
func ValidWebhookTopic(topic WebhookTopic) bool {
	for _, known := range WebhookTopics() {
		if known == topic {
			return true
		}
	}

	return false
}

// Subscription describes one desired webhook registration: the delivery URL,
// the topic, and the static-data key holding the remote webhook id.
type Subscription struct {
	Key   string
	URL   string
	Topic WebhookTopic
}

// SubscriptionManager drives the remote webhook registration lifecycle
// against the API, persisting the remote-assigned id in the host's static
// data. All three operations return a boolean instead of propagating errors,
// so a failing remote registration does not crash the host's activation
// flow.
type SubscriptionManager struct {
	client Client
	store  StaticDataStore
	logger Logger
}

// NewSubscriptionManager creates a manager over the given client and store.
func NewSubscriptionManager(client Client, store StaticDataStore, logger Logger) (*SubscriptionManager, error) {
	if client == nil {
		return nil, ErrConfigRequired
	}

	if store == nil {
		return nil, fmt.Errorf("%w: static data store", ErrConfigRequired)
	}

	return &SubscriptionManager{client: client, store: store, logger: logger}, nil
}

// CheckExists reports whether a remote webhook matching the subscription's
// URL and topic is already registered. On a match the remote id is recorded
// in static data so a later Delete can find it.
func (m *SubscriptionManager) CheckExists(ctx context.Context, sub Subscription) bool {
	webhooks, err := m.client.Webhooks().ListAll(ctx)
	if err != nil {
		m.warn("listing webhooks failed", err)

		return false
	}

	for _, webhook := range webhooks {
		if webhook.URL == sub.URL && webhook.Topic == string(sub.Topic) {
			if err := m.store.Set(ctx, sub.Key, webhook.ID); err != nil {
				m.warn("storing webhook id failed", err)
			}

			return true
		}
	}

	return false
}

// Create registers the webhook remotely and stores its id. Returns false on
// any failure, including an unknown topic.
func (m *SubscriptionManager) Create(ctx context.Context, sub Subscription) bool {
	if !ValidWebhookTopic(sub.Topic) {
		m.warn("rejecting subscription", fmt.Errorf("%w: %s", ErrUnknownWebhookTopic, sub.Topic))

		return false
	}

	active := true
	webhook, err := m.client.Webhooks().Create(ctx, &WebhookCreateRequest{
		URL:    sub.URL,
		Topic:  string(sub.Topic),
		Format: "json",
		Active: &active,
	})
	if err != nil {
		m.warn("creating webhook failed", err)

		return false
	}

	if err := m.store.Set(ctx, sub.Key, webhook.ID); err != nil {
		m.warn("storing webhook id failed", err)
	}

	return true
}

// Delete deregisters the webhook recorded for the subscription key. A
// missing stored id is treated as success with no network call, making
// deactivation idempotent.
func (m *SubscriptionManager) Delete(ctx context.Context, sub Subscription) bool {
	webhookID, err := m.store.Get(ctx, sub.Key)
	if err != nil {
		return true
	}

	if err := m.client.Webhooks().Delete(ctx, webhookID); err != nil {
		m.warn("deleting webhook failed", err)

		return false
	}

	if err := m.store.Delete(ctx, sub.Key); err != nil {
		m.warn("clearing webhook id failed", err)
	}

	return true
}

func (m *SubscriptionManager) warn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}
