package postscript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// EventPayload is the host-facing shape of one inbound webhook delivery: the
// raw body, headers, and query pass through unmodified, augmented with the
// configured topic and a processing-time timestamp. Subscriber, message, and
// event data found in the body are lifted to the top level in addition to
// remaining nested in Body.
type EventPayload struct {
	DeliveryID string                 `json:"deliveryId"`
	Event      string                 `json:"event"`
	ReceivedAt string                 `json:"receivedAt"`
	Body       map[string]interface{} `json:"body"`
	Headers    map[string]string      `json:"headers"`
	Query      map[string]string      `json:"query"`
	Subscriber interface{}            `json:"subscriber,omitempty"`
	Message    interface{}            `json:"message,omitempty"`
	Data       interface{}            `json:"data,omitempty"`
}

// EventSink receives shaped webhook payloads from a Receiver.
type EventSink interface {
	Deliver(ctx context.Context, payload *EventPayload) error
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(ctx context.Context, payload *EventPayload) error

// Deliver implements EventSink.
func (f EventSinkFunc) Deliver(ctx context.Context, payload *EventPayload) error {
	return f(ctx, payload)
}

// Receiver is the inbound webhook endpoint. It shapes each POST delivery
// into an EventPayload and hands it to the sink.
type Receiver struct {
	topic  WebhookTopic
	sink   EventSink
	logger Logger

	now   func() time.Time
	newID func() string
}

// NewReceiver creates a receiver for one configured topic.
func NewReceiver(topic WebhookTopic, sink EventSink, logger Logger) (*Receiver, error) {
	if !ValidWebhookTopic(topic) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWebhookTopic, topic)
	}

	if sink == nil {
		return nil, ErrSinkRequired
	}

	return &Receiver{
		topic:  topic,
		sink:   sink,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// ServeHTTP implements http.Handler.
func (r *Receiver) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

		return
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)

		return
	}

	body := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)

			return
		}
	}

	payload := r.shape(body, req)

	if err := r.sink.Deliver(req.Context(), payload); err != nil {
		if r.logger != nil {
			r.logger.Error("delivering webhook event failed", map[string]interface{}{
				"event": payload.Event,
				"error": err.Error(),
			})
		}

		http.Error(w, "delivery failed", http.StatusInternalServerError)

		return
	}

	if r.logger != nil {
		r.logger.Debug("webhook event delivered", map[string]interface{}{
			"event":      payload.Event,
			"deliveryId": payload.DeliveryID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Ack{Success: true})
}

func (r *Receiver) shape(body map[string]interface{}, req *http.Request) *EventPayload {
	headers := map[string]string{}
	for name := range req.Header {
		headers[name] = req.Header.Get(name)
	}

	query := map[string]string{}
	for name := range req.URL.Query() {
		query[name] = req.URL.Query().Get(name)
	}

	payload := &EventPayload{
		DeliveryID: r.newID(),
		Event:      string(r.topic),
		ReceivedAt: r.now().UTC().Format(isoMillis),
		Body:       body,
		Headers:    headers,
		Query:      query,
	}

	if subscriber, ok := body["subscriber"]; ok {
		payload.Subscriber = subscriber
	}

	if message, ok := body["message"]; ok {
		payload.Message = message
	}

	if data, ok := body["data"]; ok {
		payload.Data = data
	}

	return payload
}

// NATSSink publishes shaped payloads to a NATS subject derived from the
// event topic, for hosts that consume webhook traffic off a broker.
type NATSSink struct {
	conn          *nats.Conn
	subjectPrefix string
}

// NewNATSSink creates a sink publishing to <prefix>.<topic>. An empty prefix
// defaults to "postscript.events".
func NewNATSSink(conn *nats.Conn, subjectPrefix string) (*NATSSink, error) {
	if conn == nil {
		return nil, ErrNATSConfigRequired
	}

	if subjectPrefix == "" {
		subjectPrefix = "postscript.events"
	}

	return &NATSSink{conn: conn, subjectPrefix: subjectPrefix}, nil
}

// Deliver implements EventSink.
func (s *NATSSink) Deliver(_ context.Context, payload *EventPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding event payload: %w", err)
	}

	subject := s.subjectPrefix + "." + payload.Event
	if err := s.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}
