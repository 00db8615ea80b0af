package postscript

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiver_ShapesPayload(t *testing.T) {
	var delivered *EventPayload

	sink := EventSinkFunc(func(_ context.Context, payload *EventPayload) error {
		delivered = payload

		return nil
	})

	receiver, err := NewReceiver(TopicMessageDelivered, sink, nil)
	require.NoError(t, err)

	receiver.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	receiver.newID = func() string { return "delivery-1" }

	body := `{
		"subscriber": {"id": "sub_1"},
		"message": {"id": "msg_1", "status": "delivered"},
		"data": {"carrier": "tmobile"}
	}`

	req := httptest.NewRequest(http.MethodPost, "/webhook?source=postscript", strings.NewReader(body))
	req.Header.Set("X-Postscript-Signature", "sig")

	recorder := httptest.NewRecorder()
	receiver.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var ack Ack
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&ack))
	assert.True(t, ack.Success)

	require.NotNil(t, delivered)
	assert.Equal(t, "delivery-1", delivered.DeliveryID)
	assert.Equal(t, "message.delivered", delivered.Event)
	assert.Equal(t, "2024-03-15T10:30:00.000Z", delivered.ReceivedAt)
	assert.Equal(t, "sig", delivered.Headers["X-Postscript-Signature"])
	assert.Equal(t, "postscript", delivered.Query["source"])

	// Lifted keys also stay nested in the body.
	assert.Equal(t, map[string]interface{}{"id": "sub_1"}, delivered.Subscriber)
	assert.Equal(t, map[string]interface{}{"carrier": "tmobile"}, delivered.Data)
	assert.Equal(t, delivered.Body["message"], delivered.Message)
}

func TestReceiver_BodyWithoutLiftedKeys(t *testing.T) {
	var delivered *EventPayload

	sink := EventSinkFunc(func(_ context.Context, payload *EventPayload) error {
		delivered = payload

		return nil
	})

	receiver, err := NewReceiver(TopicSubscriberSubscribed, sink, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"other": true}`))
	recorder := httptest.NewRecorder()
	receiver.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, delivered)
	assert.Nil(t, delivered.Subscriber)
	assert.Nil(t, delivered.Message)
	assert.Nil(t, delivered.Data)
	assert.Equal(t, true, delivered.Body["other"])
	assert.NotEmpty(t, delivered.DeliveryID)
}

func TestReceiver_RejectsNonPost(t *testing.T) {
	receiver, err := NewReceiver(TopicMessageSent, EventSinkFunc(func(_ context.Context, _ *EventPayload) error {
		t.Fatal("sink should not run")

		return nil
	}), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	recorder := httptest.NewRecorder()
	receiver.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"))
}

func TestReceiver_RejectsInvalidJSON(t *testing.T) {
	receiver, err := NewReceiver(TopicMessageSent, EventSinkFunc(func(_ context.Context, _ *EventPayload) error {
		t.Fatal("sink should not run")

		return nil
	}), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	receiver.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestReceiver_SinkFailure(t *testing.T) {
	receiver, err := NewReceiver(TopicMessageFailed, EventSinkFunc(func(_ context.Context, _ *EventPayload) error {
		return errors.New("broker down")
	}), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()
	receiver.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestNewReceiver_Validation(t *testing.T) {
	_, err := NewReceiver(WebhookTopic("bogus"), EventSinkFunc(func(_ context.Context, _ *EventPayload) error {
		return nil
	}), nil)
	require.ErrorIs(t, err, ErrUnknownWebhookTopic)

	_, err = NewReceiver(TopicMessageSent, nil, nil)
	require.ErrorIs(t, err, ErrSinkRequired)
}
