package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velobpa/postscript-go/pkg/postscript"
)

func TestWebhooksClient_Create(t *testing.T) {
	t.Run("defaults format to json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/webhooks", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "https://example.com/hook", body["url"])
			assert.Equal(t, "subscriber.created", body["topic"])
			assert.Equal(t, "json", body["format"])

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"id":"wh_1","url":"https://example.com/hook","topic":"subscriber.created","format":"json"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		webhook, err := client.Webhooks().Create(context.Background(), &postscript.WebhookCreateRequest{
			URL:   "https://example.com/hook",
			Topic: "subscriber.created",
		})
		require.NoError(t, err)
		assert.Equal(t, "wh_1", webhook.ID)
		assert.Equal(t, "json", webhook.Format)
	})

	t.Run("keeps an explicit format", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "form", body["format"])

			w.Write([]byte(`{"data":{"id":"wh_2"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Webhooks().Create(context.Background(), &postscript.WebhookCreateRequest{
			URL:    "https://example.com/hook",
			Topic:  "subscriber.created",
			Format: "form",
		})
		require.NoError(t, err)
	})

	t.Run("does not mutate the caller's request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"data":{"id":"wh_3"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		request := &postscript.WebhookCreateRequest{
			URL:   "https://example.com/hook",
			Topic: "message.sent",
		}

		_, err := client.Webhooks().Create(context.Background(), request)
		require.NoError(t, err)
		assert.Empty(t, request.Format)
	})
}

func TestWebhooksClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhooks/wh_1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["active"])

		w.Write([]byte(`{"data":{"id":"wh_1","active":false}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	webhook, err := client.Webhooks().Update(context.Background(), "wh_1", postscript.WebhookUpdateRequest{
		"active": false,
	})
	require.NoError(t, err)
	require.NotNil(t, webhook.Active)
	assert.False(t, *webhook.Active)
}

func TestWebhooksClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhooks/wh_1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Webhooks().Delete(context.Background(), "wh_1")
	require.NoError(t, err)
}

func TestWebhooksClient_ListAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhooks", r.URL.Path)

		w.Write([]byte(`{"data":[{"id":"wh_1","topic":"subscriber.created"},{"id":"wh_2","topic":"message.sent"}],"meta":{"page":1,"limit":100,"total":2}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	webhooks, err := client.Webhooks().ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, webhooks, 2)
	assert.Equal(t, "message.sent", webhooks[1].Topic)
}
