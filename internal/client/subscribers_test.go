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

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&postscript.Config{
		APIKey:      "sk_test_key",
		APIEndpoint: serverURL,
	})
	require.NoError(t, err)

	client.SetPageDelay(noSleep)

	return client
}

func TestSubscribersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribers/sub_123", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Write([]byte(`{"data":{"id":"sub_123","phone_number":"+15551234567","tags":["vip"]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriber, err := client.Subscribers().Get(context.Background(), "sub_123")
	require.NoError(t, err)
	assert.Equal(t, "sub_123", subscriber.ID)
	assert.Equal(t, "+15551234567", subscriber.PhoneNumber)
	assert.Equal(t, []string{"vip"}, subscriber.Tags)
}

func TestSubscribersClient_GetUnwrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":"sub_123","phone_number":"+15551234567"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriber, err := client.Subscribers().Get(context.Background(), "sub_123")
	require.NoError(t, err)
	assert.Equal(t, "sub_123", subscriber.ID)
}

func TestSubscribersClient_GetByPhone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribers/search", r.URL.Path)
		assert.Equal(t, "+15551234567", r.URL.Query().Get("phone_number"))

		w.Write([]byte(`{"data":{"id":"sub_123"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriber, err := client.Subscribers().GetByPhone(context.Background(), "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "sub_123", subscriber.ID)
}

func TestSubscribersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribers", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req postscript.SubscriberCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+15551234567", req.PhoneNumber)
		assert.Equal(t, "kw_1", req.KeywordID)
		assert.Equal(t, []string{"vip"}, req.Tags)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"sub_new","phone_number":"+15551234567"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriber, err := client.Subscribers().Create(context.Background(), &postscript.SubscriberCreateRequest{
		PhoneNumber: "+15551234567",
		KeywordID:   "kw_1",
		Tags:        []string{"vip"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sub_new", subscriber.ID)
}

func TestSubscribersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribers/sub_123", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])

		w.Write([]byte(`{"data":{"id":"sub_123","email":"ada@example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriber, err := client.Subscribers().Update(context.Background(), "sub_123", postscript.SubscriberUpdateRequest{
		"email": "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", subscriber.Email)
}

func TestSubscribersClient_Unsubscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribers/sub_123/unsubscribe", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, int64(0), r.ContentLength)

		w.Write([]byte(`{"data":{"id":"sub_123","subscribed":false}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriber, err := client.Subscribers().Unsubscribe(context.Background(), "sub_123")
	require.NoError(t, err)
	require.NotNil(t, subscriber.Subscribed)
	assert.False(t, *subscriber.Subscribed)
}

func TestSubscribersClient_Tags(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscribers/sub_123/tags", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "vip", body["tag"])

			w.Write([]byte(`{"data":{"id":"sub_123","tags":["vip"]}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		subscriber, err := client.Subscribers().AddTag(context.Background(), "sub_123", "vip")
		require.NoError(t, err)
		assert.Contains(t, subscriber.Tags, "vip")
	})

	t.Run("remove escapes the tag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscribers/sub_123/tags/big%20spender", r.URL.RequestURI())
			assert.Equal(t, "DELETE", r.Method)

			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		err := client.Subscribers().RemoveTag(context.Background(), "sub_123", "big spender")
		require.NoError(t, err)
	})
}

func TestSubscribersClient_UpdateProperties(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribers/sub_123/properties", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gold", body["plan"])

		w.Write([]byte(`{"data":{"id":"sub_123"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Subscribers().UpdateProperties(context.Background(), "sub_123", map[string]interface{}{
		"plan": "gold",
	})
	require.NoError(t, err)
}

func TestSubscribersClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"not_found","message":"subscriber not found"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Subscribers().Get(context.Background(), "sub_missing")
	require.Error(t, err)
	assert.True(t, postscript.IsNotFound(err))
}
