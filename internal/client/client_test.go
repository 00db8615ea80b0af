package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velobpa/postscript-go/pkg/postscript"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		client, err := New(nil)
		assert.Nil(t, client)
		assert.ErrorIs(t, err, postscript.ErrConfigRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		client, err := New(&postscript.Config{})
		assert.Nil(t, client)
		assert.ErrorIs(t, err, postscript.ErrAPIKeyRequired)
	})

	t.Run("wires every resource client", func(t *testing.T) {
		client, err := New(&postscript.Config{APIKey: "sk_test_key"})
		require.NoError(t, err)

		assert.NotNil(t, client.Subscribers())
		assert.NotNil(t, client.Messages())
		assert.NotNil(t, client.Keywords())
		assert.NotNil(t, client.Campaigns())
		assert.NotNil(t, client.Automations())
		assert.NotNil(t, client.Segments())
		assert.NotNil(t, client.Events())
		assert.NotNil(t, client.Shop())
		assert.NotNil(t, client.Webhooks())
	})
}

func TestClient_TestCredentials(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/shop", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))

			w.Write([]byte(`{"data":{"id":"shop_1","name":"Test Shop"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		require.NoError(t, client.TestCredentials(context.Background()))
	})

	t.Run("rejected key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":"unauthorized","message":"invalid API key"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		err := client.TestCredentials(context.Background())
		require.Error(t, err)
		assert.True(t, postscript.IsAPIError(err))

		var apiErr *postscript.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
	})
}
