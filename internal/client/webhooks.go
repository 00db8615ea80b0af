package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// WebhooksClient implements postscript.WebhooksClient.
type WebhooksClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Webhook], error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks", query)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return decodeList[postscript.Webhook](resp.Body)
}

// ListAll implements postscript.WebhooksClient.ListAll.
func (c *WebhooksClient) ListAll(ctx context.Context) ([]postscript.Webhook, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/webhooks", nil, nil, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all webhooks: %w", err)
	}

	return decodeItems[postscript.Webhook](items)
}

// Create implements postscript.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, request *postscript.WebhookCreateRequest) (*postscript.Webhook, error) {
	if request != nil && request.Format == "" {
		clone := *request
		clone.Format = "json"
		request = &clone
	}

	resp, err := c.httpClient.Post(ctx, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return decodeResource[postscript.Webhook](resp.Body)
}

// Update implements postscript.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, webhookID string, updates postscript.WebhookUpdateRequest) (*postscript.Webhook, error) {
	resp, err := c.httpClient.Patch(ctx, "/webhooks/"+url.PathEscape(webhookID), map[string]interface{}(updates))
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	return decodeResource[postscript.Webhook](resp.Body)
}

// Delete implements postscript.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) error {
	_, err := c.httpClient.Delete(ctx, "/webhooks/"+url.PathEscape(webhookID))
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}
