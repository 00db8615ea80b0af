package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// SubscribersClient implements postscript.SubscribersClient.
type SubscribersClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.SubscribersClient.List.
func (c *SubscribersClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Subscriber], error) {
	resp, err := c.httpClient.Get(ctx, "/subscribers", query)
	if err != nil {
		return nil, fmt.Errorf("listing subscribers: %w", err)
	}

	return decodeList[postscript.Subscriber](resp.Body)
}

// ListAll implements postscript.SubscribersClient.ListAll, aggregating
// every page.
func (c *SubscribersClient) ListAll(ctx context.Context, query url.Values) ([]postscript.Subscriber, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/subscribers", nil, query, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all subscribers: %w", err)
	}

	return decodeItems[postscript.Subscriber](items)
}

// Get implements postscript.SubscribersClient.Get.
func (c *SubscribersClient) Get(ctx context.Context, subscriberID string) (*postscript.Subscriber, error) {
	resp, err := c.httpClient.Get(ctx, "/subscribers/"+url.PathEscape(subscriberID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscriber: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}

// GetByPhone implements postscript.SubscribersClient.GetByPhone. The phone
// number must already be in E.164 form.
func (c *SubscribersClient) GetByPhone(ctx context.Context, phoneNumber string) (*postscript.Subscriber, error) {
	query := url.Values{}
	query.Set("phone_number", phoneNumber)

	resp, err := c.httpClient.Get(ctx, "/subscribers/search", query)
	if err != nil {
		return nil, fmt.Errorf("searching subscriber by phone: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}

// Create implements postscript.SubscribersClient.Create.
func (c *SubscribersClient) Create(ctx context.Context, request *postscript.SubscriberCreateRequest) (*postscript.Subscriber, error) {
	resp, err := c.httpClient.Post(ctx, "/subscribers", request)
	if err != nil {
		return nil, fmt.Errorf("creating subscriber: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}

// Update implements postscript.SubscribersClient.Update.
func (c *SubscribersClient) Update(ctx context.Context, subscriberID string, request postscript.SubscriberUpdateRequest) (*postscript.Subscriber, error) {
	resp, err := c.httpClient.Patch(ctx, "/subscribers/"+url.PathEscape(subscriberID), map[string]interface{}(request))
	if err != nil {
		return nil, fmt.Errorf("updating subscriber: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}

// Unsubscribe implements postscript.SubscribersClient.Unsubscribe.
func (c *SubscribersClient) Unsubscribe(ctx context.Context, subscriberID string) (*postscript.Subscriber, error) {
	resp, err := c.httpClient.Post(ctx, "/subscribers/"+url.PathEscape(subscriberID)+"/unsubscribe", nil)
	if err != nil {
		return nil, fmt.Errorf("unsubscribing subscriber: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}

// AddTag implements postscript.SubscribersClient.AddTag.
func (c *SubscribersClient) AddTag(ctx context.Context, subscriberID, tag string) (*postscript.Subscriber, error) {
	body := map[string]interface{}{"tag": tag}

	resp, err := c.httpClient.Post(ctx, "/subscribers/"+url.PathEscape(subscriberID)+"/tags", body)
	if err != nil {
		return nil, fmt.Errorf("adding subscriber tag: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}

// RemoveTag implements postscript.SubscribersClient.RemoveTag.
func (c *SubscribersClient) RemoveTag(ctx context.Context, subscriberID, tag string) error {
	path := "/subscribers/" + url.PathEscape(subscriberID) + "/tags/" + url.PathEscape(tag)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("removing subscriber tag: %w", err)
	}

	return nil
}

// UpdateProperties implements postscript.SubscribersClient.UpdateProperties.
func (c *SubscribersClient) UpdateProperties(ctx context.Context, subscriberID string, properties map[string]interface{}) (*postscript.Subscriber, error) {
	resp, err := c.httpClient.Patch(ctx, "/subscribers/"+url.PathEscape(subscriberID)+"/properties", properties)
	if err != nil {
		return nil, fmt.Errorf("updating subscriber properties: %w", err)
	}

	return decodeResource[postscript.Subscriber](resp.Body)
}
