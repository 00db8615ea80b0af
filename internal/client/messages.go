package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// MessagesClient implements postscript.MessagesClient.
type MessagesClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.MessagesClient.List.
func (c *MessagesClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Message], error) {
	resp, err := c.httpClient.Get(ctx, "/messages", query)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return decodeList[postscript.Message](resp.Body)
}

// ListAll implements postscript.MessagesClient.ListAll.
func (c *MessagesClient) ListAll(ctx context.Context, query url.Values) ([]postscript.Message, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/messages", nil, query, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all messages: %w", err)
	}

	return decodeItems[postscript.Message](items)
}

// Get implements postscript.MessagesClient.Get.
func (c *MessagesClient) Get(ctx context.Context, messageID string) (*postscript.Message, error) {
	resp, err := c.httpClient.Get(ctx, "/messages/"+url.PathEscape(messageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	return decodeResource[postscript.Message](resp.Body)
}

// Send implements postscript.MessagesClient.Send. The body is validated
// against the SMS length limit before any network I/O.
func (c *MessagesClient) Send(ctx context.Context, subscriberID, body string, options *postscript.MessageOptions) (*postscript.Message, error) {
	if err := postscript.CheckMessageLength(body, false); err != nil {
		return nil, err
	}

	return c.send(ctx, postscript.BuildMessagePayload(subscriberID, body, options))
}

// SendMMS implements postscript.MessagesClient.SendMMS, validating against
// the longer multimedia limit.
func (c *MessagesClient) SendMMS(ctx context.Context, subscriberID, body, mediaURL string, options *postscript.MessageOptions) (*postscript.Message, error) {
	if err := postscript.CheckMessageLength(body, true); err != nil {
		return nil, err
	}

	merged := postscript.MessageOptions{MediaURL: mediaURL}
	if options != nil {
		merged.KeywordID = options.KeywordID
		merged.SkipFatigue = options.SkipFatigue
		merged.UseShortLinks = options.UseShortLinks
	}

	return c.send(ctx, postscript.BuildMessagePayload(subscriberID, body, &merged))
}

func (c *MessagesClient) send(ctx context.Context, payload map[string]interface{}) (*postscript.Message, error) {
	resp, err := c.httpClient.Post(ctx, "/messages", payload)
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}

	return decodeResource[postscript.Message](resp.Body)
}

// GetStats implements postscript.MessagesClient.GetStats.
func (c *MessagesClient) GetStats(ctx context.Context, query url.Values) (postscript.Stats, error) {
	resp, err := c.httpClient.Get(ctx, "/messages/stats", query)
	if err != nil {
		return nil, fmt.Errorf("getting message stats: %w", err)
	}

	stats, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}
