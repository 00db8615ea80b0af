// Package client implements the postscript.Client interface on top of the
// HTTP transport layer.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/velobpa/postscript-go/internal/constants"
	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// Client implements postscript.Client.
type Client struct {
	httpClient *pshttp.Client
	baseURL    string
	partnerURL string
	logger     postscript.Logger

	subscribers postscript.SubscribersClient
	messages    postscript.MessagesClient
	keywords    postscript.KeywordsClient
	campaigns   postscript.CampaignsClient
	automations postscript.AutomationsClient
	segments    postscript.SegmentsClient
	events      postscript.EventsClient
	shop        postscript.ShopClient
	webhooks    postscript.WebhooksClient
}

// New creates a Postscript API client from config. The config must carry an
// API key; endpoint overrides default to the public Postscript hosts.
func New(config *postscript.Config) (*Client, error) {
	if config == nil {
		return nil, postscript.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, postscript.ErrAPIKeyRequired
	}

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	partnerURL := config.PartnerEndpoint
	if partnerURL == "" {
		partnerURL = constants.PartnerAPIEndpoint
	}

	httpClient := pshttp.NewClient(baseURL, config.APIKey, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		partnerURL: partnerURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients(sleepWithContext)

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *postscript.Config) []pshttp.Option {
	var opts []pshttp.Option

	if config.Logger != nil {
		opts = append(opts, pshttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, pshttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, pshttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, pshttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, pshttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// initializeResourceClients wires the per-resource clients. The sleep
// function paces page aggregation and is injectable for tests.
func (c *Client) initializeResourceClients(sleep sleepFunc) {
	c.subscribers = &SubscribersClient{httpClient: c.httpClient, sleep: sleep}
	c.messages = &MessagesClient{httpClient: c.httpClient, sleep: sleep}
	c.keywords = &KeywordsClient{httpClient: c.httpClient, sleep: sleep}
	c.campaigns = &CampaignsClient{httpClient: c.httpClient, sleep: sleep}
	c.automations = &AutomationsClient{httpClient: c.httpClient, sleep: sleep}
	c.segments = &SegmentsClient{httpClient: c.httpClient, sleep: sleep}
	c.events = &EventsClient{httpClient: c.httpClient}
	c.shop = &ShopClient{httpClient: c.httpClient}
	c.webhooks = &WebhooksClient{httpClient: c.httpClient, sleep: sleep}
}

// SetPageDelay replaces the inter-page pacing with an immediate return,
// used by tests that drive multi-page aggregation against a local server.
func (c *Client) SetPageDelay(sleep func(ctx context.Context, d time.Duration) error) {
	c.initializeResourceClients(sleep)
}

// Subscribers implements postscript.Client.
func (c *Client) Subscribers() postscript.SubscribersClient { return c.subscribers }

// Messages implements postscript.Client.
func (c *Client) Messages() postscript.MessagesClient { return c.messages }

// Keywords implements postscript.Client.
func (c *Client) Keywords() postscript.KeywordsClient { return c.keywords }

// Campaigns implements postscript.Client.
func (c *Client) Campaigns() postscript.CampaignsClient { return c.campaigns }

// Automations implements postscript.Client.
func (c *Client) Automations() postscript.AutomationsClient { return c.automations }

// Segments implements postscript.Client.
func (c *Client) Segments() postscript.SegmentsClient { return c.segments }

// Events implements postscript.Client.
func (c *Client) Events() postscript.EventsClient { return c.events }

// Shop implements postscript.Client.
func (c *Client) Shop() postscript.ShopClient { return c.shop }

// Webhooks implements postscript.Client.
func (c *Client) Webhooks() postscript.WebhooksClient { return c.webhooks }

// TestCredentials implements postscript.Client. A 2xx on the shop endpoint
// means the configured key is usable.
func (c *Client) TestCredentials(ctx context.Context) error {
	_, err := c.httpClient.Get(ctx, "/shop", nil)
	if err != nil {
		return fmt.Errorf("testing credentials: %w", err)
	}

	return nil
}
