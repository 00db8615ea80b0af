package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// AutomationsClient implements postscript.AutomationsClient.
type AutomationsClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.AutomationsClient.List.
func (c *AutomationsClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Automation], error) {
	resp, err := c.httpClient.Get(ctx, "/automations", query)
	if err != nil {
		return nil, fmt.Errorf("listing automations: %w", err)
	}

	return decodeList[postscript.Automation](resp.Body)
}

// ListAll implements postscript.AutomationsClient.ListAll.
func (c *AutomationsClient) ListAll(ctx context.Context, query url.Values) ([]postscript.Automation, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/automations", nil, query, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all automations: %w", err)
	}

	return decodeItems[postscript.Automation](items)
}

// Get implements postscript.AutomationsClient.Get.
func (c *AutomationsClient) Get(ctx context.Context, automationID string) (*postscript.Automation, error) {
	resp, err := c.httpClient.Get(ctx, "/automations/"+url.PathEscape(automationID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting automation: %w", err)
	}

	return decodeResource[postscript.Automation](resp.Body)
}

// GetStats implements postscript.AutomationsClient.GetStats.
func (c *AutomationsClient) GetStats(ctx context.Context, automationID, dateRange string) (postscript.Stats, error) {
	var query url.Values
	if dateRange != "" {
		query = url.Values{}
		query.Set("range", dateRange)
	}

	resp, err := c.httpClient.Get(ctx, "/automations/"+url.PathEscape(automationID)+"/stats", query)
	if err != nil {
		return nil, fmt.Errorf("getting automation stats: %w", err)
	}

	stats, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}

// Trigger implements postscript.AutomationsClient.Trigger.
func (c *AutomationsClient) Trigger(ctx context.Context, automationID string, request *postscript.AutomationTriggerRequest) (postscript.Stats, error) {
	resp, err := c.httpClient.Post(ctx, "/automations/"+url.PathEscape(automationID)+"/trigger", request)
	if err != nil {
		return nil, fmt.Errorf("triggering automation: %w", err)
	}

	result, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *result, nil
}

// Enable implements postscript.AutomationsClient.Enable.
func (c *AutomationsClient) Enable(ctx context.Context, automationID string) (*postscript.Automation, error) {
	resp, err := c.httpClient.Post(ctx, "/automations/"+url.PathEscape(automationID)+"/enable", nil)
	if err != nil {
		return nil, fmt.Errorf("enabling automation: %w", err)
	}

	return decodeResource[postscript.Automation](resp.Body)
}

// Disable implements postscript.AutomationsClient.Disable.
func (c *AutomationsClient) Disable(ctx context.Context, automationID string) (*postscript.Automation, error) {
	resp, err := c.httpClient.Post(ctx, "/automations/"+url.PathEscape(automationID)+"/disable", nil)
	if err != nil {
		return nil, fmt.Errorf("disabling automation: %w", err)
	}

	return decodeResource[postscript.Automation](resp.Body)
}
