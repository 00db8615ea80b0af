package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// CampaignsClient implements postscript.CampaignsClient.
type CampaignsClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.CampaignsClient.List.
func (c *CampaignsClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Campaign], error) {
	resp, err := c.httpClient.Get(ctx, "/campaigns", query)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}

	return decodeList[postscript.Campaign](resp.Body)
}

// ListAll implements postscript.CampaignsClient.ListAll.
func (c *CampaignsClient) ListAll(ctx context.Context, query url.Values) ([]postscript.Campaign, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/campaigns", nil, query, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all campaigns: %w", err)
	}

	return decodeItems[postscript.Campaign](items)
}

// Get implements postscript.CampaignsClient.Get.
func (c *CampaignsClient) Get(ctx context.Context, campaignID string) (*postscript.Campaign, error) {
	resp, err := c.httpClient.Get(ctx, "/campaigns/"+url.PathEscape(campaignID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}

	return decodeResource[postscript.Campaign](resp.Body)
}

// GetStats implements postscript.CampaignsClient.GetStats.
func (c *CampaignsClient) GetStats(ctx context.Context, campaignID string, includeDetails bool) (postscript.Stats, error) {
	query := url.Values{}
	query.Set("include_details", strconv.FormatBool(includeDetails))

	resp, err := c.httpClient.Get(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/stats", query)
	if err != nil {
		return nil, fmt.Errorf("getting campaign stats: %w", err)
	}

	stats, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}

// Schedule implements postscript.CampaignsClient.Schedule.
func (c *CampaignsClient) Schedule(ctx context.Context, campaignID string, request postscript.CampaignScheduleRequest) (*postscript.Campaign, error) {
	resp, err := c.httpClient.Post(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/schedule", map[string]interface{}(request))
	if err != nil {
		return nil, fmt.Errorf("scheduling campaign: %w", err)
	}

	return decodeResource[postscript.Campaign](resp.Body)
}
