package client

import (
	"context"
	"fmt"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// ShopClient implements postscript.ShopClient.
type ShopClient struct {
	httpClient *pshttp.Client
}

// Get implements postscript.ShopClient.Get.
func (c *ShopClient) Get(ctx context.Context) (*postscript.Shop, error) {
	resp, err := c.httpClient.Get(ctx, "/shop", nil)
	if err != nil {
		return nil, fmt.Errorf("getting shop: %w", err)
	}

	return decodeResource[postscript.Shop](resp.Body)
}

// GetStats implements postscript.ShopClient.GetStats.
func (c *ShopClient) GetStats(ctx context.Context, query url.Values) (postscript.Stats, error) {
	resp, err := c.httpClient.Get(ctx, "/shop/stats", query)
	if err != nil {
		return nil, fmt.Errorf("getting shop stats: %w", err)
	}

	stats, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}

// GetComplianceSettings implements postscript.ShopClient.GetComplianceSettings.
func (c *ShopClient) GetComplianceSettings(ctx context.Context) (postscript.Stats, error) {
	resp, err := c.httpClient.Get(ctx, "/shop/compliance", nil)
	if err != nil {
		return nil, fmt.Errorf("getting compliance settings: %w", err)
	}

	stats, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}
