package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// KeywordsClient implements postscript.KeywordsClient.
type KeywordsClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.KeywordsClient.List.
func (c *KeywordsClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Keyword], error) {
	resp, err := c.httpClient.Get(ctx, "/keywords", query)
	if err != nil {
		return nil, fmt.Errorf("listing keywords: %w", err)
	}

	return decodeList[postscript.Keyword](resp.Body)
}

// ListAll implements postscript.KeywordsClient.ListAll.
func (c *KeywordsClient) ListAll(ctx context.Context, query url.Values) ([]postscript.Keyword, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/keywords", nil, query, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all keywords: %w", err)
	}

	return decodeItems[postscript.Keyword](items)
}

// Get implements postscript.KeywordsClient.Get.
func (c *KeywordsClient) Get(ctx context.Context, keywordID string) (*postscript.Keyword, error) {
	resp, err := c.httpClient.Get(ctx, "/keywords/"+url.PathEscape(keywordID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting keyword: %w", err)
	}

	return decodeResource[postscript.Keyword](resp.Body)
}

// Create implements postscript.KeywordsClient.Create.
func (c *KeywordsClient) Create(ctx context.Context, request *postscript.KeywordCreateRequest) (*postscript.Keyword, error) {
	resp, err := c.httpClient.Post(ctx, "/keywords", request)
	if err != nil {
		return nil, fmt.Errorf("creating keyword: %w", err)
	}

	return decodeResource[postscript.Keyword](resp.Body)
}

// Update implements postscript.KeywordsClient.Update.
func (c *KeywordsClient) Update(ctx context.Context, keywordID string, request postscript.KeywordUpdateRequest) (*postscript.Keyword, error) {
	resp, err := c.httpClient.Patch(ctx, "/keywords/"+url.PathEscape(keywordID), map[string]interface{}(request))
	if err != nil {
		return nil, fmt.Errorf("updating keyword: %w", err)
	}

	return decodeResource[postscript.Keyword](resp.Body)
}

// Delete implements postscript.KeywordsClient.Delete.
func (c *KeywordsClient) Delete(ctx context.Context, keywordID string) error {
	_, err := c.httpClient.Delete(ctx, "/keywords/"+url.PathEscape(keywordID))
	if err != nil {
		return fmt.Errorf("deleting keyword: %w", err)
	}

	return nil
}
