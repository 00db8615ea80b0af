package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// SegmentsClient implements postscript.SegmentsClient.
type SegmentsClient struct {
	httpClient *pshttp.Client
	sleep      sleepFunc
}

// List implements postscript.SegmentsClient.List.
func (c *SegmentsClient) List(ctx context.Context, query url.Values) (*postscript.ListResponse[postscript.Segment], error) {
	resp, err := c.httpClient.Get(ctx, "/segments", query)
	if err != nil {
		return nil, fmt.Errorf("listing segments: %w", err)
	}

	return decodeList[postscript.Segment](resp.Body)
}

// ListAll implements postscript.SegmentsClient.ListAll.
func (c *SegmentsClient) ListAll(ctx context.Context, query url.Values) ([]postscript.Segment, error) {
	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, "/segments", nil, query, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all segments: %w", err)
	}

	return decodeItems[postscript.Segment](items)
}

// Get implements postscript.SegmentsClient.Get.
func (c *SegmentsClient) Get(ctx context.Context, segmentID string) (*postscript.Segment, error) {
	resp, err := c.httpClient.Get(ctx, "/segments/"+url.PathEscape(segmentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting segment: %w", err)
	}

	return decodeResource[postscript.Segment](resp.Body)
}

// Create implements postscript.SegmentsClient.Create.
func (c *SegmentsClient) Create(ctx context.Context, request *postscript.SegmentCreateRequest) (*postscript.Segment, error) {
	resp, err := c.httpClient.Post(ctx, "/segments", request)
	if err != nil {
		return nil, fmt.Errorf("creating segment: %w", err)
	}

	return decodeResource[postscript.Segment](resp.Body)
}

// ListSubscribers implements postscript.SegmentsClient.ListSubscribers.
func (c *SegmentsClient) ListSubscribers(ctx context.Context, segmentID string, query url.Values) (*postscript.ListResponse[postscript.Subscriber], error) {
	resp, err := c.httpClient.Get(ctx, "/segments/"+url.PathEscape(segmentID)+"/subscribers", query)
	if err != nil {
		return nil, fmt.Errorf("listing segment subscribers: %w", err)
	}

	return decodeList[postscript.Subscriber](resp.Body)
}

// ListAllSubscribers implements postscript.SegmentsClient.ListAllSubscribers.
func (c *SegmentsClient) ListAllSubscribers(ctx context.Context, segmentID string) ([]postscript.Subscriber, error) {
	endpoint := "/segments/" + url.PathEscape(segmentID) + "/subscribers"

	items, err := fetchAllItems(ctx, c.httpClient, c.sleep, http.MethodGet, endpoint, nil, nil, "data")
	if err != nil {
		return nil, fmt.Errorf("listing all segment subscribers: %w", err)
	}

	return decodeItems[postscript.Subscriber](items)
}

// GetCount implements postscript.SegmentsClient.GetCount.
func (c *SegmentsClient) GetCount(ctx context.Context, segmentID string) (postscript.Stats, error) {
	resp, err := c.httpClient.Get(ctx, "/segments/"+url.PathEscape(segmentID)+"/count", nil)
	if err != nil {
		return nil, fmt.Errorf("getting segment count: %w", err)
	}

	stats, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}
