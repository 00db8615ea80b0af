package client

import (
	"context"
	"fmt"

	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// EventsClient implements postscript.EventsClient.
type EventsClient struct {
	httpClient *pshttp.Client
}

// Track implements postscript.EventsClient.Track.
func (c *EventsClient) Track(ctx context.Context, request *postscript.EventTrackRequest) (postscript.Stats, error) {
	resp, err := c.httpClient.Post(ctx, "/events", request)
	if err != nil {
		return nil, fmt.Errorf("tracking event: %w", err)
	}

	result, err := decodeResource[postscript.Stats](resp.Body)
	if err != nil {
		return nil, err
	}

	return *result, nil
}

// GetTypes implements postscript.EventsClient.GetTypes.
func (c *EventsClient) GetTypes(ctx context.Context) ([]postscript.RawItem, error) {
	resp, err := c.httpClient.Get(ctx, "/events/types", nil)
	if err != nil {
		return nil, fmt.Errorf("getting event types: %w", err)
	}

	list, err := decodeList[postscript.RawItem](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}
