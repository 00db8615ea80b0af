package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/velobpa/postscript-go/internal/constants"
	pshttp "github.com/velobpa/postscript-go/internal/http"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// sleepFunc paces consecutive page requests. The default implementation is
// context-aware; tests inject an immediate return.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fetchAllItems aggregates every page of a list endpoint into one ordered
// collection. Each request carries the base query plus page and a fixed
// limit of 100; items come from the dataKey entry of the response, falling
// back to the whole body when that key is absent. Aggregation continues
// while meta.page * meta.limit < meta.total, pausing 100ms between pages;
// a response without meta means a single page. Any request failure discards
// the partial result.
func fetchAllItems(
	ctx context.Context,
	httpClient *pshttp.Client,
	sleep sleepFunc,
	method, endpoint string,
	body interface{},
	baseQuery url.Values,
	dataKey string,
) ([]json.RawMessage, error) {
	if dataKey == "" {
		dataKey = "data"
	}

	var collected []json.RawMessage

	page := 1

	for {
		query := url.Values{}
		for key, values := range baseQuery {
			query[key] = values
		}

		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(constants.PageSize))

		resp, err := httpClient.Do(ctx, &pshttp.Request{
			Method: method,
			Path:   endpoint,
			Body:   body,
			Query:  query,
		})
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		items, meta := extractPage(resp.Body, dataKey)
		collected = append(collected, items...)

		if meta == nil || !meta.HasMore() {
			return collected, nil
		}

		page++

		if err := sleep(ctx, constants.PageDelay); err != nil {
			return nil, err
		}
	}
}

// extractPage pulls the item sequence and pagination metadata out of one
// response body. Non-sequence payloads contribute no items.
func extractPage(body []byte, dataKey string) ([]json.RawMessage, *postscript.Meta) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(body, &object); err != nil {
		// Not an object: the whole response may be a bare array.
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err == nil {
			return items, nil
		}

		return nil, nil
	}

	source, ok := object[dataKey]
	if !ok {
		source = body
	}

	var items []json.RawMessage
	if err := json.Unmarshal(source, &items); err != nil {
		items = nil
	}

	var meta *postscript.Meta
	if rawMeta, ok := object["meta"]; ok {
		_ = json.Unmarshal(rawMeta, &meta)
	}

	return items, meta
}
