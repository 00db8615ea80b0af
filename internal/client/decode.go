package client

import (
	"encoding/json"
	"fmt"

	"github.com/velobpa/postscript-go/pkg/postscript"
)

// decodeResource unwraps a single-resource response. Postscript wraps most
// responses in a {data: ...} envelope but returns some bare; when the data
// key is present its value decodes into T, otherwise the whole body does.
// A body that fails to decode on a 2xx response is a transport-level fault.
func decodeResource[T any](body []byte) (*T, error) {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}

	raw := json.RawMessage(body)

	if err := json.Unmarshal(body, &probe); err == nil && len(probe.Data) > 0 && string(probe.Data) != "null" {
		raw = probe.Data
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, postscript.NewOperationError(fmt.Errorf("parsing response: %w", err))
	}

	return &out, nil
}

// decodeList decodes a {data, meta} list envelope, accepting a bare array
// as a single unpaginated page.
func decodeList[T any](body []byte) (*postscript.ListResponse[T], error) {
	var list postscript.ListResponse[T]
	if err := json.Unmarshal(body, &list); err == nil && list.Data != nil {
		return &list, nil
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, postscript.NewOperationError(fmt.Errorf("parsing list response: %w", err))
	}

	return &postscript.ListResponse[T]{Data: items}, nil
}

// decodeItems decodes raw aggregated page items into typed values,
// preserving order.
func decodeItems[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))

	for _, raw := range items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, postscript.NewOperationError(fmt.Errorf("parsing list item: %w", err))
		}

		out = append(out, item)
	}

	return out, nil
}
