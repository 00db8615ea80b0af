package postscript

import (
	"context"
	"fmt"
)

// BatchRequest executes the same operation once per input item. Items run
// strictly in order, one at a time; each item's call (including any page
// loop) completes before the next item starts.
type BatchRequest struct {
	Resource Resource
	Action   Action
	Items    []ParamSource

	// ContinueOnFail captures a failed item's error into its output record
	// instead of aborting the batch.
	ContinueOnFail bool
}

// RunBatch runs the batch and returns one output value per input item. With
// ContinueOnFail set, a failed item yields {"error": message} and processing
// continues; otherwise the first failure aborts the whole batch.
func RunBatch(ctx context.Context, client Client, request BatchRequest) ([]interface{}, error) {
	results := make([]interface{}, 0, len(request.Items))

	for i, params := range request.Items {
		result, err := Execute(ctx, client, Operation{
			Resource: request.Resource,
			Action:   request.Action,
			Params:   params,
		})
		if err != nil {
			if request.ContinueOnFail {
				results = append(results, map[string]interface{}{"error": err.Error()})

				continue
			}

			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		results = append(results, result)
	}

	return results, nil
}
