package postscript

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_InOrder(t *testing.T) {
	var seen []string

	client := &fakeClient{subscribers: &fakeSubscribers{
		getFunc: func(_ context.Context, subscriberID string) (*Subscriber, error) {
			seen = append(seen, subscriberID)

			return &Subscriber{ID: subscriberID}, nil
		},
	}}

	results, err := RunBatch(context.Background(), client, BatchRequest{
		Resource: ResourceSubscriber,
		Action:   ActionGet,
		Items: []ParamSource{
			MapParams{"subscriberId": "sub_1"},
			MapParams{"subscriberId": "sub_2"},
			MapParams{"subscriberId": "sub_3"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sub_1", "sub_2", "sub_3"}, seen)
	require.Len(t, results, 3)
	assert.Equal(t, "sub_2", results[1].(*Subscriber).ID)
}

func TestRunBatch_FirstErrorAborts(t *testing.T) {
	calls := 0

	client := &fakeClient{subscribers: &fakeSubscribers{
		getFunc: func(_ context.Context, subscriberID string) (*Subscriber, error) {
			calls++
			if subscriberID == "sub_2" {
				return nil, errors.New("boom")
			}

			return &Subscriber{ID: subscriberID}, nil
		},
	}}

	_, err := RunBatch(context.Background(), client, BatchRequest{
		Resource: ResourceSubscriber,
		Action:   ActionGet,
		Items: []ParamSource{
			MapParams{"subscriberId": "sub_1"},
			MapParams{"subscriberId": "sub_2"},
			MapParams{"subscriberId": "sub_3"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.Equal(t, 2, calls)
}

func TestRunBatch_ContinueOnFail(t *testing.T) {
	client := &fakeClient{subscribers: &fakeSubscribers{
		getFunc: func(_ context.Context, subscriberID string) (*Subscriber, error) {
			if subscriberID == "sub_2" {
				return nil, &APIError{Code: "not_found", Message: "no such subscriber", HTTPStatus: 404}
			}

			return &Subscriber{ID: subscriberID}, nil
		},
	}}

	results, err := RunBatch(context.Background(), client, BatchRequest{
		Resource:       ResourceSubscriber,
		Action:         ActionGet,
		ContinueOnFail: true,
		Items: []ParamSource{
			MapParams{"subscriberId": "sub_1"},
			MapParams{"subscriberId": "sub_2"},
			MapParams{"subscriberId": "sub_3"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	failed, ok := results[1].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, failed["error"], "no such subscriber")

	assert.Equal(t, "sub_3", results[2].(*Subscriber).ID)
}

func TestRunBatch_EmptyItems(t *testing.T) {
	results, err := RunBatch(context.Background(), &fakeClient{}, BatchRequest{
		Resource: ResourceSubscriber,
		Action:   ActionGet,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}
