package postscript

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Resource identifies one of the domain nouns exposed by the remote API.
type Resource string

const (
	ResourceSubscriber Resource = "subscriber"
	ResourceMessage    Resource = "message"
	ResourceKeyword    Resource = "keyword"
	ResourceCampaign   Resource = "campaign"
	ResourceAutomation Resource = "automation"
	ResourceSegment    Resource = "segment"
	ResourceEvent      Resource = "event"
	ResourceShop       Resource = "shop"
	ResourceWebhook    Resource = "webhook"
)

// Action is a verb applicable to a resource.
type Action string

const (
	ActionGetAll                Action = "getAll"
	ActionGet                   Action = "get"
	ActionGetByPhone            Action = "getByPhone"
	ActionCreate                Action = "create"
	ActionUpdate                Action = "update"
	ActionDelete                Action = "delete"
	ActionUnsubscribe           Action = "unsubscribe"
	ActionAddTag                Action = "addTag"
	ActionRemoveTag             Action = "removeTag"
	ActionUpdateProperties      Action = "updateProperties"
	ActionSend                  Action = "send"
	ActionSendMMS               Action = "sendMMS"
	ActionGetStats              Action = "getStats"
	ActionSchedule              Action = "schedule"
	ActionTrigger               Action = "trigger"
	ActionEnable                Action = "enable"
	ActionDisable               Action = "disable"
	ActionGetSubscribers        Action = "getSubscribers"
	ActionGetCount              Action = "getCount"
	ActionTrack                 Action = "track"
	ActionTrackEcommerce        Action = "trackEcommerce"
	ActionGetTypes              Action = "getTypes"
	ActionGetComplianceSettings Action = "getComplianceSettings"
)

// DefaultListLimit is the single-page item cap when a caller opts out of full
// pagination and supplies no explicit limit.
const DefaultListLimit = 50

// Operation is one logical invocation: a resource, an action, and the
// host-collected parameters for it.
type Operation struct {
	Resource Resource
	Action   Action
	Params   ParamSource
}

// Handler executes one (resource, action) pair against the API client.
type Handler func(ctx context.Context, client Client, params ParamSource) (interface{}, error)

type operationKey struct {
	resource Resource
	action   Action
}

var handlers = buildHandlers()

func buildHandlers() map[operationKey]Handler {
	merged := map[operationKey]Handler{}

	register := func(resource Resource, group map[Action]Handler) {
		for action, handler := range group {
			merged[operationKey{resource, action}] = handler
		}
	}

	register(ResourceSubscriber, subscriberHandlers)
	register(ResourceMessage, messageHandlers)
	register(ResourceKeyword, keywordHandlers)
	register(ResourceCampaign, campaignHandlers)
	register(ResourceAutomation, automationHandlers)
	register(ResourceSegment, segmentHandlers)
	register(ResourceEvent, eventHandlers)
	register(ResourceShop, shopHandlers)
	register(ResourceWebhook, webhookHandlers)

	return merged
}

// Execute runs one operation against the client, returning the shaped
// response value. Unknown resources and unknown actions fail before any
// network call.
func Execute(ctx context.Context, client Client, op Operation) (interface{}, error) {
	handler, ok := handlers[operationKey{op.Resource, op.Action}]
	if !ok {
		if !knownResource(op.Resource) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownResource, op.Resource)
		}

		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownOperation, op.Resource, op.Action)
	}

	params := op.Params
	if params == nil {
		params = MapParams{}
	}

	return handler(ctx, client, params)
}

func knownResource(resource Resource) bool {
	for key := range handlers {
		if key.resource == resource {
			return true
		}
	}

	return false
}

// splitCSV turns a comma-separated string into trimmed, non-empty parts.
func splitCSV(s string) []string {
	var parts []string

	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return parts
}

// parseJSONObject decodes a JSON-object parameter supplied as a string.
// Malformed input fails before any network call.
func parseJSONObject(name, raw string) (map[string]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]interface{}{}, nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, NewInvalidArgumentError("parameter %s: invalid JSON: %v", name, err)
	}

	return obj, nil
}

func objString(obj map[string]interface{}, key string) (string, bool) {
	s, ok := obj[key].(string)

	return s, ok
}

func objBool(obj map[string]interface{}, key string) (bool, bool) {
	b, ok := obj[key].(bool)

	return b, ok
}
