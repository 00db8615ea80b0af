// Package postscript provides types, interfaces, and helpers for working
// with the Postscript SMS marketing API.
//
// # Overview
//
// The postscript package defines the domain types (e.g., Subscriber, Message,
// Keyword, Campaign) and the interfaces for resource-oriented clients (e.g.,
// SubscribersClient, MessagesClient). A concrete implementation of these
// clients is provided by the psclient package, which wires configuration and
// transport. Most consumers should import psclient to construct a client and
// then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/velobpa/postscript-go/pkg/postscript"
//	  "github.com/velobpa/postscript-go/pkg/psclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := psclient.NewWithAPIKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch every subscriber across all pages
//	  subscribers, err := cli.Subscribers().ListAll(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = subscribers
//	}
//
// # Operations and batches
//
// Hosts that select resources and actions dynamically use Execute with an
// Operation descriptor and a ParamSource, or RunBatch to process a sequence
// of items in order with optional per-item error capture:
//
//	result, err := postscript.Execute(ctx, cli, postscript.Operation{
//	  Resource: postscript.ResourceSubscriber,
//	  Action:   postscript.ActionGet,
//	  Params:   postscript.MapParams{"subscriberId": "sub_123"},
//	})
//
// # Errors
//
// Remote failures are represented by APIError, transport faults by
// OperationError, and pre-network validation failures by
// InvalidArgumentError. Helpers such as IsAPIError, IsNotFound, and
// IsRateLimited make it easy to branch on common cases.
//
// # Webhooks
//
// SubscriptionManager drives webhook registration against the remote API,
// persisting webhook ids in a StaticDataStore (in-memory or NATS JetStream
// KV). Receiver is an http.Handler that shapes inbound deliveries into
// EventPayload values and hands them to an EventSink.
package postscript
