// Package psclient provides the primary entry point for constructing a
// Postscript API client that implements the postscript.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the postscript package. Most applications
// should import psclient to build a client, then use the returned
// postscript.Client to access resource-specific clients, for example
// Subscribers(), Messages(), Keywords(), etc.
//
// Quick start
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
//
//	  // Minimal: just an API key.
//	  cli, err := psclient.NewWithAPIKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit configuration:
//	  cli, err = psclient.New(&postscript.Config{
//	    APIKey:   "sk_test_...",
//	    RetryMax: 3,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  if err := cli.TestCredentials(ctx); err != nil { log.Fatal(err) }
//	}
package psclient
