// Package psclient provides the main entry point for creating Postscript API clients
package psclient

import (
	"fmt"
	"strings"

	"github.com/velobpa/postscript-go/internal/client"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// New creates a new Postscript API client from configuration.
func New(config *postscript.Config) (postscript.Client, error) {
	if config == nil {
		return nil, postscript.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, postscript.ErrAPIKeyRequired
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	if config.PartnerEndpoint != "" {
		config.PartnerEndpoint = normalizeEndpoint(config.PartnerEndpoint)
	}

	psClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return psClient, nil
}

// NewWithAPIKey creates a client with just an API key and default endpoints.
func NewWithAPIKey(apiKey string) (postscript.Client, error) {
	return New(&postscript.Config{APIKey: apiKey})
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
