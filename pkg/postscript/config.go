package postscript

import "time"

// Environment selects which Postscript environment a key belongs to.
type Environment string

const (
	// EnvironmentProduction is the live environment.
	EnvironmentProduction Environment = "production"

	// EnvironmentSandbox is the test environment. Sandbox keys hit the
	// same host; the distinction lives in the key itself.
	EnvironmentSandbox Environment = "sandbox"
)

// Config holds the settings for creating a Postscript API client. APIKey is
// required; everything else has sensible defaults.
type Config struct {
	// APIKey is the bearer token from the Postscript dashboard.
	APIKey string

	// Environment is production or sandbox. Defaults to production.
	Environment Environment

	// APIEndpoint overrides the primary API base URL. Used by tests.
	APIEndpoint string

	// PartnerEndpoint overrides the partner API base URL.
	PartnerEndpoint string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each request. Zero means the default.
	HTTPTimeout time.Duration

	// RetryMax enables transport-level retries when > 0. The client
	// never retries API errors on its own.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives debug/request logging when set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool
}

// Logger is the logging interface consumed by the client. Implementations
// adapt whatever logging stack the host uses.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
