package constants

import "time"

// API endpoints.
const (
	// DefaultAPIEndpoint is the primary Postscript API base URL.
	DefaultAPIEndpoint = "https://api.postscript.io/api/v2"

	// PartnerAPIEndpoint is the partner API base URL (same auth).
	PartnerAPIEndpoint = "https://api.postscript.io/partners/api"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as the credential probe.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry waits. Retries are opt-in; the executor performs a single attempt
// unless configured otherwise.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination.
const (
	// PageSize is the fixed per-request page size used when aggregating
	// all pages of a list endpoint.
	PageSize = 100

	// PageDelay is the cooperative delay between page requests.
	PageDelay = 100 * time.Millisecond
)

// Message length limits.
const (
	// MaxSMSLength is the maximum body length for a plain SMS.
	MaxSMSLength = 160

	// MaxMMSLength is the maximum body length for a multimedia message.
	MaxMMSLength = 1600
)
