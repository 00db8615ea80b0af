package postscript

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/velobpa/postscript-go/internal/constants"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	e164Re     = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// NormalizePhoneNumber converts a loosely formatted phone number to E.164.
// Ten digits are assumed to be a US number; eleven digits starting with 1 a
// US number with country code; anything longer is assumed to carry its own
// country code. No further validation happens here; callers that need strict
// E.164 use IsValidE164.
func NormalizePhoneNumber(raw string) (string, error) {
	if raw == "" {
		return "", NewInvalidArgumentError("phone number is required")
	}

	cleaned := nonDigitRe.ReplaceAllString(raw, "")

	switch {
	case len(cleaned) == 10:
		return "+1" + cleaned, nil
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "1"):
		return "+" + cleaned, nil
	case len(cleaned) > 10:
		return "+" + cleaned, nil
	}

	return "", NewInvalidArgumentError("invalid phone number format: %s, expected 10+ digits", raw)
}

// IsValidE164 reports whether s is a strictly valid E.164 phone number.
func IsValidE164(s string) bool {
	return e164Re.MatchString(s)
}

// dateLayouts are the accepted input formats for FormatDate, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// isoMillis serializes ISO-8601 UTC instants with millisecond precision, so
// an already-ISO input round-trips unchanged.
const isoMillis = "2006-01-02T15:04:05.000Z"

// FormatDate converts a time.Time or a parseable date string to its UTC
// ISO-8601 representation with millisecond precision.
func FormatDate(v interface{}) (string, error) {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Format(isoMillis), nil
	case string:
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, d)
			if err == nil {
				return t.UTC().Format(isoMillis), nil
			}
		}

		return "", NewInvalidArgumentError("invalid date: %s", d)
	default:
		return "", NewInvalidArgumentError("invalid date value of type %T", v)
	}
}

// BuildSubscriberQuery copies recognized subscriber list filters into query
// parameters, running date bounds through FormatDate. Unrecognized keys are
// dropped.
func BuildSubscriberQuery(filters map[string]interface{}) (url.Values, error) {
	query := url.Values{}

	if tag, ok := filters["tag"].(string); ok && tag != "" {
		query.Set("tag", tag)
	}

	if origin, ok := filters["origin"].(string); ok && origin != "" {
		query.Set("origin", origin)
	}

	if subscribed, ok := filters["subscribed"].(bool); ok {
		query.Set("subscribed", fmt.Sprintf("%t", subscribed))
	}

	for _, key := range []string{"created_after", "created_before"} {
		raw, ok := filters[key]
		if !ok {
			continue
		}

		formatted, err := FormatDate(raw)
		if err != nil {
			return nil, err
		}

		query.Set(key, formatted)
	}

	return query, nil
}

// BuildMessagePayload assembles the wire body for sending a message.
// subscriber_id and body are always present; optional fields appear only
// when set, with pointer options distinguishing an explicit false from
// absence.
func BuildMessagePayload(subscriberID, body string, options *MessageOptions) map[string]interface{} {
	payload := map[string]interface{}{
		"subscriber_id": subscriberID,
		"body":          body,
	}

	if options == nil {
		return payload
	}

	if options.MediaURL != "" {
		payload["media_url"] = options.MediaURL
	}

	if options.KeywordID != "" {
		payload["keyword_id"] = options.KeywordID
	}

	if options.SkipFatigue != nil {
		payload["skip_fatigue"] = *options.SkipFatigue
	}

	if options.UseShortLinks != nil {
		payload["use_short_links"] = *options.UseShortLinks
	}

	return payload
}

// CheckMessageLength validates a message body against the per-type limit:
// 160 characters for plain SMS, 1600 for multimedia.
func CheckMessageLength(text string, multimedia bool) error {
	limit := constants.MaxSMSLength
	if multimedia {
		limit = constants.MaxMMSLength
	}

	length := utf8.RuneCountInString(text)
	if length > limit {
		return &MessageTooLongError{Limit: limit, Length: length}
	}

	return nil
}

// Simplify unwraps the single-resource response envelope: when the decoded
// response object carries a non-nil dataKey entry, that entry is returned;
// otherwise the response passes through unchanged.
func Simplify(response interface{}, dataKey string) interface{} {
	obj, ok := response.(map[string]interface{})
	if !ok {
		return response
	}

	if data, ok := obj[dataKey]; ok && data != nil {
		return data
	}

	return response
}
