package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates no API key is configured in settings or env.
	ErrMissingAPIKey = errors.New("no API key configured")

	// ErrDisabled indicates AI features were switched off by configuration.
	ErrDisabled = errors.New("ai features disabled")

	// ErrHTTPStatus indicates the endpoint answered with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrUnavailable indicates the endpoint could not be reached at all.
	ErrUnavailable = errors.New("ai endpoint unavailable")

	// ErrInvalidOutput indicates the reply could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid ai output format")
)

// ConfigError is returned before any network traffic when the gateway
// cannot make a call with the current configuration.
type ConfigError struct {
	Setting string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ai config (%s): %v", e.Setting, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NetworkError covers transport failures and non-2xx replies. StatusCode
// is zero when no response was received.
type NetworkError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ai request failed: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("ai request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means a reply arrived but held no usable JSON.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing ai reply: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
