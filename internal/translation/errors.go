package translation

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the gateway reports. Every
// error returned by Gateway.Translate carries exactly one kind; provider
// internals never cross the gateway boundary unmapped.
type Kind int

const (
	// KindInvalidInput: empty or over-length text. The provider was not
	// contacted.
	KindInvalidInput Kind = iota + 1
	// KindUnknownLanguage: a language selector that the table cannot
	// resolve. The provider was not contacted.
	KindUnknownLanguage
	// KindServiceUnavailable: no translation provider is configured or
	// constructible. Distinct from a transient call failure.
	KindServiceUnavailable
	// KindTranslationFailed: any runtime failure during the provider call
	// (network, HTTP status, malformed payload, rate limit).
	KindTranslationFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnknownLanguage:
		return "unknown_language"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindTranslationFailed:
		return "translation_failed"
	default:
		return "unknown"
	}
}

// Error is a gateway failure with a stable kind and a short human-readable
// message safe to render to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var gerr *Error
	return errors.As(err, &gerr) && gerr.Kind == kind
}

// KindOf returns the kind carried by err, or 0 when err is not a gateway
// error.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return 0
}

// UserMessage returns the renderable message carried by err, falling back
// to a generic line for non-gateway errors.
func UserMessage(err error) string {
	var gerr *Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	return "Translation failed. Please try again later."
}

func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func unknownLanguage(message string) *Error {
	return &Error{Kind: KindUnknownLanguage, Message: message}
}

func serviceUnavailable(message string, err error) *Error {
	return &Error{Kind: KindServiceUnavailable, Message: message, Err: err}
}

func translationFailed(message string, err error) *Error {
	return &Error{Kind: KindTranslationFailed, Message: message, Err: err}
}
