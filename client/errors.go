package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies what went wrong with a backend call. Store code branches
// on the kind, never on error strings.
type Kind string

const (
	KindNetworkUnavailable Kind = "network_unavailable"
	KindUnauthorized       Kind = "unauthorized"
	KindNotFound           Kind = "not_found"
	KindValidationFailed   Kind = "validation_failed"
	KindUnknown            Kind = "unknown"
)

// Error is the failure contract of every backend operation.
type Error struct {
	Kind    Kind
	Op      string // e.g. "foods.insert"
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the kind from any error, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// IsNetworkUnavailable reports whether the error means the backend could
// not be reached at all, the condition the stores degrade to cache on.
func IsNetworkUnavailable(err error) bool {
	return KindOf(err) == KindNetworkUnavailable
}

func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidationFailed
	default:
		return KindUnknown
	}
}
