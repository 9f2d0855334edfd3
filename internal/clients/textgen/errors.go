package textgen

import "fmt"

type ErrorKind string

const (
	KindTimeoutOrNetwork ErrorKind = "timeout_or_network"
	KindStatus           ErrorKind = "non_success_status"
	KindDecode           ErrorKind = "malformed_response"
)

// Error carries the failure class so callers can log the cause; every kind is
// recovered with the same fallback text further up.
type Error struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("textgen %s (%d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("textgen %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
