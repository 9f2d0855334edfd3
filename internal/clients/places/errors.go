package places

import "fmt"

type ErrorKind string

const (
	KindTimeoutOrNetwork ErrorKind = "timeout_or_network"
	KindStatus           ErrorKind = "non_success_status"
	KindDecode           ErrorKind = "malformed_response"
)

// Error distinguishes lookup failure classes for logging. All kinds degrade
// to the same fallback tip in the recommendation path.
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
		return fmt.Sprintf("place search %s (%d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("place search %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
