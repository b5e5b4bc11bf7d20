package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into the caller-facing taxonomy. Transport
// adapters map kinds to status codes; handlers decide the kind once, at the
// boundary where the failure is first understood.
type Kind string

const (
	// KindInvalidArgument marks a request that violates a precondition.
	// Always raised before any network call is made.
	KindInvalidArgument Kind = "invalid_argument"
	// KindFailedPrecondition marks a missing prerequisite: no provider
	// secret configured, or the provider rejected the underlying payment
	// method (declined card).
	KindFailedPrecondition Kind = "failed_precondition"
	// KindInternal marks provider-side faults unrelated to the specific
	// request, and anything unclassified.
	KindInternal Kind = "internal"
)

// Fault is a classified error carrying a caller-facing message. The message
// may include provider diagnostic text but never secret material.
type Fault struct {
	Kind    Kind
	Message string
	cause   error
}

func (f *Fault) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (f *Fault) Unwrap() error { return f.cause }

// InvalidArgument builds a precondition-violation fault.
func InvalidArgument(message string) *Fault {
	return &Fault{Kind: KindInvalidArgument, Message: message}
}

// FailedPrecondition builds a missing-prerequisite fault wrapping cause.
func FailedPrecondition(message string, cause error) *Fault {
	return &Fault{Kind: KindFailedPrecondition, Message: message, cause: cause}
}

// Internal builds an unclassified or provider-side fault wrapping cause.
func Internal(message string, cause error) *Fault {
	return &Fault{Kind: KindInternal, Message: message, cause: cause}
}

// KindOf extracts the kind from err, returning KindInternal for errors that
// carry no classification.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message, falling back to err.Error()
// for unclassified errors.
func MessageOf(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
