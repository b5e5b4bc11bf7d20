package payment

import (
	"errors"
	"strings"

	"paygate/internal/domain/shared/fault"
)

// ErrIntentNotFound is reported by provider ports when the requested intent
// id does not exist on the provider side. The validator treats it as a
// successful negative outcome, never as a failure.
var ErrIntentNotFound = errors.New("payment: intent not found")

// Provider-defined intent statuses. This layer treats statuses as opaque
// strings except for membership in the usable set.
const (
	StatusSucceeded             = "succeeded"
	StatusProcessing            = "processing"
	StatusRequiresCapture       = "requires_capture"
	StatusRequiresConfirmation  = "requires_confirmation"
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresAction        = "requires_action"
	StatusCanceled              = "canceled"

	// StatusNotFound is synthetic: reported to callers when the provider
	// does not know the intent id.
	StatusNotFound = "not_found"
)

var usableStatuses = map[string]struct{}{
	StatusSucceeded:             {},
	StatusProcessing:            {},
	StatusRequiresCapture:       {},
	StatusRequiresConfirmation:  {},
	StatusRequiresPaymentMethod: {},
}

// StatusUsable reports whether a booking may proceed on an intent in the
// given status.
func StatusUsable(status string) bool {
	_, ok := usableStatuses[status]
	return ok
}

// IntentRequest describes a creation request. Amounts are integer minor
// units (cents) to avoid floating point issues.
type IntentRequest struct {
	AmountCents   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// Validate checks creation preconditions in contract order, first failure
// wins. It runs before any network call.
func (r *IntentRequest) Validate() error {
	if r == nil {
		return fault.InvalidArgument("Request data is required")
	}
	if r.AmountCents <= 0 {
		return fault.InvalidArgument("Valid amount (in cents) is required")
	}
	if strings.TrimSpace(r.Currency) == "" {
		return fault.InvalidArgument("Currency is required")
	}
	return nil
}

// NormalizedCurrency returns the currency lowercased for provider submission.
func (r *IntentRequest) NormalizedCurrency() string {
	return strings.ToLower(strings.TrimSpace(r.Currency))
}

// IntentRecord is the non-sensitive projection of a provider payment intent.
// Records are created once per booking attempt and never mutated by this
// layer; capture, cancellation and expiry belong to the provider.
type IntentRecord struct {
	ID           string
	ClientSecret string
	Created      int64
	Livemode     bool
	Amount       int64
	Currency     string
	Status       string
}

// ValidationResult is the outcome of classifying an existing intent.
type ValidationResult struct {
	Valid    bool
	Status   string
	Amount   int64
	Currency string
	ID       string
	Error    string
}

// ClassifyRecord derives a validation result from a retrieved record.
func ClassifyRecord(rec *IntentRecord) ValidationResult {
	return ValidationResult{
		Valid:    StatusUsable(rec.Status),
		Status:   rec.Status,
		Amount:   rec.Amount,
		Currency: rec.Currency,
		ID:       rec.ID,
	}
}

// NotFoundResult is the fixed negative outcome for unknown intent ids. A
// missing or stale id is an expected client condition (abandoned checkout)
// and must not interrupt caller flow.
func NotFoundResult() ValidationResult {
	return ValidationResult{
		Valid:  false,
		Status: StatusNotFound,
		Error:  "Payment intent not found",
	}
}
