package intent

import (
	"context"
	"errors"
	"strings"

	"paygate/internal/app/policies"
	"paygate/internal/app/queries"
	"paygate/internal/domain/payment"
	"paygate/internal/domain/shared/fault"
)

const validateIntentKey = "payment.validate_intent"

// ValidateIntentQuery checks whether an existing intent is still usable for
// a booking.
type ValidateIntentQuery struct {
	PaymentIntentID string
}

func (q ValidateIntentQuery) Key() string { return validateIntentKey }

// ValidateIntentHandler retrieves an intent by id and classifies its status
// against the usable set. An unknown id is a successful negative result, not
// a failure: stale ids from abandoned checkouts are routine.
type ValidateIntentHandler struct {
	Provider policies.ProviderPort
}

func (h *ValidateIntentHandler) Handle(ctx context.Context, q ValidateIntentQuery) (payment.ValidationResult, error) {
	var zero payment.ValidationResult
	if h.Provider == nil {
		return zero, ErrProviderRequired
	}
	if strings.TrimSpace(q.PaymentIntentID) == "" {
		return zero, fault.InvalidArgument("Payment intent ID is required")
	}

	record, err := h.Provider.RetrieveIntent(ctx, q.PaymentIntentID)
	if errors.Is(err, payment.ErrIntentNotFound) {
		return payment.NotFoundResult(), nil
	}
	if err != nil {
		return zero, err
	}
	return payment.ClassifyRecord(record), nil
}

var _ queries.Handler[ValidateIntentQuery, payment.ValidationResult] = (*ValidateIntentHandler)(nil)
