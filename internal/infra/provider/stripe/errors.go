package stripeprovider

import (
	"errors"

	stripe "github.com/stripe/stripe-go/v74"

	"paygate/internal/domain/shared/fault"
)

// translateError maps a Stripe failure onto the caller-facing taxonomy:
// card errors mean the underlying payment method is unusable
// (failed precondition); everything else, including rate limits, outages and
// unclassifiable failures, is an internal provider fault. The translated
// message carries the provider's diagnostic text, never credentials.
func translateError(operation string, err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return fault.Internal("Payment provider request failed", err)
	}
	message := stripeErr.Msg
	if message == "" {
		message = "Payment provider request failed"
	}
	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		return fault.FailedPrecondition(message, err)
	default:
		return fault.Internal(message, err)
	}
}

// isNotFound detects the provider's missing-resource signal on retrieval.
func isNotFound(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.Code == stripe.ErrorCodeResourceMissing
}

// errorCategory names the provider failure class for log lines.
func errorCategory(err error) string {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return "transport"
	}
	if stripeErr.Type != "" {
		return string(stripeErr.Type)
	}
	return "unknown"
}
