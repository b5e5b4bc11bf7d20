package stripeprovider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v74"

	"paygate/internal/domain/shared/fault"
)

func TestTranslateCardErrorIsFailedPrecondition(t *testing.T) {
	err := translateError("create_intent", &stripe.Error{
		Type: stripe.ErrorTypeCard,
		Code: stripe.ErrorCodeCardDeclined,
		Msg:  "Your card was declined.",
	})
	assert.Equal(t, fault.KindFailedPrecondition, fault.KindOf(err))
	assert.Equal(t, "Your card was declined.", fault.MessageOf(err))
}

func TestTranslateAPIErrorIsInternal(t *testing.T) {
	for _, typ := range []stripe.ErrorType{
		stripe.ErrorTypeAPI,
		stripe.ErrorTypeInvalidRequest,
		stripe.ErrorTypeIdempotency,
	} {
		err := translateError("create_intent", &stripe.Error{Type: typ, Msg: "upstream trouble"})
		assert.Equal(t, fault.KindInternal, fault.KindOf(err), string(typ))
		assert.Equal(t, "upstream trouble", fault.MessageOf(err))
	}
}

func TestTranslateNonStripeErrorIsInternal(t *testing.T) {
	err := translateError("retrieve_intent", errors.New("connection reset"))
	assert.Equal(t, fault.KindInternal, fault.KindOf(err))
	assert.Equal(t, "Payment provider request failed", fault.MessageOf(err))
}

func TestTranslateEmptyMessageGetsFallback(t *testing.T) {
	err := translateError("create_intent", &stripe.Error{Type: stripe.ErrorTypeAPI})
	assert.Equal(t, "Payment provider request failed", fault.MessageOf(err))
}

func TestIsNotFoundOnlyForResourceMissing(t *testing.T) {
	assert.True(t, isNotFound(&stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest,
		Code: stripe.ErrorCodeResourceMissing,
	}))
	assert.False(t, isNotFound(&stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest,
		Code: stripe.ErrorCodeCardDeclined,
	}))
	assert.False(t, isNotFound(errors.New("connection reset")))
}

func TestErrorCategory(t *testing.T) {
	assert.Equal(t, "card_error", errorCategory(&stripe.Error{Type: stripe.ErrorTypeCard}))
	assert.Equal(t, "transport", errorCategory(errors.New("dial tcp: timeout")))
	assert.Equal(t, "unknown", errorCategory(&stripe.Error{}))
}
