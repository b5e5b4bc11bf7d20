package stripeprovider

import (
	"context"
	"log/slog"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"paygate/internal/app/policies"
	"paygate/internal/domain/payment"
)

// Client adapts the Stripe SDK to the provider port seam. The secret key is
// injected once at construction; it never travels through request payloads
// or log lines.
type Client struct {
	api    *client.API
	logger *slog.Logger
}

// NewClient builds a Stripe-backed provider client for the given secret key.
func NewClient(secretKey string, logger *slog.Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, logger: logger}
}

// CreateIntent opens a payment intent with automatic payment method
// selection enabled. ctx cancellation aborts the outbound call.
func (c *Client) CreateIntent(ctx context.Context, p policies.IntentPayload) (*payment.IntentRecord, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:  ctx,
			Metadata: p.Metadata,
		},
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if p.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(p.ReceiptEmail)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		translated := translateError("create_intent", err)
		c.logFailure("create_intent", err)
		return nil, translated
	}
	return fromStripeIntent(pi), nil
}

// RetrieveIntent fetches an existing intent by id. Unknown ids map to
// payment.ErrIntentNotFound rather than a fault.
func (c *Client) RetrieveIntent(ctx context.Context, id string) (*payment.IntentRecord, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}
	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		if isNotFound(err) {
			return nil, payment.ErrIntentNotFound
		}
		translated := translateError("retrieve_intent", err)
		c.logFailure("retrieve_intent", err)
		return nil, translated
	}
	return fromStripeIntent(pi), nil
}

func (c *Client) logFailure(operation string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Error("stripe request failed",
		"operation", operation,
		"category", errorCategory(err),
		"error", err,
	)
}

// fromStripeIntent projects only the non-sensitive fields of the provider
// record.
func fromStripeIntent(pi *stripe.PaymentIntent) *payment.IntentRecord {
	return &payment.IntentRecord{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Created:      pi.Created,
		Livemode:     pi.Livemode,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}
}

var _ policies.ProviderPort = (*Client)(nil)
