package intent

import (
	"context"
	"errors"
	"strings"
	"time"

	"paygate/internal/app/commands"
	"paygate/internal/app/policies"
	"paygate/internal/domain/payment"
)

const createIntentKey = "payment.create_intent"

// CreateIntentCommand asks the provider to open a new payment intent for a
// booking attempt.
type CreateIntentCommand struct {
	Request *payment.IntentRequest
}

func (c CreateIntentCommand) Key() string { return createIntentKey }

// CreateIntentHandler validates the request, submits it to the provider and
// returns the non-sensitive projection of the created record. Exactly one
// outbound call per invocation; no retry.
type CreateIntentHandler struct {
	Provider policies.ProviderPort
	Now      func() time.Time
}

var ErrProviderRequired = errors.New("intent: provider port required")

func (h *CreateIntentHandler) Handle(ctx context.Context, cmd CreateIntentCommand) (*payment.IntentRecord, error) {
	if h.Provider == nil {
		return nil, ErrProviderRequired
	}
	if err := cmd.Request.Validate(); err != nil {
		return nil, err
	}
	req := cmd.Request

	// Caller metadata merged with the server creation stamp; the stamp wins
	// on key collision.
	metadata := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["created_at"] = h.now().UTC().Format(time.RFC3339)

	payload := policies.IntentPayload{
		AmountCents:  req.AmountCents,
		Currency:     req.NormalizedCurrency(),
		ReceiptEmail: strings.TrimSpace(req.CustomerEmail),
		Metadata:     metadata,
	}
	record, err := h.Provider.CreateIntent(ctx, payload)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (h *CreateIntentHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

var _ commands.Handler[CreateIntentCommand, *payment.IntentRecord] = (*CreateIntentHandler)(nil)
