package policies

import (
	"context"

	"paygate/internal/domain/payment"
)

// IntentPayload is the normalized creation payload submitted to the provider.
// Currency is already lowercased and metadata already carries the server
// creation stamp by the time a port sees it.
type IntentPayload struct {
	AmountCents  int64
	Currency     string
	ReceiptEmail string
	Metadata     map[string]string
}

// ProviderPort is the narrow seam to the external card-processing provider.
// RetrieveIntent reports an unknown id as payment.ErrIntentNotFound; any
// other failure is a classified fault. Implementations honor ctx cancellation
// on the outbound call where the transport supports it.
type ProviderPort interface {
	CreateIntent(ctx context.Context, p IntentPayload) (*payment.IntentRecord, error)
	RetrieveIntent(ctx context.Context, id string) (*payment.IntentRecord, error)
}
