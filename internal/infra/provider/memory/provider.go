package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"paygate/internal/app/policies"
	"paygate/internal/domain/payment"
)

// Provider is an in-memory stand-in for the card-processing provider, used
// in development mode and as the test double behind handler tests. It counts
// invocations so callers can assert that validation failures never reach the
// network seam.
type Provider struct {
	mu          sync.RWMutex
	intents     map[string]*payment.IntentRecord
	seq         int
	creates     int
	retrieves   int
	createErr   error
	retrieveErr error
}

// NewProvider builds an empty provider.
func NewProvider() *Provider {
	return &Provider{
		intents: make(map[string]*payment.IntentRecord),
	}
}

// CreateIntent fabricates a new intent record in Stripe's initial status.
func (p *Provider) CreateIntent(ctx context.Context, payload policies.IntentPayload) (*payment.IntentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.creates++
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.seq++
	id := fmt.Sprintf("pi_mem_%06d", p.seq)
	record := &payment.IntentRecord{
		ID:           id,
		ClientSecret: id + "_secret_mem",
		Created:      time.Now().Unix(),
		Livemode:     false,
		Amount:       payload.AmountCents,
		Currency:     payload.Currency,
		Status:       payment.StatusRequiresPaymentMethod,
	}
	p.intents[id] = record
	copied := *record
	return &copied, nil
}

// RetrieveIntent returns a stored record or payment.ErrIntentNotFound.
func (p *Provider) RetrieveIntent(ctx context.Context, id string) (*payment.IntentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.retrieves++
	forced := p.retrieveErr
	record, ok := p.intents[id]
	p.mu.Unlock()
	if forced != nil {
		return nil, forced
	}
	if !ok {
		return nil, payment.ErrIntentNotFound
	}
	copied := *record
	return &copied, nil
}

// Seed stores a record under its id, replacing any previous entry.
func (p *Provider) Seed(record *payment.IntentRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := *record
	p.intents[record.ID] = &copied
}

// FailCreates makes subsequent CreateIntent calls return err (nil resets).
func (p *Provider) FailCreates(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createErr = err
}

// FailRetrieves makes subsequent RetrieveIntent calls return err (nil resets).
func (p *Provider) FailRetrieves(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.retrieveErr = err
}

// CreateCalls reports how many times CreateIntent was invoked.
func (p *Provider) CreateCalls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.creates
}

// RetrieveCalls reports how many times RetrieveIntent was invoked.
func (p *Provider) RetrieveCalls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.retrieves
}

var _ policies.ProviderPort = (*Provider)(nil)
