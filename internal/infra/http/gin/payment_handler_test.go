package ginserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/app/commands"
	intentapp "paygate/internal/app/handlers/intent"
	"paygate/internal/app/middleware"
	"paygate/internal/app/queries"
	"paygate/internal/domain/payment"
	"paygate/internal/domain/shared/fault"
	"paygate/internal/infra/config"
	"paygate/internal/infra/obs"
	providermemory "paygate/internal/infra/provider/memory"
)

func newTestRouter(t *testing.T, provider *providermemory.Provider, apiToken string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, intentapp.CreateIntentCommand{}.Key(), &intentapp.CreateIntentHandler{Provider: provider})
	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, intentapp.ValidateIntentQuery{}.Key(), &intentapp.ValidateIntentHandler{Provider: provider})

	handlers := Handlers{
		Payment: PaymentHandler{
			Commands: middleware.ChainCommands(commandBus, middleware.Logging(logger)),
			Queries:  middleware.ChainQueries(queryBus, middleware.QueryLogging(logger)),
		},
	}
	if apiToken != "" {
		handlers.AuthMiddleware = StaticTokenAuth(apiToken)
	}

	server := NewServer(config.Config{Env: "test", HTTPAddr: ":0"}, obs.Middleware{Logger: logger}, obs.HealthHandlers{}, handlers)
	return server.Handler
}

func postJSON(t *testing.T, router http.Handler, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateIntentEndpoint(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents",
		`{"amount":15000,"currency":"USD","customerEmail":"guest@example.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.NotEmpty(t, resp["clientSecret"])
	assert.Equal(t, float64(15000), resp["amount"])
	assert.Equal(t, "usd", resp["currency"])
	assert.Equal(t, payment.StatusRequiresPaymentMethod, resp["status"])
	assert.Equal(t, false, resp["livemode"])
}

func TestCreateIntentEndpointRejectsBadAmount(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents", `{"amount":0,"currency":"usd"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Valid amount (in cents) is required")
	assert.Zero(t, provider.CreateCalls())
}

func TestCreateIntentEndpointRejectsMalformedBody(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents", `{"amount":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request data is required")
	assert.Zero(t, provider.CreateCalls())
}

func TestCreateIntentEndpointMapsDeclinedCard(t *testing.T) {
	provider := providermemory.NewProvider()
	provider.FailCreates(fault.FailedPrecondition("Your card was declined.", errors.New("card_error")))
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents", `{"amount":15000,"currency":"usd"}`, nil)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your card was declined.")
}

func TestValidateIntentEndpointUsable(t *testing.T) {
	provider := providermemory.NewProvider()
	provider.Seed(&payment.IntentRecord{
		ID:       "pi_live",
		Amount:   9900,
		Currency: "usd",
		Status:   payment.StatusSucceeded,
	})
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents/validate", `{"paymentIntentId":"pi_live"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["valid"])
	assert.Equal(t, payment.StatusSucceeded, resp["status"])
	assert.Equal(t, "pi_live", resp["id"])
}

func TestValidateIntentEndpointNotFoundIsOK(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents/validate", `{"paymentIntentId":"pi_missing"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["valid"])
	assert.Equal(t, payment.StatusNotFound, resp["status"])
	assert.Equal(t, "Payment intent not found", resp["error"])
	_, hasID := resp["id"]
	assert.False(t, hasID)
	_, hasAmount := resp["amount"]
	assert.False(t, hasAmount)
}

func TestValidateIntentEndpointRejectsEmptyID(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "")

	rec := postJSON(t, router, "/api/v1/payments/intents/validate", `{"paymentIntentId":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment intent ID is required")
}

func TestStaticTokenGate(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "sekrit")

	rec := postJSON(t, router, "/api/v1/payments/intents", `{"amount":100,"currency":"usd"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, router, "/api/v1/payments/intents", `{"amount":100,"currency":"usd"}`,
		map[string]string{"Authorization": "Bearer sekrit"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	provider := providermemory.NewProvider()
	router := newTestRouter(t, provider, "")

	for _, path := range []string{"/livez", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
