package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paygate/internal/app/commands"
	intentapp "paygate/internal/app/handlers/intent"
	"paygate/internal/app/middleware"
	"paygate/internal/app/policies"
	"paygate/internal/app/queries"
	"paygate/internal/domain/payment"
	"paygate/internal/infra/config"
	ginserver "paygate/internal/infra/http/gin"
	"paygate/internal/infra/obs"
	providermemory "paygate/internal/infra/provider/memory"
	stripeprovider "paygate/internal/infra/provider/stripe"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg.Env = env
		cfg.HTTPAddr = getenv("HTTP_ADDR", ":8080")
		cfg.ProviderMode = config.ProviderModeStripe
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	provider := buildProvider(cfg, logger)
	handlers := ginserver.Handlers{
		Payment: buildPaymentHandler(provider, logger),
	}
	if cfg.APIToken != "" {
		handlers.AuthMiddleware = ginserver.StaticTokenAuth(cfg.APIToken)
		logger.Info("bearer token gate enabled")
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "provider_mode", cfg.ProviderMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// buildProvider selects the provider port for the configured mode. The
// secret is resolved before the Stripe client exists; when it is missing the
// process stays up and every invocation fails with the precondition fault.
func buildProvider(cfg config.Config, logger *slog.Logger) policies.ProviderPort {
	if cfg.ProviderMode == config.ProviderModeMemory {
		logger.Warn("in-memory payment provider enabled; no real charges will be made")
		return providermemory.NewProvider()
	}
	secret, err := config.ResolveProviderSecret(cfg)
	if err != nil {
		logger.Error("provider secret resolution failed", "error", err)
		return unconfiguredProvider{err: err}
	}
	return stripeprovider.NewClient(secret, logger)
}

func buildPaymentHandler(provider policies.ProviderPort, logger *slog.Logger) ginserver.PaymentHandler {
	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, intentapp.CreateIntentCommand{}.Key(), &intentapp.CreateIntentHandler{
		Provider: provider,
	})
	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, intentapp.ValidateIntentQuery{}.Key(), &intentapp.ValidateIntentHandler{
		Provider: provider,
	})

	return ginserver.PaymentHandler{
		Commands: middleware.ChainCommands(commandBus, middleware.Logging(logger)),
		Queries:  middleware.ChainQueries(queryBus, middleware.QueryLogging(logger)),
	}
}

// unconfiguredProvider keeps the process serving when no secret is
// available: each invocation fails in isolation, nothing touches the network.
type unconfiguredProvider struct {
	err error
}

func (p unconfiguredProvider) CreateIntent(ctx context.Context, _ policies.IntentPayload) (*payment.IntentRecord, error) {
	return nil, p.err
}

func (p unconfiguredProvider) RetrieveIntent(ctx context.Context, _ string) (*payment.IntentRecord, error) {
	return nil, p.err
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
