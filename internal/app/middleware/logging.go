package middleware

import (
	"context"
	"log/slog"

	"paygate/internal/app/commands"
	"paygate/internal/app/queries"
	"paygate/internal/domain/shared/fault"
)

// Logging records every dispatched command with its operation key and, on
// failure, the fault kind. Messages carry enough context for operator
// diagnosis; secret material never reaches the bus, so it cannot be logged.
func Logging(logger *slog.Logger) CommandMiddleware {
	if logger == nil {
		panic("middleware: logger required")
	}
	return func(next commands.Bus) commands.Bus {
		nextFn := wrapCommand(next)
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			res, err := nextFn(ctx, cmd)
			if err != nil {
				logger.Error("command failed",
					"operation", cmd.Key(),
					"kind", string(fault.KindOf(err)),
					"error", err,
				)
				return nil, err
			}
			logger.Info("command handled", "operation", cmd.Key())
			return res, nil
		})
	}
}

// QueryLogging is the query-side counterpart of Logging.
func QueryLogging(logger *slog.Logger) QueryMiddleware {
	if logger == nil {
		panic("middleware: logger required")
	}
	return func(next queries.Bus) queries.Bus {
		nextFn := wrapQuery(next)
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			res, err := nextFn(ctx, q)
			if err != nil {
				logger.Error("query failed",
					"operation", q.Key(),
					"kind", string(fault.KindOf(err)),
					"error", err,
				)
				return nil, err
			}
			logger.Debug("query handled", "operation", q.Key())
			return res, nil
		})
	}
}
