package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ilo80/esiee-plus-bot/internal/logging"
)

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

func serviceLogger(ctx context.Context, base *slog.Logger, serviceName, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = base
	}
	if logger == nil {
		logger = slog.Default()
	}

	pairs := []any{"service", serviceName}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	if len(attrs) > 0 {
		pairs = append(pairs, attrs...)
	}
	return logger.With(pairs...)
}

// ErrorKind maps sentinel, validation, and upstream errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrRoomNotFound) {
		return "not_found"
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return "validation"
	}

	var uErr *UpstreamError
	if errors.As(err, &uErr) {
		return "upstream"
	}

	return "unexpected"
}
