package services

import (
	"context"
	"log/slog"

	"github.com/somkassa/exchange_office_app/internal/middleware"
)

// BaseService provides request-scoped logging shared by all services.
type BaseService struct{}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogInfo logs an informational message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Info(msg, args...)
}

// LogError logs an error message with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Error(msg, args...)
}

// LogDebug logs a debug message with the request-scoped logger.
func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.logger(ctx).Debug(msg, args...)
}
