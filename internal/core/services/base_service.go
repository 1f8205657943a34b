package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
	"github.com/SscSPs/audit_dashboard/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics *metrics.Metrics
	Clock   func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithMetrics records domain counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func (s *BaseService) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// Today returns the current calendar date.
func (s *BaseService) Today() time.Time {
	if s.Clock == nil {
		return domain.DateOf(time.Now())
	}
	return domain.DateOf(s.Clock())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
