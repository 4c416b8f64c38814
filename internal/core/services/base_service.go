package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
)

const defaultLocalCurrencySymbol = "FC"

// BaseService provides common functionality for all services
type BaseService struct {
	clock               func() time.Time
	location            *time.Location
	localCurrencySymbol string
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation sets the till timezone used to compute calendar dates.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLocalCurrencySymbol sets the symbol printed next to local amounts.
func WithLocalCurrencySymbol(symbol string) ServiceOption {
	return func(s *BaseService) {
		if symbol != "" {
			s.localCurrencySymbol = symbol
		}
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{
		clock:               time.Now,
		location:            time.UTC,
		localCurrencySymbol: defaultLocalCurrencySymbol,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

func (s *BaseService) now() time.Time {
	return s.clock().In(s.location)
}

// today is the till calendar date.
func (s *BaseService) today() string {
	return domain.CalendarDate(s.clock(), s.location)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
