package services

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
)

// PreferenceSvc manages the operator's display preferences.
type PreferenceSvc interface {
	// GetTheme returns the saved theme, light when none was saved.
	GetTheme(ctx context.Context) (domain.ThemeMode, error)
	SetTheme(ctx context.Context, mode domain.ThemeMode) error
}
