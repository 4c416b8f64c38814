package repositories

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
)

// PreferenceRepositoryFacade stores operator display preferences.
type PreferenceRepositoryFacade interface {
	// GetTheme returns the stored theme, or an empty mode when none was saved.
	GetTheme(ctx context.Context) (domain.ThemeMode, error)

	// SaveTheme stores the theme.
	SaveTheme(ctx context.Context, mode domain.ThemeMode) error
}
