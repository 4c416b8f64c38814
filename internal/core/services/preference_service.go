package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
)

type preferenceService struct {
	BaseService
	preferenceRepo portsrepo.PreferenceRepositoryFacade
}

// NewPreferenceService creates the display preference service
func NewPreferenceService(repo portsrepo.PreferenceRepositoryFacade, options ...ServiceOption) portssvc.PreferenceSvc {
	return &preferenceService{
		BaseService:    newBaseService(options),
		preferenceRepo: repo,
	}
}

var _ portssvc.PreferenceSvc = (*preferenceService)(nil)

func (s *preferenceService) GetTheme(ctx context.Context) (domain.ThemeMode, error) {
	mode, err := s.preferenceRepo.GetTheme(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	if !mode.Valid() {
		return domain.ThemeLight, nil
	}
	return mode, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, mode domain.ThemeMode) error {
	if !mode.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown theme '%s'", mode))
	}
	if err := s.preferenceRepo.SaveTheme(ctx, mode); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	s.LogDebug(ctx, "Theme saved", slog.String("theme", string(mode)))
	return nil
}
