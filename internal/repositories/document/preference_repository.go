package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
)

// PreferenceRepository keeps a single preferences document.
type PreferenceRepository struct {
	gateway portsrepo.DocumentGateway
}

func NewPreferenceRepository(gateway portsrepo.DocumentGateway) *PreferenceRepository {
	return &PreferenceRepository{gateway: gateway}
}

var _ portsrepo.PreferenceRepositoryFacade = (*PreferenceRepository)(nil)

func (r *PreferenceRepository) GetTheme(ctx context.Context) (domain.ThemeMode, error) {
	doc, err := r.current(ctx)
	if err != nil || doc == nil {
		return "", err
	}
	var rec preferenceRecord
	if err := json.Unmarshal(doc.Data, &rec); err != nil {
		return "", fmt.Errorf("failed to decode preferences: %w", err)
	}
	return domain.ThemeMode(rec.Theme), nil
}

func (r *PreferenceRepository) SaveTheme(ctx context.Context, mode domain.ThemeMode) error {
	doc, err := r.current(ctx)
	if err != nil {
		return err
	}
	if doc == nil {
		_, err = r.gateway.Create(ctx, portsrepo.CollectionPreferences, preferenceRecord{Theme: string(mode)})
		return err
	}
	return r.gateway.Update(ctx, portsrepo.CollectionPreferences, doc.ID, map[string]any{"theme": string(mode)})
}

// current returns the latest preferences document, or nil when none exists.
func (r *PreferenceRepository) current(ctx context.Context) (*portsrepo.Document, error) {
	docs, err := r.gateway.ListAll(ctx, portsrepo.CollectionPreferences)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[len(docs)-1], nil
}
