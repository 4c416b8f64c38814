package services

import (
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// renderer and publisher may be nil when report export or archiving is disabled.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	renderer portssvc.ReportRenderer,
	publisher portssvc.ReportPublisher,
) (*portssvc.ServiceContainer, error) {
	options := []ServiceOption{
		WithLocation(cfg.TillLocation),
		WithLocalCurrencySymbol(cfg.LocalCurrencyCode),
	}

	auth, err := NewAuthService(cfg, options...)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Session:     NewSessionService(repos.SessionRepo, repos.TransactionRepo, repos.CurrencyRepo, publisher, options...),
		Transaction: NewTransactionService(repos.SessionRepo, repos.TransactionRepo, repos.CurrencyRepo, options...),
		Currency:    NewCurrencyService(repos.CurrencyRepo, repos.TransactionRepo, options...),
		Reporting:   NewReportingService(repos.SessionRepo, repos.TransactionRepo, repos.CurrencyRepo, renderer, options...),
		Auth:        auth,
		Preference:  NewPreferenceService(repos.PreferenceRepo, options...),
	}, nil
}
