package memory

import (
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	"github.com/SscSPs/bureau_de_change/internal/repositories/document"
)

// NewRepositoryProvider wires in-memory repositories seeded with the default rate table.
func NewRepositoryProvider() (portsrepo.RepositoryProvider, error) {
	currencies, err := NewCurrencyRepository(domain.DefaultCurrencies())
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return document.NewRepositoryProvider(NewDocumentGateway(), currencies), nil
}
