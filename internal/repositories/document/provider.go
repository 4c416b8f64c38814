package document

import portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"

// NewRepositoryProvider builds the document-backed repositories on gateway.
func NewRepositoryProvider(gateway portsrepo.DocumentGateway, currencies portsrepo.CurrencyRepositoryFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    currencies,
		SessionRepo:     NewSessionRepository(gateway),
		TransactionRepo: NewTransactionRepository(gateway),
		PreferenceRepo:  NewPreferenceRepository(gateway),
	}
}
