package repositories

import (
	"context"
	"encoding/json"
)

// Collection names used on the document gateway.
const (
	CollectionSessions     = "sessions"
	CollectionTransactions = "transactions"
	CollectionPreferences  = "preferences"
)

// Document is a stored record together with its generated identifier.
type Document struct {
	ID   string
	Data json.RawMessage
}

// DocumentGateway is the durable store for till records, keyed by generated identifiers.
// It offers no querying beyond a full-collection fetch; callers filter in memory.
type DocumentGateway interface {
	// Create stores record (JSON-encoded) in collection and returns the generated id.
	Create(ctx context.Context, collection string, record any) (string, error)

	// ListAll returns every document of collection in creation order.
	ListAll(ctx context.Context, collection string) ([]Document, error)

	// Update merges the top-level fields of partial into the document.
	// It fails with apperrors.ErrNotFound when the document does not exist.
	Update(ctx context.Context, collection, id string, partial map[string]any) error
}
