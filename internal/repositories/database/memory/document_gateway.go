package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type storedDocument struct {
	id     string
	fields map[string]json.RawMessage
}

// DocumentGateway is an in-process DocumentGateway. Records are kept as JSON so that
// callers see the same encoding behavior as with the database gateway.
type DocumentGateway struct {
	mu          sync.RWMutex
	collections map[string][]*storedDocument
}

// NewDocumentGateway creates an empty in-memory gateway.
func NewDocumentGateway() *DocumentGateway {
	return &DocumentGateway{collections: make(map[string][]*storedDocument)}
}

var _ portsrepo.DocumentGateway = (*DocumentGateway)(nil)

func (g *DocumentGateway) Create(ctx context.Context, collection string, record any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewTransportError("create "+collection+" document", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", collection, err)
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("%s document must be a JSON object: %w", collection, err)
	}

	doc := &storedDocument{id: uuid.NewString(), fields: fields}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.collections[collection] = append(g.collections[collection], doc)
	return doc.id, nil
}

func (g *DocumentGateway) ListAll(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewTransportError("list "+collection, err)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	docs := make([]portsrepo.Document, 0, len(g.collections[collection]))
	for _, doc := range g.collections[collection] {
		data, err := json.Marshal(doc.fields)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s document %s: %w", collection, doc.id, err)
		}
		docs = append(docs, portsrepo.Document{ID: doc.id, Data: data})
	}
	return docs, nil
}

func (g *DocumentGateway) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewTransportError("update "+collection+" document", err)
	}

	encoded := make(map[string]json.RawMessage, len(partial))
	for key, value := range partial {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s field %s: %w", collection, key, err)
		}
		encoded[key] = data
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, doc := range g.collections[collection] {
		if doc.id == id {
			for key, value := range encoded {
				doc.fields[key] = value
			}
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("%s document %s", collection, id))
}
