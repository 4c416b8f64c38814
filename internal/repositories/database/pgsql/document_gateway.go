package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	"github.com/SscSPs/bureau_de_change/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentGateway stores till records as JSONB documents grouped by collection.
type PgxDocumentGateway struct {
	BaseRepository
}

// NewPgxDocumentGateway creates a document gateway on the documents table.
func NewPgxDocumentGateway(pool *pgxpool.Pool) *PgxDocumentGateway {
	return &PgxDocumentGateway{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentGateway = (*PgxDocumentGateway)(nil)

func (g *PgxDocumentGateway) Create(ctx context.Context, collection string, record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO documents (collection, document_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now());
	`
	if _, err := g.Pool.Exec(ctx, query, collection, id, data); err != nil {
		return "", g.wrapError("create "+collection+" document", err)
	}
	return id, nil
}

func (g *PgxDocumentGateway) ListAll(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	query := `
		SELECT seq, collection, document_id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1
		ORDER BY seq;
	`
	rows, err := g.Pool.Query(ctx, query, collection)
	if err != nil {
		return nil, g.wrapError("list "+collection, err)
	}
	defer rows.Close()

	rowModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Document, error) {
		var doc models.Document
		err := row.Scan(&doc.Seq, &doc.Collection, &doc.DocumentID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt)
		return doc, err
	})
	if err != nil {
		return nil, g.wrapError("scan "+collection, err)
	}

	docs := make([]portsrepo.Document, len(rowModels))
	for i, m := range rowModels {
		docs[i] = portsrepo.Document{ID: m.DocumentID, Data: json.RawMessage(m.Data)}
	}
	return docs, nil
}

// Update merges partial into the stored JSON with the jsonb concatenation operator.
func (g *PgxDocumentGateway) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	data, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("failed to encode %s update: %w", collection, err)
	}

	query := `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND document_id = $2;
	`
	tag, err := g.Pool.Exec(ctx, query, collection, id, data)
	if err != nil {
		return g.wrapError("update "+collection+" document", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s document %s", collection, id))
	}
	return nil
}
