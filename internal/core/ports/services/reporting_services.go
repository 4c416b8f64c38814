package services

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
)

// ReportingSvc defines the interface for session reports
type ReportingSvc interface {
	// GetSessionReport aggregates a session. Open sessions give live statistics.
	GetSessionReport(ctx context.Context, sessionID string) (*domain.SessionReport, error)

	// ExportSessionReport renders the session report as a workbook and returns its file name.
	ExportSessionReport(ctx context.Context, sessionID string) ([]byte, string, error)
}

// ReportRenderer turns a closing report into a document.
type ReportRenderer interface {
	Render(report domain.ClosingReport) ([]byte, error)
	FileName(report domain.ClosingReport) string
}

// ReportPublisher generates and stores the report of a closed session.
// It returns where the document was stored.
type ReportPublisher interface {
	Publish(ctx context.Context, report domain.ClosingReport) (string, error)
}
