package reports

import (
	"context"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
)

// Publisher renders a closing report and hands it to an archive.
type Publisher struct {
	renderer portssvc.ReportRenderer
	archive  Archive
}

func NewPublisher(renderer portssvc.ReportRenderer, archive Archive) *Publisher {
	return &Publisher{renderer: renderer, archive: archive}
}

var _ portssvc.ReportPublisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, report domain.ClosingReport) (string, error) {
	data, err := p.renderer.Render(report)
	if err != nil {
		return "", fmt.Errorf("failed to render report for session %s: %w", report.Session.SessionID, err)
	}
	location, err := p.archive.Store(ctx, p.renderer.FileName(report), data)
	if err != nil {
		return "", fmt.Errorf("failed to archive report for session %s: %w", report.Session.SessionID, err)
	}
	return location, nil
}
