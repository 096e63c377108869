package usecase

import (
	"context"
	"fmt"

	"resumely/internal/model"
	"resumely/internal/render"

	"go.uber.org/zap"
)

// PDFRenderer turns a standalone HTML page into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter renders a document with its own template and hands the resulting
// page to the PDF renderer. HTML export is also available on its own for
// print preview.
type Exporter struct {
	pdf PDFRenderer
	log *zap.Logger
}

func NewExporter(pdf PDFRenderer, log *zap.Logger) *Exporter {
	return &Exporter{pdf: pdf, log: log}
}

func (e *Exporter) ExportHTML(doc *model.Document) string {
	body := render.Render(doc, doc.Settings)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; }
</style>
</head>
<body>%s</body>
</html>`, body)
}

func (e *Exporter) ExportPDF(ctx context.Context, doc *model.Document) ([]byte, error) {
	if e.pdf == nil {
		return nil, fmt.Errorf("no pdf renderer configured")
	}
	page := e.ExportHTML(doc)
	e.log.Debug("rendering pdf", zap.String("template", doc.Settings.Template), zap.Int("html_bytes", len(page)))
	pdf, err := e.pdf.RenderHTMLToPDF(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}
