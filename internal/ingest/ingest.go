// Package ingest turns PDF documents into plain text for the screening
// pipeline. PDF decoding is the only binary-format concern in the
// repository; everything downstream operates on the extracted text.
package ingest

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/screening-cli/internal/config"
)

// Extractor extracts text content from PDF files.
type Extractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// NewExtractor creates an Extractor based on config.
func NewExtractor(cfg config.IngestConfig) (Extractor, error) {
	switch cfg.Provider {
	case "local", "":
		return NewPdfToText(cfg.PdfToTextPath), nil
	case "purego":
		return NewPureGo(), nil
	default:
		return nil, eris.Errorf("ingest: unknown provider %q", cfg.Provider)
	}
}
