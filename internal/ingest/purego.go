package ingest

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// PureGo extracts PDF text in-process, with no external binary dependency.
// Text positioning is cruder than pdftotext -layout, but line order within
// a page is preserved well enough for anchor-based segmentation.
type PureGo struct{}

// NewPureGo creates a PureGo extractor.
func NewPureGo() *PureGo {
	return &PureGo{}
}

// ExtractText reads every page and concatenates the plain text, separating
// pages with form feeds so the segmenter can treat page boundaries as
// anchors.
func (p *PureGo) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", eris.Wrapf(err, "ingest: open %s", pdfPath)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := r.NumPage()

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", eris.Wrap(err, "ingest: canceled")
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// One unreadable page must not sink the document.
			zap.L().Warn("ingest: skipping unreadable page",
				zap.String("path", pdfPath),
				zap.Int("page", i),
				zap.Error(err),
			)
			continue
		}
		sb.WriteString(text)
		if i < numPages {
			sb.WriteString("\f")
		}
	}

	return sb.String(), nil
}
