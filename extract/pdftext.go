package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFTextBackend reads the embedded PDF text layer using ledongthuc/pdf
// (pure Go, no cgo). It is the first-priority backend because the text
// layer, when present, keeps the most layout information.
type PDFTextBackend struct{}

func NewPDFTextBackend() *PDFTextBackend {
	return &PDFTextBackend{}
}

func (b *PDFTextBackend) Name() string {
	return "pdftext"
}

func (b *PDFTextBackend) ExtractPages(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrBackendUnavailable)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf: %v", ErrBackendUnavailable, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page))
	}
	return pages, nil
}

// pageText renders one page row by row so that downstream rules can anchor
// on "label line, then value line". Unreadable pages become empty strings
// to keep physical page order intact.
func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, row := range rows {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		for j, word := range row.Content {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(word.S)
		}
	}
	return sb.String()
}
