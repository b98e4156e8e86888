package extract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFCPUBackend extracts text by decoding page content streams with
// pdfcpu. It recovers less layout than the text-layer backend but handles
// documents whose text layer the primary backend cannot read.
type PDFCPUBackend struct {
	conf *model.Configuration
}

func NewPDFCPUBackend() *PDFCPUBackend {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPUBackend{conf: conf}
}

func (b *PDFCPUBackend) Name() string {
	return "pdfcpu"
}

func (b *PDFCPUBackend) ExtractPages(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrBackendUnavailable)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), b.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: pdfcpu read: %v", ErrBackendUnavailable, err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		stream, err := io.ReadAll(r)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, decodeContentStream(stream))
	}
	return pages, nil
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// decodeContentStream pulls text out of PDF content stream operators.
// Text-positioning operators (Td, TD, T*, ') become newlines so that the
// label-then-value-line structure of the form survives.
func decodeContentStream(data []byte) string {
	var sb bytes.Buffer

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		// (text) Tj and [(text) -100 (more)] TJ show text on the current line.
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		// (text) ' moves to the next line before showing text.
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		// Td/TD/T* reposition the text cursor; treat each as a line break.
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// decodePDFString resolves basic PDF literal-string escapes, including
// octal escapes like \040.
func decodePDFString(raw []byte) string {
	var sb bytes.Buffer
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}
