package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBackendUnavailable means a single backend could not process the
// document at all (missing capability or unparsable bytes). The adapter
// treats both the same way: move on to the next backend.
var ErrBackendUnavailable = errors.New("extraction backend unavailable")

// ErrNoTextExtracted means every configured backend failed or produced
// only whitespace. This is the pipeline's only fatal condition.
var ErrNoTextExtracted = errors.New("no text could be extracted from the document")

// Backend renders document bytes into an ordered sequence of per-page
// texts, preserving line structure within each page. Implementations are
// interchangeable; downstream extraction never depends on which backend
// produced the text.
type Backend interface {
	Name() string
	ExtractPages(data []byte) ([]string, error)
}

// Adapter tries backends in priority order and keeps the result of the
// first backend that yields at least one page with non-whitespace content.
type Adapter struct {
	backends []Backend
}

// NewAdapter creates an adapter over an explicit backend chain.
// Order is priority order.
func NewAdapter(backends ...Backend) *Adapter {
	return &Adapter{backends: backends}
}

// DefaultAdapter returns the stock chain: text-layer extraction first,
// content-stream decoding as fallback.
func DefaultAdapter() *Adapter {
	return NewAdapter(NewPDFTextBackend(), NewPDFCPUBackend())
}

// NewAdapterFromNames builds an adapter from configured backend names.
func NewAdapterFromNames(names []string) (*Adapter, error) {
	if len(names) == 0 {
		return DefaultAdapter(), nil
	}
	backends := make([]Backend, 0, len(names))
	for _, name := range names {
		switch name {
		case "pdftext":
			backends = append(backends, NewPDFTextBackend())
		case "pdfcpu":
			backends = append(backends, NewPDFCPUBackend())
		default:
			return nil, fmt.Errorf("unknown extraction backend: %q", name)
		}
	}
	return NewAdapter(backends...), nil
}

// ExtractPages returns the page texts and the name of the backend that
// produced them, or ErrNoTextExtracted when every backend fails.
func (a *Adapter) ExtractPages(data []byte) ([]string, string, error) {
	for _, b := range a.backends {
		pages, err := b.ExtractPages(data)
		if err != nil {
			// A failing backend (unavailable or malformed input) is
			// non-fatal; the next one may still succeed.
			continue
		}
		if hasContent(pages) {
			return pages, b.Name(), nil
		}
	}
	return nil, "", ErrNoTextExtracted
}

func hasContent(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
