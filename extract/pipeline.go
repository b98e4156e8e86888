// Package extract turns the raw text layer of a W-2 style document into
// structured employer and employee records using pattern heuristics.
// There is no form schema to validate against: every rule is best-effort,
// missing fields are nil, and the result always carries a warning telling
// the caller to verify before use.
package extract

import (
	"strings"

	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
)

// BestEffortWarning accompanies every successful extraction.
const BestEffortWarning = "Extraction is best-effort. Please verify all fields before generating the W-2 file."

// Runner is the pipeline surface handlers depend on.
type Runner interface {
	Run(data []byte) (*model.ExtractionResult, error)
}

// Pipeline sequences backend selection, employer extraction, page
// classification, per-section employee extraction and dedup. It holds no
// mutable state, so one Pipeline may serve concurrent requests.
type Pipeline struct {
	adapter *Adapter
	opts    Options
}

func NewPipeline(adapter *Adapter, opts Options) *Pipeline {
	return &Pipeline{adapter: adapter, opts: opts}
}

// Run extracts structured records from document bytes. The only error it
// returns is ErrNoTextExtracted; every other degraded condition shows up
// as nil fields in the result.
func (p *Pipeline) Run(data []byte) (*model.ExtractionResult, error) {
	pages, method, err := p.adapter.ExtractPages(data)
	if err != nil {
		return nil, err
	}

	fields := employerFields(strings.Join(pages, "\n"))
	fields.Employees = p.extractEmployees(pages)

	return &model.ExtractionResult{
		Method:   method,
		Fields:   fields,
		Warnings: []string{BestEffortWarning},
	}, nil
}

// extractEmployees picks the page-level strategy: pages carrying both the
// form identifier and an employee caption are treated as one employee
// each; if no page qualifies, every page is split into marker-bounded
// sections instead.
func (p *Pipeline) extractEmployees(pages []string) []model.Employee {
	w2Pages := make(map[int]bool, len(pages))
	for i, page := range pages {
		if strings.Contains(page, "W-2") && strings.Contains(page, "Employee") {
			w2Pages[i] = true
		}
	}

	var employees []model.Employee
	for i, page := range pages {
		if len(w2Pages) > 0 && !w2Pages[i] {
			continue
		}
		if strings.TrimSpace(page) == "" {
			continue
		}

		if w2Pages[i] {
			// The page is already employee-scoped; splitting would only
			// fragment it.
			if emp := extractEmployee(page, p.opts); emp.HasAnyField() {
				employees = append(employees, emp)
			}
			continue
		}

		for _, section := range splitSections(page) {
			if emp := extractEmployee(section, p.opts); emp.HasAnyField() {
				employees = append(employees, emp)
			}
		}
	}

	return dedupe(employees)
}
