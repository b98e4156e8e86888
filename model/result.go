package model

// Employee holds the fields recovered for one employee. Extraction is
// heuristic: any field that no pattern matched is nil and serializes as
// JSON null, never as an error. Monetary values stay literal strings so
// the source formatting survives for human verification.
type Employee struct {
	SSN           *string `json:"ssn"`
	First         *string `json:"first"`
	Middle        *string `json:"middle"`
	Last          *string `json:"last"`
	Wages         *string `json:"wages"`
	StateWages    *string `json:"state_wages"`
	StateWithheld *string `json:"state_withheld"`
	MAPFML        *string `json:"mapfml"`
}

// HasAnyField reports whether at least one field was recovered.
// All-nil records are not evidence of an employee and must be dropped.
func (e *Employee) HasAnyField() bool {
	return e.SSN != nil || e.First != nil || e.Middle != nil || e.Last != nil ||
		e.Wages != nil || e.StateWages != nil || e.StateWithheld != nil || e.MAPFML != nil
}

// Fields is the extracted field set: document-global employer identity
// plus one record per detected employee.
type Fields struct {
	EmployerName *string    `json:"employer_name"`
	EmployerEIN  *string    `json:"employer_ein"`
	Employees    []Employee `json:"employees"`
}

// ExtractionResult is the terminal artifact of one pipeline run.
type ExtractionResult struct {
	Method   string   `json:"method"`
	Fields   Fields   `json:"fields"`
	Warnings []string `json:"warnings"`
}
