package extract

import (
	"github.com/ariwagen/ma-w2-efw2-generator/service/model"
)

// identityKey is the dedup key: the SSN when present, otherwise
// "first-last". Records without SSN or name parts produce the weak key
// "-", which still collapses indistinguishable records.
func identityKey(emp model.Employee) string {
	if emp.SSN != nil {
		return *emp.SSN
	}
	return deref(emp.First) + "-" + deref(emp.Last)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// dedupe keeps the first record seen per identity key, preserving
// encounter order. Partial records under the same key are not merged;
// first-seen wins entirely.
func dedupe(employees []model.Employee) []model.Employee {
	seen := make(map[string]struct{}, len(employees))
	unique := make([]model.Employee, 0, len(employees))
	for _, emp := range employees {
		key := identityKey(emp)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, emp)
	}
	return unique
}
