package roster

import "strings"

// Record is one roster row: the person an ID card is generated for.
// Records are read once from the CSV and never mutated.
type Record struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Role      string `json:"role"`
	School    string `json:"school"`
	District  string `json:"district"`
	// Photo is an explicit photo filename from the sheet; empty means
	// the resolver falls back to the ID naming convention.
	Photo string `json:"photo"`

	// Fields keeps every raw column so templates can grow new text
	// slots without a loader change.
	Fields map[string]string `json:"-"`
}

func (r Record) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}
