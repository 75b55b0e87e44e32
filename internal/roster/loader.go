package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/youruser/idcard/internal/util"
)

var ErrNoHeader = errors.New("roster has no header row")

// Load reads the roster CSV and returns its records in input order.
// Spreadsheet exports often prefix the header with a UTF-8 BOM, so the
// first cell is stripped before column lookup. Rows with neither a
// first nor a last name are logged and dropped; any structural problem
// with the file itself is an error.
func Load(path string) ([]Record, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("roster %s: %w", path, ErrNoHeader)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["firstname"]; !ok {
		if _, ok := cols["lastname"]; !ok {
			return nil, fmt.Errorf("roster %s: missing firstname/lastname columns: %w", path, ErrNoHeader)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Record{}
	for i, row := range rows[1:] {
		rec := Record{
			ID:        get(row, "id"),
			FirstName: get(row, "firstname"),
			LastName:  get(row, "lastname"),
			Role:      get(row, "role"),
			School:    get(row, "school"),
			District:  get(row, "district"),
			Photo:     get(row, "photo"),
			Fields:    map[string]string{},
		}
		for name := range cols {
			rec.Fields[name] = get(row, name)
		}
		if rec.FirstName == "" && rec.LastName == "" {
			log.Printf("roster row %d: missing firstname/lastname, skipping", i+1)
			continue
		}
		if rec.ID == "" {
			rec.ID = DeriveID(rec)
		}
		out = append(out, rec)
	}
	return out, nil
}

// DeriveID builds a stable identifier from the name fields for sheets
// that carry no id column.
func DeriveID(rec Record) string {
	return strings.ToUpper(util.SafeFileName(rec.LastName + "_" + rec.FirstName))
}
