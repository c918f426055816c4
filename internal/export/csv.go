// Package export writes aggregated workout records as delimited text.
package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/kyoshidajp/jognote/internal/domain"
)

// Write emits one CSV row per record in the order given: date, kind,
// distance (empty when the source had none), duration as h:m:s.
func Write(w io.Writer, records []domain.Workout) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		distance := ""
		if r.Distance != nil {
			distance = *r.Distance
		}
		row := []string{
			r.Date.Format("2006/01/02"),
			r.Kind.String(),
			distance,
			r.Duration.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the export to path, truncating any existing file.
func WriteFile(path string, records []domain.Workout) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
