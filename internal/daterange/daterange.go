// Package daterange turns the CLI's optional start/end strings into the
// inclusive sequence of months a crawl visits.
package daterange

import (
	"fmt"
	"time"

	"github.com/kyoshidajp/jognote/internal/domain"
)

// Format is the textual month format accepted on the CLI.
const Format = "2006/01"

// Epoch is the earliest month JogNote supports exports for. An unset start
// bound defaults to it.
const Epoch = "2011/01"

// Month is one (year, month) unit of traversal.
type Month struct {
	Year  int
	Month time.Month
}

// String renders the month in CLI format.
func (m Month) String() string {
	return fmt.Sprintf("%04d/%02d", m.Year, int(m.Month))
}

// Plan validates the requested bounds and enumerates the months to visit,
// ascending and duplicate-free. An empty start defaults to Epoch, an empty
// end to now. Enumeration never runs past the month containing now: the
// current month's data is still accumulating upstream and later months are
// guaranteed empty, so the plan is cut off there even when the requested end
// extends beyond it.
func Plan(startStr, endStr string, now time.Time) ([]Month, error) {
	start, err := parseBound(startStr, Epoch)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q: expected format %s", domain.ErrInvalidRange, startStr, Format)
	}

	end := truncateToMonth(now)
	if endStr != "" {
		end, err = parseBound(endStr, "")
		if err != nil {
			return nil, fmt.Errorf("%w: end date %q: expected format %s", domain.ErrInvalidRange, endStr, Format)
		}
	}

	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidRange,
			start.Format(Format), end.Format(Format))
	}

	if current := truncateToMonth(now); end.After(current) {
		end = current
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after the current month", domain.ErrInvalidRange,
			start.Format(Format))
	}

	var months []Month
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, Month{Year: m.Year(), Month: m.Month()})
	}
	return months, nil
}

func parseBound(value, fallback string) (time.Time, error) {
	if value == "" {
		value = fallback
	}
	t, err := time.Parse(Format, value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func truncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
