// Package domain defines the workout records extracted from JogNote and the
// error taxonomy shared across the exporter.
package domain

import (
	"fmt"
	"sort"
	"time"
)

// Kind identifies the activity type of a workout. The set is closed; JogNote
// renders exactly these four container classes on a day detail page.
type Kind int

const (
	KindRun Kind = iota
	KindSwim
	KindBike
	KindWalk
)

// Kinds returns every activity kind in a stable order. Day pages are scanned
// in this order, so records of different kinds on the same day keep it.
func Kinds() []Kind {
	return []Kind{KindRun, KindSwim, KindBike, KindWalk}
}

// String returns the export name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRun:
		return "Run"
	case KindSwim:
		return "Swim"
	case KindBike:
		return "Bike"
	case KindWalk:
		return "Walk"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ContainerClass returns the CSS class of the day-page container holding
// workouts of this kind.
func (k Kind) ContainerClass() string {
	switch k {
	case KindRun:
		return "workout_jogs"
	case KindSwim:
		return "workout_swims"
	case KindBike:
		return "workout_bikes"
	case KindWalk:
		return "workout_walks"
	}
	return ""
}

// Duration holds the time components of a workout. A component absent from
// the source text is zero, never unknown; this is deliberately asymmetric
// with Workout.Distance, which stays nil when absent.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// String renders the duration the way the CSV export expects it.
func (d Duration) String() string {
	return fmt.Sprintf("%d:%d:%d", d.Hours, d.Minutes, d.Seconds)
}

// Workout is one parsed activity entry. Values are never mutated after the
// parser produces them.
type Workout struct {
	// Date is the calendar day of the workout; no time-of-day component.
	Date time.Time
	Kind Kind
	// Distance is the decimal kilometre reading as it appeared in the
	// source markup, or nil when the heading carried no distance.
	Distance *string
	Duration Duration
}

// SortByDate orders records ascending by date in place. The sort is stable:
// multiple workouts on the same day keep their discovery order.
func SortByDate(records []Workout) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
