package jognote

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kyoshidajp/jognote/internal/domain"
	"github.com/kyoshidajp/jognote/internal/observability"
)

// The service renders dates and durations with Japanese unit markers
// (2013年5月10日, 1時間30分5秒) and distances as "5.2 km". Each unit has its
// own pattern so a partial duration still parses.
var (
	yearRe   = regexp.MustCompile(`(\d+)年`)
	monthRe  = regexp.MustCompile(`(\d+)月`)
	dayRe    = regexp.MustCompile(`(\d+)日`)
	hourRe   = regexp.MustCompile(`(\d+)時間`)
	minuteRe = regexp.MustCompile(`(\d+)分`)
	secondRe = regexp.MustCompile(`(\d+)秒`)

	distanceRe = regexp.MustCompile(`\s([0-9.]+) km`)
)

// ParseDay fetches one day detail page and extracts its date and workout
// records. A day with no workouts yields an empty slice, not an error.
func (c *Client) ParseDay(ctx context.Context, dayID string) (time.Time, []domain.Workout, error) {
	body, err := c.fetch(ctx, c.baseURL+"/days/"+dayID, "day_detail")
	if err != nil {
		return time.Time{}, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: day %s: %v", domain.ErrParse, dayID, err)
	}

	heading := doc.Find("#workoutDate h2")
	if heading.Length() == 0 {
		return time.Time{}, nil, fmt.Errorf("%w: day %s: date heading not found", domain.ErrParse, dayID)
	}
	date, err := parseDate(heading.First().Text())
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("day %s: %w", dayID, err)
	}

	var records []domain.Workout
	for _, kind := range domain.Kinds() {
		doc.Find("div." + kind.ContainerClass()).Each(func(_ int, sel *goquery.Selection) {
			text := sel.Find("h4").First().Text()
			records = append(records, domain.Workout{
				Date:     date,
				Kind:     kind,
				Distance: parseDistance(text),
				Duration: parseDuration(text),
			})
			observability.RecordWorkoutParsed(kind.String())
		})
	}
	c.debugf("day %s (%s): %d workouts", dayID, date.Format("2006/01/02"), len(records))
	return date, records, nil
}

// parseDate extracts the calendar date from a heading like "2013年5月10日".
// All three units must be present; guessing a missing one would silently
// misdate every record on the page.
func parseDate(text string) (time.Time, error) {
	year, ok := matchInt(yearRe, text)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date heading %q has no year", domain.ErrParse, text)
	}
	month, ok := matchInt(monthRe, text)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date heading %q has no month", domain.ErrParse, text)
	}
	day, ok := matchInt(dayRe, text)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date heading %q has no day", domain.ErrParse, text)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// parseDistance extracts the kilometre reading from a workout heading.
// Returns nil when the heading has no distance; nil and "0" mean different
// things downstream.
func parseDistance(text string) *string {
	match := distanceRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	return &match[1]
}

// parseDuration extracts the time components from a workout heading. Units
// absent from the text are zero.
func parseDuration(text string) domain.Duration {
	var d domain.Duration
	if hours, ok := matchInt(hourRe, text); ok {
		d.Hours = hours
	}
	if minutes, ok := matchInt(minuteRe, text); ok {
		d.Minutes = minutes
	}
	if seconds, ok := matchInt(secondRe, text); ok {
		d.Seconds = seconds
	}
	return d
}

func matchInt(re *regexp.Regexp, text string) (int, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
