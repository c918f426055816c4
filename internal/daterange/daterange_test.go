package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kyoshidajp/jognote/internal/domain"
)

var now = time.Date(2013, time.May, 10, 12, 0, 0, 0, time.UTC)

func TestPlanExplicitRange(t *testing.T) {
	months, err := Plan("2012/11", "2013/02", now)
	require.NoError(t, err)
	require.Equal(t, []Month{
		{2012, time.November},
		{2012, time.December},
		{2013, time.January},
		{2013, time.February},
	}, months)
}

func TestPlanDefaultsToEpochAndNow(t *testing.T) {
	months, err := Plan("", "", now)
	require.NoError(t, err)
	require.Equal(t, Month{2011, time.January}, months[0])
	require.Equal(t, Month{2013, time.May}, months[len(months)-1])
	// 2011/01 through 2013/05 inclusive.
	require.Len(t, months, 29)

	seen := make(map[Month]struct{})
	for _, m := range months {
		_, dup := seen[m]
		require.False(t, dup, "month %s appears twice", m)
		seen[m] = struct{}{}
	}
}

func TestPlanStopsAtCurrentMonth(t *testing.T) {
	months, err := Plan("2013/04", "2013/12", now)
	require.NoError(t, err)
	require.Equal(t, []Month{
		{2013, time.April},
		{2013, time.May},
	}, months)
}

func TestPlanRejectsFullyFutureRange(t *testing.T) {
	_, err := Plan("2013/06", "2013/12", now)
	require.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestPlanRejectsInvertedRange(t *testing.T) {
	_, err := Plan("2013/02", "2012/11", now)
	require.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestPlanRejectsUnparsableBound(t *testing.T) {
	for _, input := range []string{"2012-01", "january 2012", "2012/13"} {
		_, err := Plan(input, "", now)
		require.ErrorIs(t, err, domain.ErrInvalidRange, "start %q", input)

		_, err = Plan("", input, now)
		require.ErrorIs(t, err, domain.ErrInvalidRange, "end %q", input)
	}
}

func TestMonthString(t *testing.T) {
	require.Equal(t, "2013/05", Month{2013, time.May}.String())
}
