package pulse_test

import (
	"testing"
	"time"

	"github.com/limbo/dailypulse/internal/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	morning := time.Date(2025, time.March, 4, 0, 30, 0, 0, loc)
	night := time.Date(2025, time.March, 4, 23, 59, 59, 0, loc)
	assert.Equal(t, "2025-03-04", pulse.DayKey(morning))
	assert.Equal(t, pulse.DayKey(morning), pulse.DayKey(night))
	// Same instant, different calendar day in UTC.
	assert.Equal(t, "2025-03-03", pulse.DayKey(morning.UTC()))
}

func TestParseDayKey(t *testing.T) {
	day, err := pulse.ParseDayKey("2025-03-04", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), day)

	_, err = pulse.ParseDayKey("04.03.2025", time.UTC)
	assert.Error(t, err)
}

func TestWeekInterval(t *testing.T) {
	testCases := []struct {
		Desc string
		Ref  time.Time
	}{
		{Desc: "monday", Ref: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)},
		{Desc: "wednesday", Ref: time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)},
		{Desc: "sunday late", Ref: time.Date(2025, time.March, 9, 23, 59, 0, 0, time.UTC)},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			start, end := pulse.WeekInterval(tc.Ref)
			assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
			assert.Equal(t, "2025-03-09", pulse.DayKey(end))
			assert.False(t, tc.Ref.Before(start))
			assert.False(t, tc.Ref.After(end))
		})
	}
}

func TestDaysInInterval(t *testing.T) {
	start := time.Date(2024, time.February, 27, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 2, 1, 0, 0, 0, time.UTC)
	days := pulse.DaysInInterval(start, end)
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, pulse.DayKey(d))
	}
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, keys)

	t.Run("single day", func(t *testing.T) {
		assert.Len(t, pulse.DaysInInterval(start, start), 1)
	})
	t.Run("reversed", func(t *testing.T) {
		assert.Empty(t, pulse.DaysInInterval(end, start))
	})
}
