package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayIndex(t *testing.T) {
	// 2024-06-10 is a Monday
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, DayIndex(date(2024, 6, 10+i)), "offset %d", i)
	}
	// Sunday maps to 6, not 0
	assert.Equal(t, 6, DayIndex(date(2024, 6, 16)))
}

func TestStartIsAlwaysMonday(t *testing.T) {
	for d := date(2024, 1, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		start := Start(d)
		assert.Equal(t, time.Monday, start.Weekday(), "anchor %s", d)
		assert.False(t, start.After(d), "start must not be after anchor %s", d)
		assert.Less(t, int(d.Sub(start).Hours()), 7*24, "anchor %s", d)
	}
}

func TestStartOnMondayIsIdentity(t *testing.T) {
	monday := date(2024, 6, 10)
	assert.Equal(t, monday, Start(monday))
}

func TestStartOnSundayGoesBackSixDays(t *testing.T) {
	assert.Equal(t, date(2024, 6, 10), Start(date(2024, 6, 16)))
}

func TestWindow(t *testing.T) {
	// 2024-06-12 is a Wednesday
	start, end := Window(date(2024, 6, 12))

	require.Equal(t, date(2024, 6, 10), start)
	assert.Equal(t, time.Monday, start.Weekday())

	assert.Equal(t, 2024, end.Year())
	assert.Equal(t, time.June, end.Month())
	assert.Equal(t, 16, end.Day())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestWindowKeepsTimeOfDayOutOfStart(t *testing.T) {
	anchor := time.Date(2024, 6, 12, 23, 45, 0, 0, time.UTC)
	start, _ := Window(anchor)
	assert.Equal(t, date(2024, 6, 10), start)
}

func TestWindowEndStaysOnSundayAcrossDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// the week of 2025-03-26 contains the spring-forward Sunday 2025-03-30,
	// which is only 23 physical hours long
	anchor := time.Date(2025, 3, 26, 12, 0, 0, 0, berlin)
	start, end := Window(anchor)

	assert.Equal(t, "2025-03-24", start.Format("2006-01-02"))
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, "2025-03-30", end.Format("2006-01-02"))
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())

	// fall-back week too: 2025-10-26 is a 25-hour Sunday
	start, end = Window(time.Date(2025, 10, 22, 12, 0, 0, 0, berlin))
	assert.Equal(t, "2025-10-20", start.Format("2006-01-02"))
	assert.Equal(t, "2025-10-26", end.Format("2006-01-02"))
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestWindowSpansSevenDays(t *testing.T) {
	for offset := 0; offset < 14; offset++ {
		start, end := Window(date(2024, 6, 1).AddDate(0, 0, offset))
		assert.Equal(t, start.AddDate(0, 0, 6).Format("2006-01-02"), end.Format("2006-01-02"))
	}
}
