package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNearest(t *testing.T) {
	dates := []time.Time{
		mustParse(t, "01/01/2024"),
		mustParse(t, "10/01/2024"),
		mustParse(t, "20/01/2024"),
	}

	t.Run("empty history", func(t *testing.T) {
		_, err := Nearest(nil, time.Now())
		assert.ErrorIs(t, err, ErrEmptyHistory)
	})

	t.Run("exact match wins", func(t *testing.T) {
		got, err := Nearest(dates, mustParse(t, "10/01/2024"))
		require.NoError(t, err)
		assert.Equal(t, "10/01/2024", FormatDate(got))
	})

	t.Run("closest before pivot", func(t *testing.T) {
		got, err := Nearest(dates, mustParse(t, "12/01/2024"))
		require.NoError(t, err)
		assert.Equal(t, "10/01/2024", FormatDate(got))
	})

	t.Run("pivot after every entry", func(t *testing.T) {
		got, err := Nearest(dates, mustParse(t, "01/03/2024"))
		require.NoError(t, err)
		assert.Equal(t, "20/01/2024", FormatDate(got))
	})

	t.Run("ties keep first encountered", func(t *testing.T) {
		got, err := Nearest(dates, mustParse(t, "15/01/2024"))
		require.NoError(t, err)
		assert.Equal(t, "10/01/2024", FormatDate(got))
	})

	t.Run("result is always a member", func(t *testing.T) {
		for _, pivot := range []string{"01/01/2000", "05/01/2024", "31/12/2030"} {
			got, err := Nearest(dates, mustParse(t, pivot))
			require.NoError(t, err)
			assert.Contains(t, dates, got)
		}
	})
}

func TestDay(t *testing.T) {
	ts := time.Date(2024, 1, 2, 23, 59, 1, 5, time.Local)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local), Day(ts))
	assert.Equal(t, "02/01/2024", FormatDate(Day(ts)))
}

func TestSpanAndDays(t *testing.T) {
	dates := []time.Time{
		mustParse(t, "03/01/2024"),
		mustParse(t, "01/01/2024"),
		mustParse(t, "05/01/2024"),
		mustParse(t, "02/01/2024"),
	}

	first, last, err := Span(dates)
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024", FormatDate(first))
	assert.Equal(t, "05/01/2024", FormatDate(last))

	var got []string
	for _, d := range Days(first, last) {
		got = append(got, FormatDate(d))
	}
	assert.Equal(t, []string{"01/01/2024", "02/01/2024", "03/01/2024", "04/01/2024", "05/01/2024"}, got)

	assert.Empty(t, Days(last, first))

	_, _, err = Span(nil)
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestDays_AcrossMonthEnd(t *testing.T) {
	days := Days(mustParse(t, "30/01/2024"), mustParse(t, "02/02/2024"))
	require.Len(t, days, 4)
	assert.Equal(t, "31/01/2024", FormatDate(days[1]))
	assert.Equal(t, "01/02/2024", FormatDate(days[2]))
}
