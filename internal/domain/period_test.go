package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"day", "month", "quarter", "year"} {
		p, err := ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, Period(s), p)
	}

	_, err := ParsePeriod("week")
	assert.Error(t, err)
}

func TestPeriodWindow(t *testing.T) {
	ref := time.Date(2024, 8, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		period        Period
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Dia",
			period:        PeriodDay,
			expectedStart: time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Mês",
			period:        PeriodMonth,
			expectedStart: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Trimestre",
			period:        PeriodQuarter,
			expectedStart: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Ano",
			period:        PeriodYear,
			expectedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.period.Window(ref)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestPeriodWindow_QuarterBoundaries(t *testing.T) {
	start, end := PeriodQuarter.Window(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)

	start, _ = PeriodQuarter.Window(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestFirstDayOfMonth(t *testing.T) {
	input := time.Date(2024, 2, 29, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), FirstDayOfMonth(input))
}
