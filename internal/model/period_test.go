package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodDayRange(t *testing.T) {
	tests := []struct {
		period   Period
		dayStart int
		dayEnd   int
		dayRange string
	}{
		{1, 1, 2, "01-02"},
		{3, 5, 6, "05-06"},
		{5, 9, 10, "09-10"},
		{50, 99, 100, "99-100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.dayStart, tt.period.DayStart())
		assert.Equal(t, tt.dayEnd, tt.period.DayEnd())
		assert.Equal(t, tt.dayRange, tt.period.DayRange())
	}
}

func TestPeriodPrevious(t *testing.T) {
	prev, ok := Period(3).Previous()
	assert.True(t, ok)
	assert.Equal(t, Period(2), prev)

	_, ok = Period(1).Previous()
	assert.False(t, ok)

	_, ok = Period(0).Previous()
	assert.False(t, ok)
}

func TestPeriodValid(t *testing.T) {
	assert.False(t, Period(0).Valid())
	assert.True(t, Period(1).Valid())
}
