package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval_Valid(t *testing.T) {
	i, err := NewInterval(2, UnitWeek)
	require.NoError(t, err)
	assert.Equal(t, 2, i.Length)
	assert.Equal(t, UnitWeek, i.Units)
}

func TestNewInterval_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		length int
		units  Unit
	}{
		{"zero length", 0, UnitDay},
		{"negative length", -1, UnitMonth},
		{"unknown unit", 1, Unit("fortnight")},
		{"empty unit", 1, Unit("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterval(tt.length, tt.units)
			assert.Error(t, err)
		})
	}
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("month")
	require.NoError(t, err)
	assert.Equal(t, UnitMonth, u)

	_, err = ParseUnit("year")
	assert.Error(t, err)
}

func TestInterval_NextOccurrence(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval Interval
		want     time.Time
	}{
		{"days", Interval{Length: 10, Units: UnitDay}, from.AddDate(0, 0, 10)},
		{"weeks", Interval{Length: 2, Units: UnitWeek}, from.AddDate(0, 0, 14)},
		{"months", Interval{Length: 3, Units: UnitMonth}, from.AddDate(0, 3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.NextOccurrence(from))
		})
	}
}

func TestResolve_ParentWins(t *testing.T) {
	self := Interval{Length: 1, Units: UnitDay}
	parent := Interval{Length: 1, Units: UnitMonth}

	assert.Equal(t, parent, Resolve(self, &parent))
}

func TestResolve_SelfWhenNoParent(t *testing.T) {
	self := Interval{Length: 3, Units: UnitWeek}

	assert.Equal(t, self, Resolve(self, nil))
}

func TestResolve_SelfWhenParentZero(t *testing.T) {
	self := Interval{Length: 3, Units: UnitWeek}
	parent := Interval{}

	assert.Equal(t, self, Resolve(self, &parent))
}
