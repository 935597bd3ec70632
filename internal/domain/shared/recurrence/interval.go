// Package recurrence provides the interval value type shared by
// subscriptions and subscription line items.
package recurrence

import (
	"fmt"
	"time"
)

// Unit is the time unit of a recurrence interval.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// ValidUnits enumerates all accepted interval units.
var ValidUnits = map[Unit]bool{
	UnitDay:   true,
	UnitWeek:  true,
	UnitMonth: true,
}

// IsValid reports whether the unit is a known recurrence unit.
func (u Unit) IsValid() bool {
	return ValidUnits[u]
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit parses a string into a recurrence Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid recurrence unit: %q", s)
	}
	return u, nil
}

// Interval is a recurrence policy: every Length Units (e.g. every 2 weeks).
// The zero value means "no interval of its own".
type Interval struct {
	Length int
	Units  Unit
}

// NewInterval creates a validated interval.
func NewInterval(length int, units Unit) (Interval, error) {
	i := Interval{Length: length, Units: units}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// IsZero reports whether the interval carries no recurrence policy.
func (i Interval) IsZero() bool {
	return i.Length == 0 && i.Units == ""
}

// Validate checks that the interval is positive and uses a known unit.
func (i Interval) Validate() error {
	if i.Length <= 0 {
		return fmt.Errorf("interval length must be positive, got %d", i.Length)
	}
	if !i.Units.IsValid() {
		return fmt.Errorf("invalid recurrence unit: %q", i.Units)
	}
	return nil
}

// NextOccurrence returns the time of the next occurrence after from.
func (i Interval) NextOccurrence(from time.Time) time.Time {
	switch i.Units {
	case UnitDay:
		return from.AddDate(0, 0, i.Length)
	case UnitWeek:
		return from.AddDate(0, 0, 7*i.Length)
	case UnitMonth:
		return from.AddDate(0, i.Length, 0)
	default:
		return from
	}
}

func (i Interval) String() string {
	return fmt.Sprintf("%d %s", i.Length, i.Units)
}

// Resolve returns the effective interval for a line item: the parent
// subscription's interval governs whenever one is present, otherwise the
// line item's own interval applies.
func Resolve(self Interval, parent *Interval) Interval {
	if parent != nil && parent.Length > 0 {
		return *parent
	}
	return self
}
