// Package timeclock provides minute-level arithmetic on "HH:mm" wall-clock
// strings. Shifts are always contained in a single calendar day, so every
// value lives on a 0-1440 minute axis.
package timeclock

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// MalformedTimeError reports a clock string that is not valid "HH:mm".
// Shift times are validated before persistence, so hitting this during a
// payroll run means corrupted data and the calculation must not continue.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed clock time %q, want HH:mm", e.Value)
}

// ToMinutes converts an "HH:mm" string to minutes since midnight, in [0,1440).
func ToMinutes(t string) (int, error) {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0, &MalformedTimeError{Value: t}
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, &MalformedTimeError{Value: t}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, &MalformedTimeError{Value: t}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &MalformedTimeError{Value: t}
	}
	return hour*60 + minute, nil
}

// DurationMinutes returns the length of the interval [start,end) in minutes.
// Shifts never cross midnight, so end >= start for valid data; the clamp to
// zero is defensive.
func DurationMinutes(start, end string) (int, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, err
	}
	return max(0, e-s), nil
}

// OverlapMinutes returns the length of the intersection of [a1,a2) and
// [b1,b2) on the minute axis.
func OverlapMinutes(a1, a2, b1, b2 int) int {
	return max(0, min(a2, b2)-max(a1, b1))
}

// NightOverlapMinutes returns how many minutes of the shift [start,end) fall
// inside the night window [nightStart,nightEnd). A window such as 22:00-05:00
// wraps past midnight; it is split into a late-evening segment and an
// early-morning segment, both on the shift's own single-day timeline.
func NightOverlapMinutes(start, end, nightStart, nightEnd string) (int, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, err
	}
	ns, err := ToMinutes(nightStart)
	if err != nil {
		return 0, err
	}
	ne, err := ToMinutes(nightEnd)
	if err != nil {
		return 0, err
	}

	if ns <= ne {
		return OverlapMinutes(s, e, ns, ne), nil
	}
	return OverlapMinutes(s, e, ns, minutesPerDay) + OverlapMinutes(s, e, 0, ne), nil
}
