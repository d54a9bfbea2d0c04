// Package holiday defines the public-holiday lookup used by the payroll
// engine. Holiday computation itself lives outside this system; the engine
// only ever asks "is this date a public holiday".
package holiday

import "time"

const dateKeyLayout = "2006-01-02"

// Calendar answers public-holiday lookups for calendar dates. Only the
// year/month/day of the argument is significant.
type Calendar interface {
	IsHoliday(date time.Time) bool
	// HolidayName returns the holiday's display name when the date is a
	// public holiday.
	HolidayName(date time.Time) (string, bool)
}

// Func adapts a plain predicate into a Calendar without name lookups.
type Func func(date time.Time) bool

func (f Func) IsHoliday(date time.Time) bool { return f(date) }

func (f Func) HolidayName(date time.Time) (string, bool) {
	if f(date) {
		return "", true
	}
	return "", false
}

// Table is a fixed date-to-name calendar, typically loaded from an external
// holiday feed at startup. Keys use the "YYYY-MM-DD" form of the date.
type Table map[string]string

func (t Table) IsHoliday(date time.Time) bool {
	_, ok := t[date.Format(dateKeyLayout)]
	return ok
}

func (t Table) HolidayName(date time.Time) (string, bool) {
	name, ok := t[date.Format(dateKeyLayout)]
	return name, ok
}

// None is a calendar with no public holidays.
var None Calendar = Table{}
