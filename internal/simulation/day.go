package simulation

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-paradox/internal/config"
)

// Day is a calendar date reduced to a day-of-year in a fixed non-leap year.
// Valid values are 1 (January 1st) through 365 (December 31st). Day 366
// does not exist in this model.
type Day int

// monthLengths is the fixed non-leap calendar used to derive month and
// day-of-month from a day-of-year value.
var monthLengths = [config.MonthsInYear]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Valid reports whether the day falls inside the 365-day model.
func (d Day) Valid() bool {
	return d >= 1 && d <= config.DaysInYear
}

// Month returns the calendar month the day falls in.
// Out-of-range days are clamped into the model before conversion.
func (d Day) Month() time.Month {
	m, _ := d.monthDay()
	return m
}

// DayOfMonth returns the 1-based day within the month.
func (d Day) DayOfMonth() int {
	_, dom := d.monthDay()
	return dom
}

// Date anchors the day to the fixed reference year, which is the form the
// iCalendar export needs.
func (d Day) Date() time.Time {
	m, dom := d.monthDay()
	return time.Date(config.ReferenceYear, m, dom, 0, 0, 0, 0, time.UTC)
}

// String renders the day as "January 5". Localized month names are the
// report layer's concern; this form is for logs and debugging.
func (d Day) String() string {
	m, dom := d.monthDay()
	return fmt.Sprintf("%s %d", m, dom)
}

// monthDay walks the month-length table to locate the day.
func (d Day) monthDay() (time.Month, int) {
	remaining := int(d)
	if remaining < 1 {
		remaining = 1
	}
	if remaining > config.DaysInYear {
		remaining = config.DaysInYear
	}

	for i, length := range monthLengths {
		if remaining <= length {
			return time.Month(i + 1), remaining
		}
		remaining -= length
	}
	// Unreachable: the table sums to config.DaysInYear.
	return time.December, 31
}

// DayFromDate projects a real calendar date onto the 365-day model.
// February 29th normalizes to March 1st, matching how leaplings are
// celebrated in non-leap years.
func DayFromDate(t time.Time) Day {
	month, dom := t.Month(), t.Day()
	if month == time.February && dom > monthLengths[time.February-1] {
		month, dom = time.March, 1
	}

	doy := dom
	for i := time.January; i < month; i++ {
		doy += monthLengths[i-1]
	}
	return Day(doy)
}
