package models

import (
	"fmt"
	"time"

	"teamcal/internal/common"
)

// HolidayPlaceholderYear is the fixed year component holidays are stored
// with. It encodes "recurs every year"; matching ignores the year entirely.
// 2000 is a leap year, so a Feb 29 holiday is representable.
const HolidayPlaceholderYear = 2000

// Holiday is an annually recurring day. Date holds "YYYY-MM-DD" with the
// year forced to HolidayPlaceholderYear. Duplicate dates are permitted.
type Holiday struct {
	ID   string
	Name string
	Date string
}

// NormalizeHolidayDate validates a "YYYY-MM-DD" value and rewrites its year
// to HolidayPlaceholderYear.
func NormalizeHolidayDate(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("%w: bad date %q", common.ErrValidation, date)
	}
	return fmt.Sprintf("%04d-%02d-%02d", HolidayPlaceholderYear, d.Month(), d.Day()), nil
}

// Matches reports whether the holiday falls on the given day, comparing
// month and day only. A Feb 29 holiday matches Feb 28 in non-leap years so
// it never silently disappears from the calendar.
func (h Holiday) Matches(day time.Time) bool {
	d, err := time.Parse("2006-01-02", h.Date)
	if err != nil {
		return false
	}
	month, dom := d.Month(), d.Day()
	if month == time.February && dom == 29 && !isLeapYear(day.Year()) {
		dom = 28
	}
	return day.Month() == month && day.Day() == dom
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
