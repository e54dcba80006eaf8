// Package models defines the client-side view of calendar resources as they
// travel over the wire and live in the local mirror.
package models

import "time"

// User is the roster entry the server exposes. Password hashes never reach
// the client; roles arrive as flags.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
	IsAdmin     bool   `json:"isAdmin"`
	IsSuperUser bool   `json:"isSuperUser"`
}

// Event is a calendar event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CreatedBy   string    `json:"createdBy"`
	Color       string    `json:"color"`
}

// HolidayDateFormat is the wire form of a holiday date. The year slot
// carries a placeholder; holidays recur every year.
const HolidayDateFormat = "2006-01-02"

// Holiday is an annual holiday. Date holds the placeholder-year form as
// received from the server.
type Holiday struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Matches reports whether the holiday falls on the given calendar day,
// ignoring the stored year. A Feb 29 holiday is observed on Feb 28 in
// non-leap years.
func (h *Holiday) Matches(day time.Time) bool {
	d, err := time.Parse(HolidayDateFormat, h.Date)
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
