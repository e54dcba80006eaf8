package models

import "time"

// Event is a calendar entry owned by the user who created it. CreatedBy is
// immutable after creation; updates never touch it.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	CreatedBy   string
	Color       string
}
