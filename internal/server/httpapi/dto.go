package httpapi

import (
	"time"

	"teamcal/internal/server/models"
)

// Wire DTOs. Roles travel as isAdmin/isSuperUser booleans so existing
// clients keep working; the server stores a single ordered role.

type userDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
	IsAdmin     bool   `json:"isAdmin"`
	IsSuperUser bool   `json:"isSuperUser"`
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Color:       u.Color,
		IsAdmin:     u.Role.IsAdmin(),
		IsSuperUser: u.Role.IsSuperUser(),
	}
}

type createUserRequest struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Color       string `json:"color"`
	IsAdmin     bool   `json:"isAdmin"`
}

type setRoleRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type eventDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CreatedBy   string    `json:"createdBy"`
	Color       string    `json:"color"`
}

func toEventDTO(e *models.Event) eventDTO {
	return eventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		CreatedBy:   e.CreatedBy,
		Color:       e.Color,
	}
}

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Color       string    `json:"color"`
}

func (r *eventRequest) toModel() *models.Event {
	return &models.Event{
		Title:       r.Title,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		Color:       r.Color,
	}
}

// holidayDateFormat is the wire format for holiday dates. The year slot
// carries the placeholder year; clients match holidays by month and day.
const holidayDateFormat = "2006-01-02"

type holidayDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func toHolidayDTO(h *models.Holiday) holidayDTO {
	return holidayDTO{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date,
	}
}

type createHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}
