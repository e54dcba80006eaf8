// Package api is the HTTP client for the calendar server. It speaks the
// JSON REST surface and translates error responses back into the shared
// sentinel errors, so callers can use errors.Is on both sides of the wire.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"teamcal/internal/client/models"
	"teamcal/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the bearer token used on subsequent requests. An empty
// string clears it.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the currently installed bearer token.
func (c *Client) Token() string { return c.token }

type errorResponse struct {
	Error string `json:"error"`
}

// knownErrors are the sentinels the server sends verbatim in error bodies.
var knownErrors = []error{
	common.ErrInvalidCredentials,
	common.ErrUnauthenticated,
	common.ErrForbidden,
	common.ErrProtectedSuperUser,
	common.ErrNotFound,
	common.ErrDuplicateID,
	common.ErrValidation,
	common.ErrTokenExpired,
	common.ErrInvalidToken,
}

// errorFromResponse recovers a sentinel from an error body when the message
// matches exactly, otherwise falls back to a status-code mapping.
func errorFromResponse(status int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)

	for _, e := range knownErrors {
		if er.Error == e.Error() {
			return e
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return common.ErrUnauthenticated
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadRequest:
		if er.Error != "" {
			return fmt.Errorf("%w: %s", common.ErrValidation, er.Error)
		}
		return common.ErrValidation
	default:
		return fmt.Errorf("server error: status %d", status)
	}
}

// do issues one request and decodes the JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. The token is not
// installed automatically; callers decide when to adopt it.
func (c *Client) Login(ctx context.Context, id, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", loginRequest{ID: id, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CreateUserRequest is the payload for creating an account.
type CreateUserRequest struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Color       string `json:"color"`
	IsAdmin     bool   `json:"isAdmin"`
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetRole(ctx context.Context, userID string, isAdmin bool) error {
	return c.do(ctx, http.MethodPut, "/users/"+userID+"/role",
		map[string]bool{"isAdmin": isAdmin}, nil)
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+userID, nil, nil)
}

// EventRequest is the payload for creating or updating an event. The server
// assigns ids and owners.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Color       string    `json:"color"`
}

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, "/events", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, eventID string, req EventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+eventID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+eventID, nil, nil)
}

type createHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (c *Client) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	var out []models.Holiday
	if err := c.do(ctx, http.MethodGet, "/holidays", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateHoliday(ctx context.Context, name, date string) (*models.Holiday, error) {
	var out models.Holiday
	if err := c.do(ctx, http.MethodPost, "/holidays", createHolidayRequest{Name: name, Date: date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHoliday(ctx context.Context, holidayID string) error {
	return c.do(ctx, http.MethodDelete, "/holidays/"+holidayID, nil, nil)
}
