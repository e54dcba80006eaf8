package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamcal/internal/common"
	"teamcal/internal/logging"
	"teamcal/internal/server/auth"
	"teamcal/internal/server/models"
)

const testSecret = "test-secret"

// --- fake services ---

type fakeUserService struct {
	loginToken string
	loginErr   error

	createOut    *models.User
	createErr    error
	createGotID  string
	createClaims *auth.Claims

	listOut []models.User
	listErr error

	setRoleErr   error
	setRoleGotID string
	setRoleGot   bool

	deleteErr   error
	deleteGotID string
}

func (f *fakeUserService) Login(ctx context.Context, id, rawPassword string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeUserService) CreateUser(ctx context.Context, claims *auth.Claims, id, displayName, rawPassword, color string, isAdmin bool) (*models.User, error) {
	f.createGotID = id
	f.createClaims = claims
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUserService) List(ctx context.Context, claims *auth.Claims) ([]models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUserService) SetRole(ctx context.Context, claims *auth.Claims, targetID string, isAdmin bool) error {
	f.setRoleGotID = targetID
	f.setRoleGot = isAdmin
	return f.setRoleErr
}

func (f *fakeUserService) Delete(ctx context.Context, claims *auth.Claims, targetID string) error {
	f.deleteGotID = targetID
	return f.deleteErr
}

type fakeEventService struct {
	listOut []models.Event
	listErr error

	createOut    *models.Event
	createErr    error
	createGot    *models.Event
	createClaims *auth.Claims

	updateOut   *models.Event
	updateErr   error
	updateGotID string

	deleteErr   error
	deleteGotID string
}

func (f *fakeEventService) List(ctx context.Context, claims *auth.Claims) ([]models.Event, error) {
	return f.listOut, f.listErr
}

func (f *fakeEventService) Create(ctx context.Context, claims *auth.Claims, e *models.Event) (*models.Event, error) {
	f.createGot = e
	f.createClaims = claims
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeEventService) Update(ctx context.Context, claims *auth.Claims, id string, e *models.Event) (*models.Event, error) {
	f.updateGotID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeEventService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	f.deleteGotID = id
	return f.deleteErr
}

type fakeHolidayService struct {
	listOut []models.Holiday
	listErr error

	createOut     *models.Holiday
	createErr     error
	createGotName string
	createGotDate string

	deleteErr   error
	deleteGotID string
}

func (f *fakeHolidayService) List(ctx context.Context, claims *auth.Claims) ([]models.Holiday, error) {
	return f.listOut, f.listErr
}

func (f *fakeHolidayService) Create(ctx context.Context, claims *auth.Claims, name, date string) (*models.Holiday, error) {
	f.createGotName = name
	f.createGotDate = date
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeHolidayService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	f.deleteGotID = id
	return f.deleteErr
}

// --- helpers ---

func newTestServer(us UserService, es EventService, hs HolidayService) *Server {
	logger := logging.NewJSON(io.Discard)
	return NewServer(":0", logger, us, es, hs, testSecret)
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := auth.GenerateToken(&models.User{ID: "alice", Role: role}, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// --- tests ---

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		us := &fakeUserService{loginToken: "tok-123"}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/login", "",
			map[string]string{"id": "alice", "password": "pw"})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp loginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Token != "tok-123" {
			t.Errorf("token = %q, want tok-123", resp.Token)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		us := &fakeUserService{loginErr: common.ErrInvalidCredentials}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/login", "",
			map[string]string{"id": "alice", "password": "wrong"})

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newTestServer(&fakeUserService{}, &fakeEventService{}, &fakeHolidayService{})

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	srv := newTestServer(&fakeUserService{}, &fakeEventService{}, &fakeHolidayService{})
	router := srv.Router()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", want: http.StatusUnauthorized},
		{name: "valid token", header: common.AuthScheme + " " + tokenFor(t, models.RoleMember), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			if tt.header != "" {
				req.Header.Set(common.AuthHeaderName, tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateToken(&models.User{ID: "alice"}, []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	srv := newTestServer(&fakeUserService{}, &fakeEventService{}, &fakeHolidayService{})
	rec := doRequest(t, srv.Router(), http.MethodGet, "/events", token, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestUsersEndpoints(t *testing.T) {
	token := tokenFor(t, models.RoleSuperUser)

	t.Run("list maps roles to flags", func(t *testing.T) {
		us := &fakeUserService{listOut: []models.User{
			{ID: "admin", Role: models.RoleSuperUser},
			{ID: "bob", Role: models.RoleMember},
		}}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodGet, "/users", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var out []userDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !out[0].IsAdmin || !out[0].IsSuperUser {
			t.Errorf("super-user flags = %+v", out[0])
		}
		if out[1].IsAdmin || out[1].IsSuperUser {
			t.Errorf("member flags = %+v", out[1])
		}
	})

	t.Run("create returns 201", func(t *testing.T) {
		us := &fakeUserService{createOut: &models.User{ID: "carol", Role: models.RoleMember}}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/users", token,
			createUserRequest{ID: "carol", DisplayName: "Carol", Password: "pw"})

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if us.createGotID != "carol" {
			t.Errorf("service got id %q, want carol", us.createGotID)
		}
	})

	t.Run("create duplicate returns 400", func(t *testing.T) {
		us := &fakeUserService{createErr: common.ErrDuplicateID}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/users", token,
			createUserRequest{ID: "carol"})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("set role routes target id", func(t *testing.T) {
		us := &fakeUserService{}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPut, "/users/carol/role", token,
			setRoleRequest{IsAdmin: true})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if us.setRoleGotID != "carol" || !us.setRoleGot {
			t.Errorf("SetRole(%q, %v), want (carol, true)", us.setRoleGotID, us.setRoleGot)
		}
	})

	t.Run("protected super-user returns 403", func(t *testing.T) {
		us := &fakeUserService{deleteErr: common.ErrProtectedSuperUser}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodDelete, "/users/admin", token, nil)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("missing target returns 404", func(t *testing.T) {
		us := &fakeUserService{deleteErr: common.ErrNotFound}
		srv := newTestServer(us, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodDelete, "/users/ghost", token, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestEventsEndpoints(t *testing.T) {
	token := tokenFor(t, models.RoleMember)

	t.Run("create returns 201", func(t *testing.T) {
		es := &fakeEventService{createOut: &models.Event{ID: "e1", Title: "standup", CreatedBy: "alice"}}
		srv := newTestServer(&fakeUserService{}, es, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/events", token, eventRequest{
			Title: "standup",
			Start: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 1, 9, 15, 0, 0, time.UTC),
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if es.createClaims == nil || es.createClaims.UserID != "alice" {
			t.Errorf("claims not forwarded: %+v", es.createClaims)
		}
	})

	t.Run("update missing event returns 404 not 403", func(t *testing.T) {
		es := &fakeEventService{updateErr: common.ErrNotFound}
		srv := newTestServer(&fakeUserService{}, es, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPut, "/events/ghost", token, eventRequest{Title: "x"})
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("delete foreign event returns 403", func(t *testing.T) {
		es := &fakeEventService{deleteErr: common.ErrForbidden}
		srv := newTestServer(&fakeUserService{}, es, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodDelete, "/events/e1", token, nil)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("validation error returns 400", func(t *testing.T) {
		es := &fakeEventService{createErr: common.ErrValidation}
		srv := newTestServer(&fakeUserService{}, es, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/events", token, eventRequest{})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHolidaysEndpoints(t *testing.T) {
	token := tokenFor(t, models.RoleAdmin)

	t.Run("create forwards date", func(t *testing.T) {
		hs := &fakeHolidayService{createOut: &models.Holiday{
			ID: "h1", Name: "New Year", Date: "2000-01-01",
		}}
		srv := newTestServer(&fakeUserService{}, &fakeEventService{}, hs)

		rec := doRequest(t, srv.Router(), http.MethodPost, "/holidays", token,
			createHolidayRequest{Name: "New Year", Date: "2026-01-01"})

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if hs.createGotDate != "2026-01-01" {
			t.Errorf("date = %q, want the submitted date", hs.createGotDate)
		}

		var out holidayDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.Date != "2000-01-01" {
			t.Errorf("wire date = %q, want placeholder-year form", out.Date)
		}
	})

	t.Run("unparseable date returns 400", func(t *testing.T) {
		srv := newTestServer(&fakeUserService{}, &fakeEventService{}, &fakeHolidayService{})

		rec := doRequest(t, srv.Router(), http.MethodPost, "/holidays", token,
			createHolidayRequest{Name: "Bad", Date: "01/01/2026"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("member delete returns 403", func(t *testing.T) {
		hs := &fakeHolidayService{deleteErr: common.ErrForbidden}
		srv := newTestServer(&fakeUserService{}, &fakeEventService{}, hs)

		rec := doRequest(t, srv.Router(), http.MethodDelete, "/holidays/h1", tokenFor(t, models.RoleMember), nil)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})
}
