package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type stubRoleService struct {
	createFn func(ctx context.Context, input ports.RoleInput) (*domain.Role, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubRoleService) List(_ context.Context) ([]*domain.Role, error) {
	return []*domain.Role{{ID: 1, Name: "Administrator", Code: domain.RoleAdmin}}, nil
}

func (s *stubRoleService) Get(_ context.Context, id int64) (*domain.Role, error) {
	if id != 1 {
		return nil, domain.ErrRoleNotFound
	}
	return &domain.Role{ID: 1, Name: "Administrator", Code: domain.RoleAdmin}, nil
}

func (s *stubRoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	return s.createFn(ctx, input)
}

func (s *stubRoleService) Update(_ context.Context, id int64, input ports.RoleInput) (*domain.Role, error) {
	return &domain.Role{ID: id, Name: input.Name, Code: input.Code}, nil
}

func (s *stubRoleService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newRoleContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRoleHandler_Create_Success(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(_ context.Context, input ports.RoleInput) (*domain.Role, error) {
			return &domain.Role{ID: 5, Name: input.Name, Code: "SCOUT"}, nil
		},
	}
	handler := NewRoleHandler(stub)

	c, rec := newRoleContext(t, http.MethodPost, "/api/v1/roles", `{"name":"Scout","code":"scout"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var role domain.Role
	if err := json.Unmarshal(rec.Body.Bytes(), &role); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if role.Code != "SCOUT" {
		t.Fatalf("unexpected code: %q", role.Code)
	}
}

func TestRoleHandler_Create_MissingFields(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(_ context.Context, _ ports.RoleInput) (*domain.Role, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRoleHandler(stub)

	c, _ := newRoleContext(t, http.MethodPost, "/api/v1/roles", `{"name":"Scout"}`)
	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestRoleHandler_Delete_Success(t *testing.T) {
	stub := &stubRoleService{
		deleteFn: func(_ context.Context, id int64) error {
			if id != 3 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	handler := NewRoleHandler(stub)

	c, rec := newRoleContext(t, http.MethodDelete, "/api/v1/roles/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRoleHandler_Delete_Guarded(t *testing.T) {
	stub := &stubRoleService{
		deleteFn: func(_ context.Context, _ int64) error {
			return domain.ErrHasDependents
		},
	}
	handler := NewRoleHandler(stub)

	c, _ := newRoleContext(t, http.MethodDelete, "/api/v1/roles/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("expected ErrHasDependents to propagate, got %v", err)
	}
}

func TestRoleHandler_Delete_BadID(t *testing.T) {
	handler := NewRoleHandler(&stubRoleService{})

	c, _ := newRoleContext(t, http.MethodDelete, "/api/v1/roles/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Delete(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}
