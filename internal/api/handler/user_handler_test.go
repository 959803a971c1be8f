package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

type stubUserService struct {
	listFn   func(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	banFn    func(ctx context.Context, id string, actor ports.AdminActor) error
	unbanFn  func(ctx context.Context, id string, actor ports.AdminActor) error
	deleteFn func(ctx context.Context, id string, actor ports.AdminActor) error
	auditFn  func(ctx context.Context, id string) ([]*domain.AuditEntry, error)
}

func (s *stubUserService) ListManagers(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) BanManager(ctx context.Context, id string, actor ports.AdminActor) error {
	return s.banFn(ctx, id, actor)
}

func (s *stubUserService) UnbanManager(ctx context.Context, id string, actor ports.AdminActor) error {
	return s.unbanFn(ctx, id, actor)
}

func (s *stubUserService) DeleteManager(ctx context.Context, id string, actor ports.AdminActor) error {
	return s.deleteFn(ctx, id, actor)
}

func (s *stubUserService) ManagerAudit(ctx context.Context, id string) ([]*domain.AuditEntry, error) {
	return s.auditFn(ctx, id)
}

func managerPage(from, to int) []*domain.User {
	var users []*domain.User
	for i := from; i <= to; i++ {
		users = append(users, &domain.User{
			ID:       fmt.Sprintf("id-%02d", i),
			Name:     fmt.Sprintf("manager-%02d", i),
			Email:    fmt.Sprintf("manager%02d@example.com", i),
			IsActive: true,
			Role:     domain.RoleManager,
		})
	}
	return users
}

// adminContext builds an echo context carrying the claims the Auth middleware
// would have injected for an admin.
func adminContext(e *echo.Echo, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin-1")
	c.Set("username", "root")
	c.Set("role", domain.RoleAdmin)
	return c, rec
}

// ---------------------------------------------------------------------------
// ListManagers
// ---------------------------------------------------------------------------

func TestUserHandler_ListManagers_SecondPage(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		listFn: func(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error) {
			if input.Page != 2 || input.Limit != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListManagersResult{
				Users: managerPage(6, 10), Total: 12, Page: 2, Limit: 5, TotalPages: 3,
			}, nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/managers?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListManagers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	users, ok := resp["users"].([]any)
	if !ok || len(users) != 5 {
		t.Fatalf("expected 5 users, got %v", resp["users"])
	}
	if resp["totalPages"] != float64(3) {
		t.Errorf("expected totalPages=3, got %v", resp["totalPages"])
	}
	if resp["currentPage"] != float64(2) {
		t.Errorf("expected currentPage=2, got %v", resp["currentPage"])
	}
	if resp["limit"] != float64(5) {
		t.Errorf("expected limit=5, got %v", resp["limit"])
	}
	if resp["totalManagers"] != float64(12) {
		t.Errorf("expected totalManagers=12, got %v", resp["totalManagers"])
	}
}

func TestUserHandler_ListManagers_GarbageParamsFallThrough(t *testing.T) {
	e := echo.New()
	var got ports.ListManagersInput
	stub := &stubUserService{
		listFn: func(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error) {
			got = input
			return &ports.ListManagersResult{Users: nil, Total: 0, Page: 1, Limit: 5, TotalPages: 0}, nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/managers?page=abc&limit=-3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListManagers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Garbage is corrected, never rejected.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for garbage params, got %d", rec.Code)
	}
	if got.Page != 0 || got.Limit != 0 {
		t.Errorf("garbage params must reach the service as zero values, got %+v", got)
	}
}

func TestUserHandler_ListManagers_EmptyStore(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		listFn: func(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error) {
			return &ports.ListManagersResult{Users: nil, Total: 0, Page: 1, Limit: 5, TotalPages: 0}, nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/managers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListManagers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	users, ok := resp["users"].([]any)
	if !ok {
		t.Fatalf("users must be an array even when empty, got %T", resp["users"])
	}
	if len(users) != 0 {
		t.Errorf("expected empty users array, got %d", len(users))
	}
	if resp["totalManagers"] != float64(0) || resp["totalPages"] != float64(0) {
		t.Errorf("expected zero totals, got %v / %v", resp["totalManagers"], resp["totalPages"])
	}
}

func TestUserHandler_ListManagers_StoreFault(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		listFn: func(ctx context.Context, input ports.ListManagersInput) (*ports.ListManagersResult, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/managers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.ListManagers(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "internal server error" {
		t.Errorf("store fault detail must not leak, got %q", resp["message"])
	}
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func TestUserHandler_GetByID_Found(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "abc123" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{
				ID: "abc123", Name: "alice", Lastname: "Smith",
				Email: "alice@example.com", IsActive: true, Role: domain.RoleManager,
				PasswordHash: "$2a$10$secret",
			}, nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.GetByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc123" || resp["name"] != "alice" {
		t.Fatalf("unexpected body: %v", resp)
	}
	for key := range resp {
		if key == "password" || key == "passwordHash" || key == "password_hash" {
			t.Fatalf("password hash leaked under key %q", key)
		}
	}
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = handler.GetByID(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "User not found" {
		t.Errorf("expected fixed not-found message, got %q", resp["message"])
	}
}

func TestUserHandler_GetByID_StoreFault(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, fmt.Errorf("cursor timeout")
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	_ = handler.GetByID(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Ban / Unban / Delete
// ---------------------------------------------------------------------------

func TestUserHandler_Ban_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		banFn: func(ctx context.Context, id string, actor ports.AdminActor) error {
			if id != "m1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if actor.ID != "admin-1" || actor.Username != "root" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	c, rec := adminContext(e, http.MethodPatch, "/api/users/managers/ban/m1")
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Ban(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Ban_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		banFn: func(ctx context.Context, id string, actor ports.AdminActor) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	c, rec := adminContext(e, http.MethodPatch, "/api/users/managers/ban/ghost")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = handler.Ban(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Manager not found" {
		t.Errorf("unexpected message: %q", resp["message"])
	}
}

func TestUserHandler_Ban_MissingClaims(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		banFn: func(ctx context.Context, id string, actor ports.AdminActor) error {
			t.Fatalf("service must not be called without claims")
			return nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	req := httptest.NewRequest(http.MethodPatch, "/api/users/managers/ban/m1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	err := handler.Ban(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestUserHandler_Unban_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		unbanFn: func(ctx context.Context, id string, actor ports.AdminActor) error {
			return nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	c, rec := adminContext(e, http.MethodPatch, "/api/users/managers/unban/m1")
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Unban(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string, actor ports.AdminActor) error {
			return nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	c, rec := adminContext(e, http.MethodDelete, "/api/users/managers/m1")
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 response must have no body, got %q", rec.Body.String())
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string, actor ports.AdminActor) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	c, rec := adminContext(e, http.MethodDelete, "/api/users/managers/ghost")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Audit
// ---------------------------------------------------------------------------

func TestUserHandler_Audit(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		auditFn: func(ctx context.Context, id string) ([]*domain.AuditEntry, error) {
			return []*domain.AuditEntry{
				{UserID: id, Action: domain.AuditBan, ActorID: "admin-1"},
				{UserID: id, Action: domain.AuditUnban, ActorID: "admin-1"},
			}, nil
		},
	}
	handler := NewUserHandler(stub, discardLogger)

	c, rec := adminContext(e, http.MethodGet, "/api/users/managers/m1/audit")
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Audit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	entries, ok := resp["entries"].([]any)
	if !ok || len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %v", resp["entries"])
	}
}
