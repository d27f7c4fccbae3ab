package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/core/service"
	"github.com/medicore/hospital-system/internal/infrastructure/store/memory"
)

// The prometheus middleware registers collectors in the default registry, so
// the router must be constructed exactly once per test binary.
var (
	routerOnce sync.Once
	authRouter *echo.Echo
)

func testRouter(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		store, err := memory.NewSeededUserStore()
		if err != nil {
			t.Fatalf("seed store: %v", err)
		}
		tokens := service.NewTokenService("router-test-secret")
		auth := service.NewAuthService(store, tokens, time.Hour, zerolog.Nop())
		authRouter = NewAuthRouter(store, tokens, auth, zerolog.Nop())
	})
	return authRouter
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("login %s: empty access_token", email)
	}
	return resp.AccessToken
}

func TestAuthAPI_LoginAndRoleGates(t *testing.T) {
	e := testRouter(t)

	adminToken := login(t, e, "admin@hospital.com", "admin123")
	patientToken := login(t, e, "patient@hospital.com", "patient123")

	// Admin reaches the admin dashboard.
	rec := doJSON(e, http.MethodGet, "/api/admin/dashboard", "", "Bearer "+adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin dashboard: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Patient is rejected with the role detail payload.
	rec = doJSON(e, http.MethodGet, "/api/admin/dashboard", "", "Bearer "+patientToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("patient on admin route: expected 403, got %d", rec.Code)
	}
	var denied struct {
		Message       string   `json:"message"`
		RequiredRoles []string `json:"required_roles"`
		YourRole      string   `json:"your_role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &denied); err != nil {
		t.Fatalf("invalid 403 body: %v", err)
	}
	if denied.Message != "access denied" || denied.YourRole != "patient" {
		t.Fatalf("unexpected 403 body: %+v", denied)
	}
	if len(denied.RequiredRoles) != 1 || denied.RequiredRoles[0] != "admin" {
		t.Fatalf("unexpected required_roles: %v", denied.RequiredRoles)
	}

	// Both roles may read their own profile.
	for _, token := range []string{adminToken, patientToken} {
		rec = doJSON(e, http.MethodGet, "/api/profile", "", "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("profile: expected 200, got %d", rec.Code)
		}
	}
}

func TestAuthAPI_BadLogins(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/login",
		`{"email":"admin@hospital.com","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}
	wrongPassword := rec.Body.String()

	rec = doJSON(e, http.MethodPost, "/api/login",
		`{"email":"ghost@hospital.com","password":"whatever"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != wrongPassword {
		t.Fatalf("failure responses differ: %q vs %q", wrongPassword, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/login", `{"email":"admin@hospital.com"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400, got %d", rec.Code)
	}
}

func TestAuthAPI_TokenRequirements(t *testing.T) {
	e := testRouter(t)

	// No header at all.
	rec := doJSON(e, http.MethodGet, "/api/profile", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authorization token missing") {
		t.Fatalf("expected missing-token message, got %s", rec.Body.String())
	}

	// Wrong scheme counts as missing.
	rec = doJSON(e, http.MethodGet, "/api/profile", "", "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authorization token missing") {
		t.Fatalf("expected missing-token message, got %s", rec.Body.String())
	}

	// Garbage bearer token.
	rec = doJSON(e, http.MethodGet, "/api/profile", "", "Bearer garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid or expired") {
		t.Fatalf("expected invalid-or-expired message, got %s", rec.Body.String())
	}
}

func TestAuthAPI_RoleRoutes(t *testing.T) {
	e := testRouter(t)

	doctorToken := login(t, e, "doctor@hospital.com", "doctor123")
	patientToken := login(t, e, "patient@hospital.com", "patient123")

	// Doctor can read shared records and prescribe.
	rec := doJSON(e, http.MethodGet, "/api/medical-records", "", "Bearer "+doctorToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("doctor medical-records: expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/api/prescribe",
		`{"patient_id":3,"medication":"Paracetamol 500mg","dosage":"1 tablet twice daily"}`, "Bearer "+doctorToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("doctor prescribe: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Patient can read own records but not prescribe.
	rec = doJSON(e, http.MethodGet, "/api/my-records", "", "Bearer "+patientToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("patient my-records: expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/api/prescribe",
		`{"patient_id":3,"medication":"Paracetamol 500mg"}`, "Bearer "+patientToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("patient prescribe: expected 403, got %d", rec.Code)
	}
}

func TestAuthAPI_PublicEndpoints(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("index: expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
