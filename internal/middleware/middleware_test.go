package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/appointive/appointment-booking-api/internal/utils"
)

const testSecret = "test-secret"

func run(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	rr := httptest.NewRecorder()
	c := e.NewContext(req, rr)

	reached := false
	h := mw(func(c echo.Context) error {
		reached = true
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rr, reached
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-1", "a@b.com", true, 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rr := httptest.NewRecorder()
	c := e.NewContext(req, rr)

	h := JWTAuth(testSecret)(func(c echo.Context) error {
		if c.Get("user_id") != "user-1" || c.Get("email") != "a@b.com" || c.Get("is_admin") != true {
			t.Errorf("claims not injected: %v %v %v",
				c.Get("user_id"), c.Get("email"), c.Get("is_admin"))
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestJWTAuthRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbled token", "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr, reached := run(t, JWTAuth(testSecret), req)
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rr.Code)
			}
			if reached {
				t.Error("handler reached without valid token")
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	for _, tt := range []struct {
		name    string
		isAdmin any
		want    int
	}{
		{"admin", true, http.StatusOK},
		{"non-admin", false, http.StatusForbidden},
		{"claim missing", nil, http.StatusForbidden},
	} {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			c := e.NewContext(req, rr)
			if tt.isAdmin != nil {
				c.Set("is_admin", tt.isAdmin)
			}
			h := RequireAdmin()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				t.Fatalf("handler: %v", err)
			}
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestCacheDisabledPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	rr, reached := run(t, Cache(nil, 0), req)
	if !reached {
		t.Error("nil client must pass requests through")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}
