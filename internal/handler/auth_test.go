package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"
	"github.com/KunalGarg-PEC/BlogsApi/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Admin: config.AdminConfig{Username: "admin", Password: "s3cret"},
		JWT:   config.JWTConfig{Secret: "auth-test-secret", Issuer: "careers-admin", ExpireHours: 1},
	}
	h := NewAuthHandler(cfg)

	r := newEngine()
	r.POST("/api/login", h.Login)
	protected := r.Group("/api", middleware.RequireAdminAPI(cfg.JWT.Secret))
	protected.GET("/me", h.GetMe)
	protected.POST("/logout", h.Logout)
	return r
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginIssuesCookieAcceptedByGuard(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "admin", "password": "s3cret",
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}

	cookie := sessionCookie(w)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("no session cookie set")
	}
	if !cookie.HttpOnly {
		t.Errorf("cookie is not HttpOnly")
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path = %q, want /", cookie.Path)
	}

	// the freshly issued token must pass the guard immediately
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("guarded request status = %d, want 200", w.Code)
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	r := newAuthRouter(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "s3cret"},
		{"both wrong", "root", "nope"},
		{"swapped", "s3cret", "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", map[string]string{
				"username": tt.username, "password": tt.password,
			}))
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if sessionCookie(w) != nil {
				t.Errorf("cookie set on failed login")
			}
		})
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := newAuthRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
	}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "admin", "password": "s3cret",
	}))
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatalf("no session cookie after login")
	}

	req := jsonRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	cleared := sessionCookie(w)
	if cleared == nil {
		t.Fatalf("logout did not touch the cookie")
	}
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d", cleared.Value, cleared.MaxAge)
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}
	cfg := &config.Config{
		Admin: config.AdminConfig{
			Username:     "admin",
			PasswordHash: string(hash),
		},
		JWT: config.JWTConfig{Secret: "auth-test-secret", ExpireHours: 1},
	}
	h := NewAuthHandler(cfg)
	r := newEngine()
	r.POST("/api/login", h.Login)

	login := func(password string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", map[string]string{
			"username": "admin", "password": password,
		}))
		return w.Code
	}

	if code := login("s3cret"); code != http.StatusOK {
		t.Errorf("hashed login status = %d, want 200", code)
	}
	if code := login("nope"); code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", code)
	}
}
