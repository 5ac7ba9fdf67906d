package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestContactFormSendsMail(t *testing.T) {
	m := newFakeMailer(false)
	h := NewContactHandler(m)
	r := newEngine()
	r.POST("/api/contact", h.Contact)
	r.POST("/api/partner", h.Partner)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/contact", map[string]string{
		"fullName":  "Ada Lovelace",
		"workEmail": "ada@example.com",
		"message":   "Hello",
	}))
	if w.Code != http.StatusOK {
		t.Errorf("contact status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/partner", map[string]string{
		"fullName":         "Ada Lovelace",
		"workEmail":        "ada@example.com",
		"organisationName": "Analytical Engines Ltd",
	}))
	if w.Code != http.StatusOK {
		t.Errorf("partner status = %d, want 200", w.Code)
	}
}

func TestContactFormValidation(t *testing.T) {
	h := NewContactHandler(newFakeMailer(false))
	r := newEngine()
	r.POST("/api/contact", h.Contact)

	tests := []map[string]string{
		{"workEmail": "ada@example.com"},         // missing fullName
		{"fullName": "Ada"},                      // missing email
		{"fullName": "Ada", "workEmail": "nope"}, // invalid email
	}
	for _, body := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/contact", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d, want 400", body, w.Code)
		}
	}
}

func TestContactFormRelayFailure(t *testing.T) {
	// unlike the application alert, the mail here is the whole operation
	h := NewContactHandler(newFakeMailer(true))
	r := newEngine()
	r.POST("/api/contact", h.Contact)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/contact", map[string]string{
		"fullName":  "Ada Lovelace",
		"workEmail": "ada@example.com",
	}))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
