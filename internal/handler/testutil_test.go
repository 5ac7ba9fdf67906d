package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"
	"github.com/KunalGarg-PEC/BlogsApi/internal/database"
	"github.com/KunalGarg-PEC/BlogsApi/internal/mailer"
	"github.com/KunalGarg-PEC/BlogsApi/internal/media"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fakeUploader stands in for the media host.
type fakeUploader struct {
	mu    sync.Mutex
	fail  bool
	calls int
}

func (f *fakeUploader) Upload(_ context.Context, r io.Reader, opts media.UploadOptions) (*media.UploadResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fail {
		return nil, errors.New("remote service unavailable")
	}
	_, _ = io.Copy(io.Discard, r)
	return &media.UploadResult{
		PublicID:  opts.Folder + "/" + opts.PublicID,
		SecureURL: "https://cdn.example.com/" + opts.Folder + "/" + opts.PublicID,
	}, nil
}

// fakeMailer records alerts; alerts is buffered so the handler's
// fire-and-forget goroutine never blocks.
type fakeMailer struct {
	fail   bool
	alerts chan string
}

func newFakeMailer(fail bool) *fakeMailer {
	return &fakeMailer{fail: fail, alerts: make(chan string, 8)}
}

func (m *fakeMailer) SendApplicationAlert(applicationID, _ string) error {
	m.alerts <- applicationID
	if m.fail {
		return errors.New("smtp relay down")
	}
	return nil
}

func (m *fakeMailer) SendContactForm(mailer.ContactForm) error {
	if m.fail {
		return errors.New("smtp relay down")
	}
	return nil
}

func (m *fakeMailer) SendPartnerForm(mailer.PartnerForm) error {
	if m.fail {
		return errors.New("smtp relay down")
	}
	return nil
}

// envelope mirrors the common JSON response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
	}
	return env
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds an application/blog submission with optional file
// parts (name -> content).
func multipartRequest(t *testing.T, path string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile(name, name+".pdf")
		if err != nil {
			t.Fatalf("create file part %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file part %s: %v", name, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
