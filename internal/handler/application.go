package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/KunalGarg-PEC/BlogsApi/internal/mailer"
	"github.com/KunalGarg-PEC/BlogsApi/internal/media"
	"github.com/KunalGarg-PEC/BlogsApi/internal/models"
	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationHandler owns application submission and review.
type ApplicationHandler struct {
	DB           *gorm.DB
	Uploader     media.Uploader
	Mailer       mailer.Mailer
	ResumeFolder string
}

func NewApplicationHandler(db *gorm.DB, up media.Uploader, m mailer.Mailer, resumeFolder string) *ApplicationHandler {
	if resumeFolder == "" {
		resumeFolder = "job_applications"
	}
	return &ApplicationHandler{DB: db, Uploader: up, Mailer: m, ResumeFolder: resumeFolder}
}

// decodeJSONField parses a JSON-encoded multipart field into dst, leaving
// dst untouched when the field is absent or malformed. The submission form
// has always sent best-effort JSON here.
func decodeJSONField(c *gin.Context, key string, dst interface{}) {
	raw := c.PostForm(key)
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}

// uploadAttachment relays one multipart file to the media host.
func (h *ApplicationHandler) uploadAttachment(c *gin.Context, fh *multipart.FileHeader, publicID string) (*media.UploadResult, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	return h.Uploader.Upload(c.Request.Context(), f, media.UploadOptions{
		Folder:       h.ResumeFolder,
		PublicID:     publicID,
		ResourceType: "raw",
	})
}

// CreateApplication handles the public multipart submission. Attachments go
// to the media host first; nothing is persisted if any upload fails. The
// reviewer alert is fired after commit and never affects the response.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	app := models.Application{
		ID:                  uuid.NewString(),
		Email:               strings.TrimSpace(c.PostForm("email")),
		JobID:               strings.TrimSpace(c.PostForm("jobId")),
		FirstName:           c.PostForm("firstName"),
		LastName:            c.PostForm("lastName"),
		FullName:            c.PostForm("fullName"),
		Phone:               c.PostForm("phone"),
		State:               c.PostForm("state"),
		City:                c.PostForm("city"),
		AddressLine1:        c.PostForm("addressLine1"),
		IsOver18:            c.PostForm("isOver18"),
		IsAuthorizedToWork:  c.PostForm("isAuthorizedToWork"),
		RequiresSponsorship: c.PostForm("requiresSponsorship"),
		Links:               []string{},
		Education:           []models.Education{},
		Experience:          []models.Experience{},
		Projects:            []models.Project{},
		Status:              "new",
	}

	decodeJSONField(c, "links", &app.Links)
	decodeJSONField(c, "education", &app.Education)
	decodeJSONField(c, "experience", &app.Experience)
	decodeJSONField(c, "projects", &app.Projects)

	resume, err := c.FormFile("resume")
	if app.Email == "" || err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email and resume are required fields")
		return
	}

	nameHint := app.LastName
	if nameHint == "" {
		nameHint = "candidate"
	}
	now := time.Now().UnixMilli()

	resumeRef, err := h.uploadAttachment(c, resume, fmt.Sprintf("resume_%s_%d", nameHint, now))
	if err != nil {
		log.Printf("resume upload failed: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeUpload, "failed to upload resume")
		return
	}
	app.ResumePublicId = resumeRef.PublicID
	app.ResumeSecureUrl = resumeRef.SecureURL

	if cover, err := c.FormFile("coverLetter"); err == nil {
		coverRef, err := h.uploadAttachment(c, cover, fmt.Sprintf("cover_%s_%d", nameHint, now))
		if err != nil {
			log.Printf("cover letter upload failed: %v", err)
			util.Error(c, http.StatusInternalServerError, util.CodeUpload, "failed to upload cover letter")
			return
		}
		app.CoverLetterPublicId = coverRef.PublicID
		app.CoverLetterSecureUrl = coverRef.SecureURL
	}

	if err := h.DB.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			util.Error(c, http.StatusBadRequest, util.CodeConflict, "an application for this job already exists for this email")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save application")
		return
	}

	// best-effort alert: log and move on, never fail the submission
	go func(id, email string) {
		if err := h.Mailer.SendApplicationAlert(id, email); err != nil {
			log.Printf("application alert for %s failed: %v", id, err)
		}
	}(app.ID, app.Email)

	util.Created(c, util.Response{
		"message":       "application submitted successfully",
		"applicationId": app.ID,
	})
}

// isUniqueViolation matches the SQLite unique-constraint error text; gorm
// only translates it to ErrDuplicatedKey when the TranslateError option is
// enabled.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CheckEmail is the advisory duplicate precheck used by the submission form.
// The unique (email, jobId) index remains the authority.
func (h *ApplicationHandler) CheckEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		JobID string `json:"jobId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email and jobId are required")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Application{}).
		Where("email = ? AND job_id = ?", req.Email, req.JobID).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check email")
		return
	}
	util.Success(c, util.Response{
		"exists": count > 0,
	})
}

// ListApplications returns all applications, newest first. Reviewer-only.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var apps []models.Application
	if err := h.DB.Order("created_at DESC").Find(&apps).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list applications")
		return
	}
	util.Success(c, util.Response{
		"applications": apps,
	})
}

// GetApplication fetches one application by id. Reviewer-only.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id := c.Param("id")

	var app models.Application
	if err := h.DB.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "application not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch application")
		}
		return
	}
	util.Success(c, util.Response{
		"application": app,
	})
}
