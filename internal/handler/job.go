package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KunalGarg-PEC/BlogsApi/internal/models"
	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// JobHandler owns the job posting CRUD surface.
type JobHandler struct {
	DB *gorm.DB
}

func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{DB: db}
}

type createJobReq struct {
	Title       string   `json:"title" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Description string   `json:"description" binding:"required"`
	JobID       string   `json:"jobId" binding:"required"`
	DatePosted  string   `json:"datePosted"`
	Skills      []string `json:"skills"`
}

type updateJobReq struct {
	Title       *string   `json:"title"`
	Location    *string   `json:"location"`
	Type        *string   `json:"type"`
	Description *string   `json:"description"`
	DatePosted  *string   `json:"datePosted"`
	Skills      *[]string `json:"skills"`
}

// parsePostedDate accepts the formats the admin form has historically sent.
func parsePostedDate(s string) (time.Time, bool) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateJob validates required fields, enforces jobId uniqueness and
// persists the posting. DatePosted defaults to now; skills default to an
// empty list.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req createJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing required fields")
		return
	}

	req.JobID = strings.TrimSpace(req.JobID)
	if req.JobID == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing required fields")
		return
	}
	if !models.ValidJobType(req.Type) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid job type")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Job{}).Where("job_id = ?", req.JobID).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to check job id")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeConflict, "a job with that jobId already exists")
		return
	}

	datePosted := time.Now()
	if req.DatePosted != "" {
		if t, ok := parsePostedDate(req.DatePosted); ok {
			datePosted = t
		}
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	job := models.Job{
		JobID:       req.JobID,
		Title:       strings.TrimSpace(req.Title),
		Location:    strings.TrimSpace(req.Location),
		Type:        req.Type,
		Description: strings.TrimSpace(req.Description),
		DatePosted:  datePosted,
		Skills:      skills,
	}

	if err := h.DB.Create(&job).Error; err != nil {
		// the unique index is the authority; the pre-check above only
		// exists for a friendlier message
		util.Error(c, http.StatusBadRequest, util.CodeConflict, "a job with that jobId already exists")
		return
	}

	util.Created(c, util.Response{
		"job": job,
	})
}

// ListJobs returns all postings, most recent first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var jobs []models.Job
	if err := h.DB.Order("date_posted DESC").Find(&jobs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list jobs")
		return
	}
	util.Success(c, util.Response{
		"jobs": jobs,
	})
}

// GetJob fetches a single posting by its external jobId.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("jobId")

	var job models.Job
	if err := h.DB.Where("job_id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "no job found with jobId: "+jobID)
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch job")
		}
		return
	}
	util.Success(c, util.Response{
		"job": job,
	})
}

// UpdateJob merges the supplied fields into the existing posting. The jobId
// itself is immutable.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID := c.Param("jobId")

	var req updateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if req.Type != nil && !models.ValidJobType(*req.Type) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid job type")
		return
	}

	var job models.Job
	if err := h.DB.Where("job_id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "no job found with jobId: "+jobID)
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch job")
		}
		return
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Location != nil {
		job.Location = strings.TrimSpace(*req.Location)
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Description != nil {
		job.Description = strings.TrimSpace(*req.Description)
	}
	if req.DatePosted != nil {
		if t, ok := parsePostedDate(*req.DatePosted); ok {
			job.DatePosted = t
		}
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}

	if err := h.DB.Save(&job).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save job")
		return
	}
	util.Success(c, util.Response{
		"job": job,
	})
}

// DeleteJob removes a posting permanently.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("jobId")

	res := h.DB.Where("job_id = ?", jobID).Delete(&models.Job{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete job")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "no job found with jobId: "+jobID)
		return
	}
	util.Success(c, util.Response{
		"message": "job deleted",
	})
}
