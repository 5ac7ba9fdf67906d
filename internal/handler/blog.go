package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KunalGarg-PEC/BlogsApi/internal/media"
	"github.com/KunalGarg-PEC/BlogsApi/internal/models"
	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// BlogHandler publishes and serves blog posts. Posts are write-once.
type BlogHandler struct {
	DB          *gorm.DB
	Uploader    media.Uploader
	ImageFolder string
	policy      *bluemonday.Policy
}

func NewBlogHandler(db *gorm.DB, up media.Uploader, imageFolder string) *BlogHandler {
	if imageFolder == "" {
		imageFolder = "blog-images"
	}
	return &BlogHandler{
		DB:          db,
		Uploader:    up,
		ImageFolder: imageFolder,
		// rich-text from the editor is untrusted HTML
		policy: bluemonday.UGCPolicy(),
	}
}

// CreateBlog handles the multipart publish form: all fields plus the cover
// image are required, the image is relayed to the media host and the
// description is sanitized before persistence.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := c.PostForm("description")
	blogType := strings.TrimSpace(c.PostForm("type"))
	author := strings.TrimSpace(c.PostForm("author"))

	imageFile, err := c.FormFile("image")
	if title == "" || description == "" || blogType == "" || author == "" || err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "all fields are required")
		return
	}

	f, err := imageFile.Open()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unreadable image")
		return
	}
	defer f.Close()

	ref, err := h.Uploader.Upload(c.Request.Context(), f, media.UploadOptions{
		Folder:       h.ImageFolder,
		PublicID:     fmt.Sprintf("%d-%s", time.Now().UnixMilli(), imageFile.Filename),
		ResourceType: "image",
	})
	if err != nil {
		log.Printf("blog image upload failed: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeUpload, "failed to upload image")
		return
	}

	blog := models.Blog{
		Title:       title,
		Description: h.policy.Sanitize(description),
		Type:        blogType,
		Author:      author,
		Image:       ref.SecureURL,
	}
	if err := h.DB.Create(&blog).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save blog")
		return
	}

	util.Created(c, util.Response{
		"blog": blog,
	})
}

// GetBlogs lists all posts, or fetches one when ?id= is given (the shape
// the public site has always queried).
func (h *BlogHandler) GetBlogs(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		h.getByID(c, idStr)
		return
	}

	var blogs []models.Blog
	if err := h.DB.Order("created_at DESC").Find(&blogs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list blogs")
		return
	}
	util.Success(c, util.Response{
		"blogs": blogs,
	})
}

// GetBlog fetches one post by path id.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	h.getByID(c, c.Param("id"))
}

func (h *BlogHandler) getByID(c *gin.Context, idStr string) {
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "blog not found")
		return
	}

	var blog models.Blog
	if err := h.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "blog not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch blog")
		}
		return
	}
	util.Success(c, util.Response{
		"blog": blog,
	})
}
