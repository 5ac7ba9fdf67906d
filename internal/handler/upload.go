package handler

import (
	"log"
	"net/http"

	"github.com/KunalGarg-PEC/BlogsApi/internal/media"
	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
)

// UploadHandler relays a single image to the media host and returns its
// URL, used by the blog editor for inline images.
type UploadHandler struct {
	Uploader    media.Uploader
	ImageFolder string
}

func NewUploadHandler(up media.Uploader, imageFolder string) *UploadHandler {
	if imageFolder == "" {
		imageFolder = "blog-images"
	}
	return &UploadHandler{Uploader: up, ImageFolder: imageFolder}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "no file received")
		return
	}

	f, err := fh.Open()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unreadable file")
		return
	}
	defer f.Close()

	ref, err := h.Uploader.Upload(c.Request.Context(), f, media.UploadOptions{
		Folder:       h.ImageFolder,
		ResourceType: "image",
	})
	if err != nil {
		log.Printf("image upload failed: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeUpload, "failed to upload image")
		return
	}

	util.Success(c, util.Response{
		"url": ref.SecureURL,
	})
}
