package handler

import (
	"log"
	"net/http"

	"github.com/KunalGarg-PEC/BlogsApi/internal/mailer"
	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
)

// ContactHandler forwards the public contact and partner forms to the mail
// relay. Unlike the application alert, the mail here IS the operation, so a
// relay failure surfaces as a 500.
type ContactHandler struct {
	Mailer mailer.Mailer
}

func NewContactHandler(m mailer.Mailer) *ContactHandler {
	return &ContactHandler{Mailer: m}
}

func (h *ContactHandler) Contact(c *gin.Context) {
	var form mailer.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "fullName and a valid workEmail are required")
		return
	}

	if err := h.Mailer.SendContactForm(form); err != nil {
		log.Printf("contact form mail failed: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to send email")
		return
	}
	util.Success(c, util.Response{
		"message": "email sent successfully",
	})
}

func (h *ContactHandler) Partner(c *gin.Context) {
	var form mailer.PartnerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "fullName and a valid workEmail are required")
		return
	}

	if err := h.Mailer.SendPartnerForm(form); err != nil {
		log.Printf("partner form mail failed: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to send email")
		return
	}
	util.Success(c, util.Response{
		"message": "email sent successfully",
	})
}
