package middleware

import (
	"github.com/KunalGarg-PEC/BlogsApi/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware records every authenticated admin API action. Failures to
// write the audit row never affect the request itself.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		subject := Subject(c)
		if subject == "" {
			return
		}

		entry := models.AuditLog{
			Subject:   subject,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
