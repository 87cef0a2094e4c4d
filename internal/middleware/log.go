package middleware

import (
	"github.com/irisalmeida/registra-ai/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records one row per authenticated mutating request. Read-only
// traffic is skipped; a failed audit write never fails the request itself.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == "GET" {
			return
		}

		var userID string
		if v, ok := c.Get(CurrentUserKey); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}
		if userID == "" {
			return
		}

		entry := models.AuditLog{
			UserID: userID,
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Status: c.Writer.Status(),
			IP:     c.ClientIP(),
		}
		_ = db.Create(&entry).Error
	}
}
