package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the loose payload map used by success responses.
type Response map[string]interface{}

// AdditionalInfo carries structured detail about a failed request so client
// UIs can point at the exact field. Keys are stable contract, do not rename.
type AdditionalInfo struct {
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidField  string   `json:"invalid_field,omitempty"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Error writes the error envelope with a machine-readable reason.
func Error(c *gin.Context, httpStatus int, reason string) {
	c.JSON(httpStatus, gin.H{
		"status": "error",
		"reason": reason,
	})
}

// ErrorWithInfo writes the error envelope plus field-level detail.
func ErrorWithInfo(c *gin.Context, httpStatus int, reason string, info AdditionalInfo) {
	c.JSON(httpStatus, gin.H{
		"status":          "error",
		"reason":          reason,
		"additional_info": info,
	})
}
