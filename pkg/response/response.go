package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
)

// JSON sends a payload as-is. List endpoints return bare arrays, matching
// the contract the frontend consumes.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// Message sends a `{"message": ...}` body.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, gin.H{"message": message})
}

// Error translates any error into the `{"message": ...}` contract with the
// status carried by the typed error. Internal detail never leaks.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}

// OK sends a payload with HTTP 200.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
