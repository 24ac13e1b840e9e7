package response

import (
	"errors"
	"net/http"

	"github.com/Dulllu/netsasa/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope returned to portal clients.
type ErrorBody struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code"`
	Error     string `json:"error"`
}

// OK sends a 200 response with the given body as-is. The captive-portal
// frontend consumes flat objects, not a data envelope.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{
			Success:   false,
			ErrorCode: appErr.Code,
			Error:     appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Success:   false,
		ErrorCode: "SYS_000",
		Error:     "Internal server error",
	})
}
