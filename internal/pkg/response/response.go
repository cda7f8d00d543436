package response

import (
	"log/slog"
	"net/http"

	"jobvibe/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Success(c *gin.Context, statusCode int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(statusCode, Envelope{Status: true, Message: message, Data: data})
}

func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// Error writes a failure envelope with an explicit status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Status: false, Message: message, Data: gin.H{}})
}

// ValidationFailed reports per-field validation failures in data.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Status:  false,
		Message: "Validation failed",
		Data:    gin.H{"errors": fields},
	})
}

// Fail maps err to a status through its apperr kind.
// Internal errors are logged and answered with a generic message.
func Fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(apperr.HTTPStatus(kind), Envelope{
		Status:  false,
		Message: apperr.Message(err),
		Data:    gin.H{},
	})
}

// Abort is Fail for middleware: it stops the handler chain.
func Abort(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
