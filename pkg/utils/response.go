// en pkg/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse define la estructura estándar para las respuestas de error.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Send escribe el cuerpo tal cual, respetando el orden de campos del struct.
func Send(c *gin.Context, statusCode int, body interface{}) {
	c.JSON(statusCode, body)
}

// SendError envía una respuesta de error con un formato estandarizado.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Message: message})
}

// --- Helpers específicos para errores comunes ---

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

func SendMethodNotAllowed(c *gin.Context, message string) {
	SendError(c, http.StatusMethodNotAllowed, message)
}

func SendInternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, message)
}
