package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErroDTO is the structured error body returned by every failure response.
type ErroDTO struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// NovoErro builds an ErroDTO stamped with the current instant.
func NovoErro(status int, erro, message, path string) ErroDTO {
	return ErroDTO{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     erro,
		Message:   message,
		Path:      path,
	}
}

// ===========================
// 🚨 Global Error Handler
// Any error attached to the context that no handler answered becomes a 500
// with a correlation id. Internal detail is logged, never sent to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		correlationID := uuid.NewString()
		log.Printf("Erro inesperado [ID: %s] na rota %s: %v", correlationID, c.Request.URL.Path, c.Errors.Last().Err)

		mensagemSegura := "Ocorreu um erro inesperado no sistema. Por favor, tente novamente. ID da falha: " + correlationID
		c.JSON(http.StatusInternalServerError, NovoErro(
			http.StatusInternalServerError,
			"Erro Interno",
			mensagemSegura,
			c.Request.URL.Path,
		))
	}
}

// ===========================
// 🛡 Recovery
// Panics get the same treatment as uncaught errors.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		correlationID := uuid.NewString()
		log.Printf("Panic [ID: %s] na rota %s: %v", correlationID, c.Request.URL.Path, recovered)

		mensagemSegura := "Ocorreu um erro inesperado no sistema. Por favor, tente novamente. ID da falha: " + correlationID
		c.AbortWithStatusJSON(http.StatusInternalServerError, NovoErro(
			http.StatusInternalServerError,
			"Erro Interno",
			mensagemSegura,
			c.Request.URL.Path,
		))
	})
}
