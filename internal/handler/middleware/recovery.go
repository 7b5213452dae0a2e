package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strength-api/internal/handler/response"
	"strength-api/pkg/logger"
)

// Recovery middleware для обработки паник и предотвращения краша приложения
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
			"panic":  recovered,
		})

		response.Error(c, http.StatusInternalServerError,
			"Internal", "Произошла непредвиденная ошибка. Пожалуйста, попробуйте позже.")
		c.Abort()
	})
}
