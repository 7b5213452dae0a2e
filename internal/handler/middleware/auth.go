package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"strength-api/internal/handler/response"
	"strength-api/pkg/token"
)

const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
	ContextUserRolesKey = "userRoles"
)

// Auth возвращает middleware для аутентификации по JWT access-токену.
// Ожидает заголовок Authorization: Bearer <token>.
func Auth(tokens token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("missing Authorization header: path=%s", c.Request.URL.Path)
			response.Error(c, http.StatusUnauthorized, "Authorization", "Отсутствует заголовок Authorization")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Printf("invalid Authorization header format: value=%q", authHeader)
			response.Error(c, http.StatusUnauthorized, "Authorization", "Некорректный формат заголовка Authorization")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization", "Некорректный формат заголовка Authorization")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			log.Printf("invalid access token: err=%v", err)
			response.Error(c, http.StatusUnauthorized, "Authorization", "Недействительный access-токен")
			c.Abort()
			return
		}

		// Сохраняем данные пользователя в контексте Gin
		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Set(ContextUserRolesKey, claims.Roles)

		c.Next()
	}
}

// RequireRole возвращает middleware, которое проверяет, что хотя бы одна
// роль пользователя входит в список разрешённых. Используется поверх Auth.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		if r == "" {
			continue
		}
		allowed[strings.ToLower(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		roles, _ := c.Get(ContextUserRolesKey)
		userRoles, _ := roles.([]string)

		if len(allowed) == 0 {
			c.Next()
			return
		}

		for _, role := range userRoles {
			if _, ok := allowed[strings.ToLower(role)]; ok {
				c.Next()
				return
			}
		}

		log.Printf("access denied for roles=%v path=%s", userRoles, c.Request.URL.Path)
		response.Error(c, http.StatusForbidden, "Authorization", "Недостаточно прав для доступа к ресурсу")
		c.Abort()
	}
}
