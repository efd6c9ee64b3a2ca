package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
	"campustasks/pkg/apierrors"
)

const userContextKey = "user"

// AuthMiddleware resolves the bearer token to a user and aborts with 401
// when the token is missing, malformed or rejected.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		user, err := authService.UserFromToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func GetUser(c *gin.Context) domain.User {
	if value, exists := c.Get(userContextKey); exists {
		if user, ok := value.(domain.User); ok {
			return user
		}
	}
	return domain.User{}
}

func GetUserID(c *gin.Context) uint64 {
	return GetUser(c).ID
}
