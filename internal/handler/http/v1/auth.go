package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/auth"
	"github.com/shenikar/travel_tracking_system/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

// JWTAuthMiddleware - middleware для аутентификации по bearer токену
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.WithField("path", c.Request.URL.Path).Warn("Authorization header missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			log.WithField("path", c.Request.URL.Path).Warn("Invalid authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			log.WithError(err).WithField("path", c.Request.URL.Path).Warn("Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		userID, _ := claims.UserUUID()
		c.Set(ctxUserID, userID)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin пропускает только токены с правом администратора.
// Подключается к группе маршрутов после JWTAuthMiddleware.
func RequireAdmin(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsAdmin) {
			log.WithFields(logrus.Fields{
				"path":    c.Request.URL.Path,
				"user_id": c.Value(ctxUserID),
			}).Warn("Non-admin user attempted admin access")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// currentUserID возвращает пользователя, установленного JWTAuthMiddleware
func currentUserID(c *gin.Context) uuid.UUID {
	if id, ok := c.Get(ctxUserID); ok {
		if userID, ok := id.(uuid.UUID); ok {
			return userID
		}
	}
	return uuid.Nil
}
