package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

const identityKey = "verified_identity"

// SessionAuthMiddleware lee la credencial de la cookie, la verifica y
// deja la identidad en el contexto del request. Cualquier fallo corta
// con 401 genérico; la causa se registra solo del lado del servidor.
func SessionAuthMiddleware(logger *zap.Logger, sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "session service not configured"})
			c.Abort()
			return
		}

		raw, err := c.Cookie(sessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		identity, err := sessions.Verify(raw)
		if err != nil {
			logger.Warn("session verify failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity obtiene la identidad verificada desde el contexto.
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	identity, ok := val.(service.Identity)
	return identity, ok
}
