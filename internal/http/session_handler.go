package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

// SessionHandler mantiene dependencias para emisión y cierre de sesión.
type SessionHandler struct {
	logger     *zap.Logger
	sessions   *service.SessionService
	limiter    service.IssueRateLimiter
	production bool
}

// NewSessionHandler crea una instancia de SessionHandler.
func NewSessionHandler(logger *zap.Logger, sessions *service.SessionService, limiter service.IssueRateLimiter, production bool) *SessionHandler {
	return &SessionHandler{
		logger:     logger,
		sessions:   sessions,
		limiter:    limiter,
		production: production,
	}
}

// IssueToken maneja POST /jwt. La identidad es declarada por el
// cliente; no hay factor de autenticación adicional en este contrato.
func (h *SessionHandler) IssueToken(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(req.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
		return
	}

	token, err := h.sessions.Issue(req.Email)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	setSessionCookie(c, token, h.sessions.TTL(), h.production)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout maneja GET /logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, h.production)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
