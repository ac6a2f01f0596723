package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	sessions *service.SessionService,
	sessionH *SessionHandler,
	userH *UserHandler,
	classH *ClassHandler,
	txH *TransactionHandler,
	planH *StudyPlanHandler,
	questionH *QuestionHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares básicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	// Sesión: emisión y cierre. No requieren credencial previa.
	r.POST("/jwt", sessionH.IssueToken)
	r.GET("/logout", sessionH.Logout)

	// Rutas públicas: datos sin dueño.
	r.GET("/users", userH.ListUsers)
	r.POST("/users", userH.CreateUser)
	r.GET("/questions", questionH.ListBank)

	// Rutas protegidas: toda operación sobre recursos con dueño pasa
	// por el verificador de credencial antes de tocar storage.
	authed := r.Group("", SessionAuthMiddleware(logger, sessions))

	authed.GET("/classes", classH.ListClasses)
	authed.POST("/classes", classH.CreateClass)
	authed.PUT("/classes/:id", classH.UpdateClass)
	authed.DELETE("/classes/:id", classH.DeleteClass)

	authed.GET("/transactions", txH.ListTransactions)
	authed.POST("/transactions", txH.CreateTransaction)
	authed.PATCH("/transactions/:id", txH.UpdateTransaction)
	authed.DELETE("/transactions/:id", txH.DeleteTransaction)
	authed.DELETE("/transactions", txH.PurgeTransactions)

	authed.GET("/plans", planH.ListPlans)
	authed.POST("/plans", planH.CreatePlan)
	authed.PUT("/plans/:id", planH.UpdatePlan)
	authed.DELETE("/plans/:id", planH.DeletePlan)

	authed.GET("/my-questions", questionH.ListSubmitted)
	authed.POST("/my-questions", questionH.SubmitQuestion)
	authed.DELETE("/my-questions/:id", questionH.DeleteSubmitted)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
