package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

// StudyPlanHandler mantiene dependencias para endpoints de planes de estudio.
type StudyPlanHandler struct {
	logger   *zap.Logger
	planServ *service.StudyPlanService
}

// NewStudyPlanHandler crea una instancia de StudyPlanHandler.
func NewStudyPlanHandler(logger *zap.Logger, planServ *service.StudyPlanService) *StudyPlanHandler {
	return &StudyPlanHandler{logger: logger, planServ: planServ}
}

// ListPlans maneja GET /plans?email=.
func (h *StudyPlanHandler) ListPlans(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	plans, err := h.planServ.ListByOwner(c.Request.Context(), identity, c.Query("email"))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// CreatePlan maneja POST /plans.
func (h *StudyPlanHandler) CreatePlan(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail string `json:"userEmail" binding:"required,email"`
		Topic     string `json:"topic" binding:"required"`
		Date      string `json:"date"`
		Priority  string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	plan, err := h.planServ.Create(c.Request.Context(), identity, service.CreateStudyPlanInput{
		UserEmail: req.UserEmail,
		Topic:     req.Topic,
		Date:      req.Date,
		Priority:  req.Priority,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan maneja PUT /plans/:id.
func (h *StudyPlanHandler) UpdatePlan(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail *string `json:"userEmail"`
		Topic     *string `json:"topic"`
		Date      *string `json:"date"`
		Priority  *string `json:"priority"`
		Completed *bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	err := h.planServ.Update(c.Request.Context(), identity, c.Param("id"), service.UpdateStudyPlanInput{
		UserEmail: req.UserEmail,
		Topic:     req.Topic,
		Date:      req.Date,
		Priority:  req.Priority,
		Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePlan maneja DELETE /plans/:id.
func (h *StudyPlanHandler) DeletePlan(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	if err := h.planServ.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
