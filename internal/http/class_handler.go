package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

// ClassHandler mantiene dependencias para endpoints de clases.
type ClassHandler struct {
	logger    *zap.Logger
	classServ *service.ClassService
}

// NewClassHandler crea una instancia de ClassHandler.
func NewClassHandler(logger *zap.Logger, classServ *service.ClassService) *ClassHandler {
	return &ClassHandler{logger: logger, classServ: classServ}
}

// ListClasses maneja GET /classes?email=.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	classes, err := h.classServ.ListByOwner(c.Request.Context(), identity, c.Query("email"))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass maneja POST /classes.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail  string `json:"userEmail" binding:"required,email"`
		Title      string `json:"title" binding:"required"`
		Subject    string `json:"subject"`
		Instructor string `json:"instructor"`
		Schedule   string `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create class request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	class, err := h.classServ.Create(c.Request.Context(), identity, service.CreateClassInput{
		UserEmail:  req.UserEmail,
		Title:      req.Title,
		Subject:    req.Subject,
		Instructor: req.Instructor,
		Schedule:   req.Schedule,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// UpdateClass maneja PUT /classes/:id.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail  *string `json:"userEmail"`
		Title      *string `json:"title"`
		Subject    *string `json:"subject"`
		Instructor *string `json:"instructor"`
		Schedule   *string `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update class request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	err := h.classServ.Update(c.Request.Context(), identity, c.Param("id"), service.UpdateClassInput{
		UserEmail:  req.UserEmail,
		Title:      req.Title,
		Subject:    req.Subject,
		Instructor: req.Instructor,
		Schedule:   req.Schedule,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteClass maneja DELETE /classes/:id.
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	if err := h.classServ.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
