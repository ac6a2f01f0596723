package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

// QuestionHandler mantiene dependencias para endpoints de preguntas.
type QuestionHandler struct {
	logger       *zap.Logger
	questionServ *service.QuestionService
}

// NewQuestionHandler crea una instancia de QuestionHandler.
func NewQuestionHandler(logger *zap.Logger, questionServ *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{logger: logger, questionServ: questionServ}
}

// ListBank maneja GET /questions. Ruta pública: el banco no tiene dueño.
func (h *QuestionHandler) ListBank(c *gin.Context) {
	questions, err := h.questionServ.ListBank(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListSubmitted maneja GET /my-questions?email=.
func (h *QuestionHandler) ListSubmitted(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	questions, err := h.questionServ.ListSubmitted(c.Request.Context(), identity, c.Query("email"))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitQuestion maneja POST /my-questions.
func (h *QuestionHandler) SubmitQuestion(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail string   `json:"userEmail" binding:"required,email"`
		Text      string   `json:"text" binding:"required"`
		Options   []string `json:"options" binding:"required"`
		Answer    string   `json:"answer" binding:"required"`
		Category  string   `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit question request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	question, err := h.questionServ.Submit(c.Request.Context(), identity, service.SubmitQuestionInput{
		UserEmail: req.UserEmail,
		Text:      req.Text,
		Options:   req.Options,
		Answer:    req.Answer,
		Category:  req.Category,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// DeleteSubmitted maneja DELETE /my-questions/:id.
func (h *QuestionHandler) DeleteSubmitted(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	if err := h.questionServ.DeleteSubmitted(c.Request.Context(), identity, c.Param("id")); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
