package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-tracker/internal/service"
)

// TransactionHandler mantiene dependencias para endpoints de movimientos.
type TransactionHandler struct {
	logger *zap.Logger
	txServ *service.TransactionService
}

// NewTransactionHandler crea una instancia de TransactionHandler.
func NewTransactionHandler(logger *zap.Logger, txServ *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{logger: logger, txServ: txServ}
}

// ListTransactions maneja GET /transactions?email=.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	txs, err := h.txServ.ListByOwner(c.Request.Context(), identity, c.Query("email"))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// CreateTransaction maneja POST /transactions.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail string  `json:"userEmail" binding:"required,email"`
		Amount    float64 `json:"amount" binding:"required"`
		Category  string  `json:"category"`
		Note      string  `json:"note"`
		Date      string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create transaction request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	tx, err := h.txServ.Create(c.Request.Context(), identity, service.CreateTransactionInput{
		UserEmail: req.UserEmail,
		Amount:    req.Amount,
		Category:  req.Category,
		Note:      req.Note,
		Date:      req.Date,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// UpdateTransaction maneja PATCH /transactions/:id.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	var req struct {
		UserEmail *string  `json:"userEmail"`
		Amount    *float64 `json:"amount"`
		Category  *string  `json:"category"`
		Note      *string  `json:"note"`
		Date      *string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update transaction request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	err := h.txServ.Update(c.Request.Context(), identity, c.Param("id"), service.UpdateTransactionInput{
		UserEmail: req.UserEmail,
		Amount:    req.Amount,
		Category:  req.Category,
		Note:      req.Note,
		Date:      req.Date,
	})
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteTransaction maneja DELETE /transactions/:id.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	if err := h.txServ.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PurgeTransactions maneja DELETE /transactions?email= (borrado por lote).
func (h *TransactionHandler) PurgeTransactions(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	deleted, err := h.txServ.Purge(c.Request.Context(), identity, c.Query("email"))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}
