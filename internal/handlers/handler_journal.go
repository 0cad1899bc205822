package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
)

// journalHandler handles HTTP requests related to transactions and the
// trial balance report.
type journalHandler struct {
	svc portssvc.BookkeepingSvcFacade
}

func registerJournalRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := &journalHandler{svc: svc}
	rg.POST("/ledgers/:ledgerID/transactions", h.recordTransaction)
	rg.GET("/ledgers/:ledgerID/trial-balance", h.trialBalance)
}

// recordTransaction appends a balanced multi-leg transaction to the ledger.
func (h *journalHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerID, ok := ledgerIDFromPath(c, logger)
	if !ok {
		return
	}

	req := dto.RecordTransactionRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	legs, err := req.ToDomainLegs()
	if err != nil {
		respondError(c, logger, err)
		return
	}

	transactionID, err := h.svc.RecordTransaction(c.Request.Context(), ledgerID, req.Description, legs, req.Date)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transaction recorded", slog.String("ledger_id", ledgerID.String()), slog.Uint64("transaction_id", uint64(transactionID)))
	c.JSON(http.StatusCreated, dto.RecordTransactionResponse{TransactionID: uint32(transactionID)})
}

// trialBalance reports per-account signed balances for the ledger.
func (h *journalHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerID, ok := ledgerIDFromPath(c, logger)
	if !ok {
		return
	}

	rows, err := h.svc.TrialBalance(c.Request.Context(), ledgerID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTrialBalanceResponse(ledgerID, rows))
}
