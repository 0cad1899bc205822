package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// ledgerHandler handles HTTP requests related to ledger namespaces.
type ledgerHandler struct {
	svc portssvc.BookkeepingSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := &ledgerHandler{svc: svc}
	rg.POST("/ledgers", h.createLedger)
	rg.GET("/ledgers", h.listLedgers)
}

// createLedger registers a new ledger namespace.
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateLedgerRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Binding already enforced the ledgerid rule; this parse cannot fail.
	ledgerID, _ := domain.NewLedgerID(req.LedgerID)

	if err := h.svc.CreateLedger(c.Request.Context(), ledgerID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Ledger created", slog.String("ledger_id", ledgerID.String()))
	c.JSON(http.StatusCreated, gin.H{"ledgerID": ledgerID.String()})
}

// listLedgers returns the live ledger namespaces.
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	ids := h.svc.Ledgers(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewListLedgersResponse(ids))
}
