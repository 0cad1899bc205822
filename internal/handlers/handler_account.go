package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
)

// accountHandler handles HTTP requests related to a ledger's chart of
// accounts.
type accountHandler struct {
	svc portssvc.BookkeepingSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := &accountHandler{svc: svc}
	rg.POST("/ledgers/:ledgerID/accounts", h.openAccount)
	rg.GET("/ledgers/:ledgerID/accounts", h.listAccounts)
	rg.DELETE("/ledgers/:ledgerID/accounts/:accountID", h.closeAccount)
}

// openAccount adds an account to the ledger's chart.
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerID, ok := ledgerIDFromPath(c, logger)
	if !ok {
		return
	}

	req := dto.CreateAccountRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for openAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	accountID, err := domain.NewAccountID(req.AccountID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	name, err := domain.NewAccountName(req.Name)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	if err := h.svc.OpenAccount(c.Request.Context(), ledgerID, accountID, name, category); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Account opened", slog.String("ledger_id", ledgerID.String()), slog.String("account_id", accountID.String()))
	c.JSON(http.StatusCreated, gin.H{"accountID": accountID})
}

// closeAccount retires an open account.
func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerID, ok := ledgerIDFromPath(c, logger)
	if !ok {
		return
	}

	rawID, err := parseUint32Param(c, "accountID")
	if err != nil {
		logger.Warn("Invalid account id in path", slog.String("account_id", c.Param("accountID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}
	accountID, err := domain.NewAccountID(rawID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	if err := h.svc.CloseAccount(c.Request.Context(), ledgerID, accountID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Account closed", slog.String("ledger_id", ledgerID.String()), slog.String("account_id", accountID.String()))
	c.Status(http.StatusNoContent)
}

// listAccounts returns the ledger's derived account views.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledgerID, ok := ledgerIDFromPath(c, logger)
	if !ok {
		return
	}

	accounts, err := h.svc.Accounts(c.Request.Context(), ledgerID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListAccountsResponse(accounts))
}
