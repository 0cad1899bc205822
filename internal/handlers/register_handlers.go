package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting the bookkeeping
// facade through its interface.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc portssvc.BookkeepingSvcFacade) {
	registerLedgerIDValidation()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerLedgerRoutes(v1, svc)
	registerAccountRoutes(v1, svc)
	registerJournalRoutes(v1, svc)
	registerEventRoutes(v1, svc)
}

// registerLedgerIDValidation installs the `ledgerid` binding rule used by
// the DTOs.
func registerLedgerIDValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ledgerid", func(fl validator.FieldLevel) bool {
			_, err := domain.NewLedgerID(fl.Field().String())
			return err == nil
		})
	}
}

// ledgerIDFromPath parses the :ledgerID path parameter, replying 400 and
// returning false when it is malformed.
func ledgerIDFromPath(c *gin.Context, logger *slog.Logger) (domain.LedgerID, bool) {
	ledgerID, err := domain.NewLedgerID(c.Param("ledgerID"))
	if err != nil {
		logger.Warn("Invalid ledger id in path", slog.String("ledger_id", c.Param("ledgerID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ledger id"})
		return "", false
	}
	return ledgerID, true
}

// parseUint32Param parses a numeric path parameter.
func parseUint32Param(c *gin.Context, name string) (uint32, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(value), nil
}

// respondError maps command/read errors to HTTP statuses. Validation
// failures and business rejections keep their messages; everything else is
// reported generically.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMailboxClosed):
		logger.Error("Command mailbox closed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service is shutting down"})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
