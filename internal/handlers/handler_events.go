package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// eventHandler exposes the raw event log to reporting collaborators.
type eventHandler struct {
	svc portssvc.BookkeepingSvcFacade
}

func registerEventRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := &eventHandler{svc: svc}
	rg.GET("/events", h.listEvents)
}

// listEvents returns a point-in-time snapshot of the full log.
func (h *eventHandler) listEvents(c *gin.Context) {
	events := h.svc.Events(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"events": dto.NewEventResponses(events)})
}
