package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// activeJournalHandler exposes the working journal pointer.
type activeJournalHandler struct {
	selector portssvc.ActiveJournalSvcFacade
	journals portssvc.JournalSvcFacade
}

func newActiveJournalHandler(selector portssvc.ActiveJournalSvcFacade, journals portssvc.JournalSvcFacade) *activeJournalHandler {
	return &activeJournalHandler{selector: selector, journals: journals}
}

func registerActiveJournalRoutes(rg *gin.RouterGroup, selector portssvc.ActiveJournalSvcFacade, journals portssvc.JournalSvcFacade, adminGate gin.HandlerFunc) {
	h := newActiveJournalHandler(selector, journals)

	active := rg.Group("/active-journal")
	{
		active.GET("", h.get)
		active.POST("/refresh", h.refresh)
		active.PUT("", adminGate, h.set)
		active.DELETE("", adminGate, h.clear)
	}
}

func (h *activeJournalHandler) get(c *gin.Context) {
	journal, source := h.selector.Active()
	resp := dto.ActiveJournalResponse{Source: source}
	if journal != nil {
		j := dto.ToJournalResponse(journal)
		resp.Journal = &j
	}
	c.JSON(http.StatusOK, resp)
}

func (h *activeJournalHandler) refresh(c *gin.Context) {
	if _, err := h.selector.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	h.get(c)
}

// set updates the platform settings pointer and the local selector through
// the journal workflow, keeping the two in the documented order.
func (h *activeJournalHandler) set(c *gin.Context) {
	var req dto.ActiveJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	journal, err := h.journals.SetActiveJournal(c.Request.Context(), req.JournalID)
	if err != nil {
		respondError(c, err)
		return
	}
	j := dto.ToJournalResponse(journal)
	c.JSON(http.StatusOK, dto.ActiveJournalResponse{Journal: &j, Source: portssvc.ActiveJournalSourceBackend})
}

func (h *activeJournalHandler) clear(c *gin.Context) {
	if err := h.journals.ClearActiveJournal(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActiveJournalResponse{})
}
