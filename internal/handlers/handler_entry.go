package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// entryHandler exposes entry submission, browsing, and workflow views.
type entryHandler struct {
	entries portssvc.EntrySvcFacade
}

func newEntryHandler(entries portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entries: entries}
}

func registerEntryRoutes(rg *gin.RouterGroup, entries portssvc.EntrySvcFacade, gate gin.HandlerFunc) {
	h := newEntryHandler(entries)

	grp := rg.Group("/entries")
	{
		grp.POST("", gate, h.create)
		grp.GET("/:id", h.detail)
		grp.PUT("/:id", gate, h.update)
		grp.PUT("/:id/authors", gate, h.setAuthors)
		grp.PUT("/:id/referees", gate, h.setReferees)
		grp.PUT("/:id/journal", gate, h.changeJournal)
		grp.GET("/:id/author-updates", gate, h.authorUpdates)
		grp.POST("/:id/author-updates", gate, h.addAuthorUpdate)
		grp.GET("/:id/referee-updates", gate, h.refereeUpdates)
		grp.POST("/:id/referee-updates", gate, h.addRefereeUpdate)
	}

	// Listing lives under the journal it belongs to.
	rg.GET("/journals/:id/entries", h.byJournal)
}

func (h *entryHandler) create(c *gin.Context) {
	var req dto.EntryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entries.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *entryHandler) detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.entries.EntryDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *entryHandler) byJournal(c *gin.Context) {
	journalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || journalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entries, svcErr := h.entries.EntriesForJournal(c.Request.Context(), journalID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dto.ToEntryResponses(entries)})
}

func (h *entryHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.EntryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entries.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *entryHandler) setAuthors(c *gin.Context) {
	h.setMembers(c, h.entries.SetAuthors)
}

func (h *entryHandler) setReferees(c *gin.Context) {
	h.setMembers(c, h.entries.SetReferees)
}

func (h *entryHandler) setMembers(c *gin.Context, apply func(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MemberSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := apply(c.Request.Context(), id, req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *entryHandler) authorUpdates(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	updates, err := h.entries.AuthorUpdates(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

func (h *entryHandler) refereeUpdates(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	updates, err := h.entries.RefereeUpdates(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

func (h *entryHandler) addAuthorUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AuthorUpdateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	update, err := h.entries.AddAuthorUpdate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

func (h *entryHandler) addRefereeUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.RefereeUpdateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	update, err := h.entries.AddRefereeUpdate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

func (h *entryHandler) changeJournal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ChangeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, journal, err := h.entries.ChangeJournal(c.Request.Context(), id, req.JournalID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"entry": dto.ToEntryResponse(entry)}
	if journal != nil {
		resp["journal"] = dto.ToJournalResponse(journal)
	}
	c.JSON(http.StatusOK, resp)
}
