package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// journalHandler exposes journal browsing and management views.
type journalHandler struct {
	journals portssvc.JournalSvcFacade
	users    portssvc.UserSvcFacade
}

func newJournalHandler(journals portssvc.JournalSvcFacade, users portssvc.UserSvcFacade) *journalHandler {
	return &journalHandler{journals: journals, users: users}
}

func registerJournalRoutes(rg *gin.RouterGroup, journals portssvc.JournalSvcFacade, users portssvc.UserSvcFacade, gate gin.HandlerFunc) {
	h := newJournalHandler(journals, users)

	grp := rg.Group("/journals")
	{
		grp.GET("", h.list)
		grp.GET("/:id", h.detail)
		grp.PUT("/:id/editor-in-chief", gate, h.setEditorInChief)
		grp.PUT("/:id/editors", gate, h.setEditors)
		grp.POST("/:id/merge", gate, h.merge)
		grp.POST("/:id/toc", gate, h.generateTOC)
	}

	// Directory lookups backing the assignment pickers.
	usersGrp := rg.Group("/users", gate)
	{
		usersGrp.GET("/role/:role", h.usersByRole)
		usersGrp.GET("/:id", h.userInfo)
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *journalHandler) list(c *gin.Context) {
	journals, err := h.journals.JournalsForViewer(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"journals": dto.ToJournalResponses(journals)})
}

func (h *journalHandler) detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.journals.JournalDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *journalHandler) setEditorInChief(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.EditorInChiefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	journal, chief, err := h.journals.SetEditorInChief(c.Request.Context(), id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"journal": dto.ToJournalResponse(journal)}
	if chief != nil {
		resp["editor_in_chief"] = dto.ToUserResponse(chief)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) setEditors(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.EditorSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.journals.SetEditors(c.Request.Context(), id, req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) merge(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	journal, err := h.journals.MergeFiles(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"journal": dto.ToJournalResponse(journal)})
}

func (h *journalHandler) usersByRole(c *gin.Context) {
	users, err := h.users.UsersByRole(c.Request.Context(), domain.Role(c.Param("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
}

func (h *journalHandler) userInfo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.BasicInfo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *journalHandler) generateTOC(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	journal, err := h.journals.GenerateTableOfContents(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"journal": dto.ToJournalResponse(journal)})
}
