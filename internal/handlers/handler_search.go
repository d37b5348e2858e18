package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// searchHandler forwards full-text search.
type searchHandler struct {
	search portssvc.SearchSvc
}

func registerSearchRoutes(rg *gin.RouterGroup, search portssvc.SearchSvc) {
	h := &searchHandler{search: search}
	rg.GET("/search", h.query)
}

func (h *searchHandler) query(c *gin.Context) {
	results, err := h.search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// settingsHandler exposes the platform settings row to admins.
type settingsHandler struct {
	settings portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settings portssvc.SettingsSvcFacade, adminGate gin.HandlerFunc) {
	h := &settingsHandler{settings: settings}

	grp := rg.Group("/settings", adminGate)
	{
		grp.GET("", h.get)
		grp.PUT("", h.update)
	}
}

func (h *settingsHandler) get(c *gin.Context) {
	settings, err := h.settings.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *settingsHandler) update(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
