package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insanmekan/journal_management_app/internal/i18n"
)

// i18nHandler exposes the bilingual resolver: full catalogs per language
// and the active-language switch.
type i18nHandler struct {
	resolver *i18n.Resolver
}

func registerI18nRoutes(rg *gin.RouterGroup, resolver *i18n.Resolver) {
	h := &i18nHandler{resolver: resolver}

	grp := rg.Group("/i18n")
	{
		grp.GET("/:lang", h.catalog)
		grp.PUT("/language", h.setLanguage)
		grp.GET("/language", h.language)
	}
}

func (h *i18nHandler) catalog(c *gin.Context) {
	lang := i18n.Language(c.Param("lang"))
	catalog := h.resolver.Catalog(lang)
	if catalog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "messages": catalog})
}

func (h *i18nHandler) setLanguage(c *gin.Context) {
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if err := h.resolver.SetLanguage(i18n.Language(req.Language)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": h.resolver.Language()})
}

func (h *i18nHandler) language(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": h.resolver.Language()})
}
