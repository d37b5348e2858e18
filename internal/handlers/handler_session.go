package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// sessionHandler exposes the operator session state.
type sessionHandler struct {
	session portssvc.SessionSvcFacade
}

func newSessionHandler(session portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{session: session}
}

func registerSessionRoutes(rg *gin.RouterGroup, session portssvc.SessionSvcFacade, gate gin.HandlerFunc) {
	h := newSessionHandler(session)

	sess := rg.Group("/session")
	{
		sess.GET("", h.state)
		sess.POST("/refresh", gate, h.refresh)
		sess.PUT("/profile", gate, h.updateProfile)
	}
}

// sessionResponse snapshots the session for the wire.
func sessionResponse(session portssvc.SessionReaderSvc) dto.SessionResponse {
	resp := dto.SessionResponse{Authenticated: session.IsAuthenticated()}
	if user := session.Current(); user != nil {
		u := dto.ToUserResponse(user)
		resp.User = &u
	}
	if exp := session.TokenExpiry(); exp != nil {
		resp.TokenExpiry = exp.Format(time.RFC3339)
	}
	return resp
}

func (h *sessionHandler) state(c *gin.Context) {
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

func (h *sessionHandler) refresh(c *gin.Context) {
	if _, err := h.session.RefreshUser(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

func (h *sessionHandler) updateProfile(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.session.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
