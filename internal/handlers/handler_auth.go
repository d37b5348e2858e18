package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
	"github.com/insanmekan/journal_management_app/internal/middleware"
)

// authHandler handles session establishment and account lifecycle.
type authHandler struct {
	session portssvc.SessionSvcFacade
}

func newAuthHandler(session portssvc.SessionSvcFacade) *authHandler {
	return &authHandler{session: session}
}

// registerAuthRoutes registers the auth endpoints. loginLimiter guards the
// credential-accepting routes.
func registerAuthRoutes(rg *gin.RouterGroup, session portssvc.SessionSvcFacade, loginLimiter gin.HandlerFunc) {
	h := newAuthHandler(session)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
		auth.POST("/google", loginLimiter, h.googleLogin)
		auth.POST("/token-login", loginLimiter, h.tokenLogin)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login rejected", slog.String("email", req.Email))
		respondError(c, err)
		return
	}

	logger.Info("operator logged in", slog.Int("user_id", user.ID))
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if _, err := h.session.LoginWithGoogle(c.Request.Context(), req.Credential); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

func (h *authHandler) tokenLogin(c *gin.Context) {
	var req dto.TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if _, err := h.session.LoginWithToken(c.Request.Context(), req.Token, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.session.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *authHandler) logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.session.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reset link sent if the account exists"})
}

func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.session.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}
