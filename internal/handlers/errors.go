package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/middleware"
)

// respondError translates a service error into the gateway's error
// envelope. Authorization refusals surface as not-found so the response
// does not confirm the existence of restricted resources.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Code >= 500 {
		middleware.GetLoggerFromContext(c).Error("request failed", slog.String("error", err.Error()))
	}
	c.JSON(appErr.Code, appErr)
}
