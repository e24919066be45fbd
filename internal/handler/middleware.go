package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/models"
)

const (
	callerContextKey     = "caller"
	accessUUIDContextKey = "access_uuid"
)

// AuthMiddleware verifies the bearer token and stores the caller identity in
// the request context.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			tokenVerificationsTotal.WithLabelValues("access", "failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			h.logger.Warn("Invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("access", "failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		claims, err := h.authService.VerifyAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			h.logger.Warn("Access token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("access", "failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("access", "success").Inc()
		c.Set(callerContextKey, models.Caller{ID: claims.UserID, IsAdmin: claims.IsAdmin})
		c.Set(accessUUIDContextKey, claims.ID)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after AuthMiddleware.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := callerFromContext(c)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		if !caller.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Code:    models.ErrCodeForbidden,
				Message: "Admin privileges required",
			})
			return
		}
		c.Next()
	}
}

func callerFromContext(c *gin.Context) (models.Caller, error) {
	raw, exists := c.Get(callerContextKey)
	if !exists {
		return models.Caller{}, errors.New("internal server error: caller missing in context")
	}
	caller, ok := raw.(models.Caller)
	if !ok {
		return models.Caller{}, errors.New("internal server error: invalid caller in context")
	}
	return caller, nil
}
