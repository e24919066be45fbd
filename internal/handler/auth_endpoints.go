package handler

import (
	"errors"
	"net/http"
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/models"
)

// Allowed characters in a username.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	if !usernameRegex.MatchString(req.Username) {
		badRequest(c, "Username can only contain letters, numbers, underscores, and hyphens")
		return
	}

	var hasLetter, hasDigit bool
	for _, char := range req.Password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
		if hasLetter && hasDigit {
			break
		}
	}
	if !hasLetter || !hasDigit {
		badRequest(c, "Password must contain at least one letter and one digit")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.DisplayName, req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		tokenVerificationsTotal.WithLabelValues("refresh", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	refreshesTotal.Inc()
	tokenVerificationsTotal.WithLabelValues("refresh", "success").Inc()
	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) logout(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	accessUUIDRaw, exists := c.Get(accessUUIDContextKey)
	if !exists {
		h.logger.Error("Access UUID missing in context during logout")
		handleServiceError(c, errors.New("internal server error: context missing access uuid"))
		return
	}
	accessUUID, ok := accessUUIDRaw.(string)
	if !ok || accessUUID == "" {
		h.logger.Error("Invalid or empty access UUID in context during logout")
		handleServiceError(c, errors.New("internal server error: invalid access uuid in context"))
		return
	}

	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing or invalid refreshToken in request body: "+err.Error())
		return
	}

	// The refresh token only needs its jti here; revocation in Redis is what
	// actually invalidates it.
	token, _, err := new(jwt.Parser).ParseUnverified(req.RefreshToken, &models.Claims{})
	if err != nil {
		handleServiceError(c, models.ErrTokenMalformed)
		return
	}
	claims, ok := token.Claims.(*models.Claims)
	if !ok || claims.ID == "" {
		handleServiceError(c, models.ErrTokenMalformed)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), caller.ID, accessUUID, claims.ID); err != nil {
		h.logger.Error("Failed to perform logout",
			zap.Error(err),
			zap.String("userID", caller.ID.String()))
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
