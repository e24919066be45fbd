package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

func (h *Handler) getMe(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) updateMe(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	upd := models.ProfileUpdate{
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
	}
	user, err := h.profileService.UpdateProfile(c.Request.Context(), caller.ID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) listMyWarnings(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	warnings := h.profileService.ListWarnings(c.Request.Context(), caller.ID)
	c.JSON(http.StatusOK, gin.H{"data": warnings})
}

func (h *Handler) dismissWarning(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	warningID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid warning ID format")
		return
	}

	if err := h.profileService.DismissWarning(c.Request.Context(), caller, warningID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Warning dismissed"})
}

func (h *Handler) suggestAnswer(c *gin.Context) {
	if _, err := callerFromContext(c); err != nil {
		handleServiceError(c, err)
		return
	}

	var req suggestAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	answer, err := h.suggestService.SuggestAnswer(c.Request.Context(), req.FrontText, req.DeckContext)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
