package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func idFromPath(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) adminListUsers(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	users, err := h.moderationService.ListUsers(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (h *Handler) adminSetUserLock(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	userID, ok := idFromPath(c, "user")
	if !ok {
		return
	}

	var req setLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.moderationService.SetUserLock(c.Request.Context(), caller, userID, *req.Locked); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locked": *req.Locked})
}

func (h *Handler) adminIssueWarning(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	userID, ok := idFromPath(c, "user")
	if !ok {
		return
	}

	var req issueWarningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	warning, err := h.moderationService.IssueWarning(c.Request.Context(), caller, userID, req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, warning)
}

func (h *Handler) adminListDecks(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	decks, err := h.moderationService.ListAllDecks(c.Request.Context(), caller, c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": decks})
}

func (h *Handler) adminSetDeckHidden(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := idFromPath(c, "deck")
	if !ok {
		return
	}

	var req setHiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.moderationService.SetDeckHidden(c.Request.Context(), caller, deckID, *req.Hidden); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hidden": *req.Hidden})
}

func (h *Handler) adminListDeckComments(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := idFromPath(c, "deck")
	if !ok {
		return
	}

	comments, err := h.moderationService.ListDeckComments(c.Request.Context(), caller, deckID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comments})
}

func (h *Handler) adminSetCommentHidden(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	commentID, ok := idFromPath(c, "comment")
	if !ok {
		return
	}

	var req setHiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.moderationService.SetCommentHidden(c.Request.Context(), caller, commentID, *req.Hidden); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hidden": *req.Hidden})
}

func (h *Handler) adminDeleteComment(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	commentID, ok := idFromPath(c, "comment")
	if !ok {
		return
	}

	if err := h.moderationService.DeleteComment(c.Request.Context(), caller, commentID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
