package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huycopper/flashmind/internal/models"
)

func (h *Handler) listComments(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), caller, deckID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comments})
}

func (h *Handler) addComment(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), caller, deckID, req.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) rateDeck(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	var req rateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	deck, err := h.ratingService.RateDeck(c.Request.Context(), caller, deckID, req.Value)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ratingsSubmittedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"averageRating": deck.AverageRating,
		"ratingCount":   deck.RatingCount,
		"myValue":       req.Value,
	})
}

func (h *Handler) getMyRating(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	value, err := h.ratingService.GetMyRating(c.Request.Context(), caller, deckID)
	if err != nil {
		// No rating yet is an empty answer, not an error.
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"value": nil})
			return
		}
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}
