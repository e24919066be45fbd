package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

func cardIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	return idFromPath(c, "card")
}

func (h *Handler) listCards(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	cards, err := h.deckService.ListCards(c.Request.Context(), caller, deckID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

func (h *Handler) addCard(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	card, err := h.deckService.AddCard(c.Request.Context(), caller, deckID, req.Front, req.Back)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *Handler) updateCard(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	cardID, ok := cardIDFromPath(c)
	if !ok {
		return
	}

	var req updateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	card, err := h.deckService.UpdateCard(c.Request.Context(), caller, cardID, models.CardUpdate{Front: req.Front, Back: req.Back})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) deleteCard(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	cardID, ok := cardIDFromPath(c)
	if !ok {
		return
	}

	if err := h.deckService.DeleteCard(c.Request.Context(), caller, cardID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
