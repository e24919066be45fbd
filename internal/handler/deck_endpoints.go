package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/models"
)

func deckIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	return idFromPath(c, "deck")
}

func (h *Handler) listDecks(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	mine := c.Query("mine") == "true"
	search := c.Query("search")

	decks, err := h.deckService.ListDecks(c.Request.Context(), caller, mine, search)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": decks})
}

func (h *Handler) createDeck(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var req createDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	deck, err := h.deckService.CreateDeck(c.Request.Context(), caller, req.Title, req.Description, req.Tags, req.IsPublic)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deck)
}

func (h *Handler) getDeck(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	deck, err := h.deckService.GetDeck(c.Request.Context(), caller, deckID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deck)
}

func (h *Handler) updateDeck(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	var req updateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	upd := models.DeckUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	}
	deck, err := h.deckService.UpdateDeck(c.Request.Context(), caller, deckID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deck)
}

func (h *Handler) deleteDeck(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	if err := h.deckService.DeleteDeck(c.Request.Context(), caller, deckID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) cloneDeck(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	deckID, ok := deckIDFromPath(c)
	if !ok {
		return
	}

	clone, err := h.deckService.CloneDeck(c.Request.Context(), caller, deckID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	decksClonedTotal.Inc()
	h.logger.Info("Deck cloned via API",
		zap.String("sourceID", deckID.String()),
		zap.String("cloneID", clone.ID.String()))
	c.JSON(http.StatusCreated, clone)
}
