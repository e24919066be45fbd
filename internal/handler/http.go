package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/config"
	"github.com/huycopper/flashmind/internal/service"
)

// Handler wires the HTTP surface to the service layer.
type Handler struct {
	authService       service.AuthService
	deckService       service.DeckService
	ratingService     service.RatingService
	commentService    service.CommentService
	profileService    service.ProfileService
	moderationService service.ModerationService
	suggestService    service.SuggestService
	cfg               *config.Config
	logger            *zap.Logger
}

func NewHandler(
	authService service.AuthService,
	deckService service.DeckService,
	ratingService service.RatingService,
	commentService service.CommentService,
	profileService service.ProfileService,
	moderationService service.ModerationService,
	suggestService service.SuggestService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		deckService:       deckService,
		ratingService:     ratingService,
		commentService:    commentService,
		profileService:    profileService,
		moderationService: moderationService,
		suggestService:    suggestService,
		cfg:               cfg,
		logger:            logger.Named("Handler"),
	}
}

// RegisterRoutes attaches all routes to the router. authLimiter is applied to
// the credential endpoints only; pass nil to run without rate limiting.
func (h *Handler) RegisterRoutes(router *gin.Engine, authLimiter gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := router.Group("/auth")
	if authLimiter != nil {
		authGroup.Use(authLimiter)
	}
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/refresh", h.refresh)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
	}

	api := router.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/me", h.getMe)
		api.PATCH("/me", h.updateMe)
		api.GET("/me/warnings", h.listMyWarnings)
		api.POST("/me/warnings/:id/dismiss", h.dismissWarning)

		api.GET("/decks", h.listDecks)
		api.POST("/decks", h.createDeck)
		api.GET("/decks/:id", h.getDeck)
		api.PATCH("/decks/:id", h.updateDeck)
		api.DELETE("/decks/:id", h.deleteDeck)
		api.POST("/decks/:id/clone", h.cloneDeck)

		api.GET("/decks/:id/cards", h.listCards)
		api.POST("/decks/:id/cards", h.addCard)
		api.PATCH("/cards/:id", h.updateCard)
		api.DELETE("/cards/:id", h.deleteCard)

		api.GET("/decks/:id/comments", h.listComments)
		api.POST("/decks/:id/comments", h.addComment)

		api.GET("/decks/:id/rating", h.getMyRating)
		api.POST("/decks/:id/rating", h.rateDeck)

		api.POST("/ai/suggest-answer", h.suggestAnswer)
	}

	admin := router.Group("/api/admin")
	admin.Use(h.AuthMiddleware(), h.RequireAdmin())
	{
		admin.GET("/users", h.adminListUsers)
		admin.POST("/users/:id/lock", h.adminSetUserLock)
		admin.POST("/users/:id/warnings", h.adminIssueWarning)
		admin.GET("/decks", h.adminListDecks)
		admin.POST("/decks/:id/hidden", h.adminSetDeckHidden)
		admin.GET("/decks/:id/comments", h.adminListDeckComments)
		admin.POST("/comments/:id/hidden", h.adminSetCommentHidden)
		admin.DELETE("/comments/:id", h.adminDeleteComment)
	}
}
