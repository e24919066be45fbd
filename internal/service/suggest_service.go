package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/ai"
	"github.com/huycopper/flashmind/internal/models"
)

const suggestSystemPrompt = "You are an expert study assistant creating flashcards. " +
	"Provide a concise, accurate, and clear answer or definition for the back of a flashcard. " +
	"Keep it under 30 words if possible. Do not add conversational filler."

const maxFrontTextLength = 1000

// SuggestService produces AI answer suggestions for card backs.
//
//go:generate mockery --name SuggestService --output ./mocks --outpkg mocks --case=underscore
type SuggestService interface {
	// SuggestAnswer returns a suggested back text for the given card front.
	// deckContext (usually the deck title) steers the model; it may be
	// empty.
	SuggestAnswer(ctx context.Context, frontText, deckContext string) (string, error)
}

// Compile-time check to ensure suggestServiceImpl implements SuggestService
var _ SuggestService = (*suggestServiceImpl)(nil)

type suggestServiceImpl struct {
	client ai.Client
	logger *zap.Logger
}

// NewSuggestService creates a new instance of suggestServiceImpl.
func NewSuggestService(client ai.Client, logger *zap.Logger) SuggestService {
	return &suggestServiceImpl{
		client: client,
		logger: logger.Named("SuggestService"),
	}
}

func (s *suggestServiceImpl) SuggestAnswer(ctx context.Context, frontText, deckContext string) (string, error) {
	frontText = strings.TrimSpace(frontText)
	if frontText == "" || len(frontText) > maxFrontTextLength {
		return "", fmt.Errorf("%w: front text must be between 1 and %d characters", models.ErrValidation, maxFrontTextLength)
	}

	userInput := fmt.Sprintf("Term/Question: %q", frontText)
	if deckContext = strings.TrimSpace(deckContext); deckContext != "" {
		userInput = fmt.Sprintf("Context: %s\n%s", deckContext, userInput)
	}

	answer, err := s.client.GenerateText(ctx, suggestSystemPrompt, userInput)
	if err != nil {
		s.logger.Warn("Answer suggestion failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrSuggestionFailed, err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", models.ErrSuggestionFailed
	}

	s.logger.Debug("Answer suggested", zap.Int("frontLength", len(frontText)), zap.Int("answerLength", len(answer)))
	return answer, nil
}
