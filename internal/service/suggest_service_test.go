package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	aimocks "github.com/huycopper/flashmind/internal/ai/mocks"
	"github.com/huycopper/flashmind/internal/models"
)

func TestSuggestService_SuggestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := aimocks.NewMockClient(t)
		svc := NewSuggestService(client, zap.NewNop())

		client.On("GenerateText", ctx, mock.AnythingOfType("string"), "Context: Biology 101\nTerm/Question: \"mitochondria\"").
			Return("The organelle that produces ATP.", nil).Once()

		answer, err := svc.SuggestAnswer(ctx, "mitochondria", "Biology 101")
		require.NoError(t, err)
		assert.Equal(t, "The organelle that produces ATP.", answer)
	})

	t.Run("NoDeckContextOmitsContextLine", func(t *testing.T) {
		client := aimocks.NewMockClient(t)
		svc := NewSuggestService(client, zap.NewNop())

		client.On("GenerateText", ctx, mock.AnythingOfType("string"), "Term/Question: \"photosynthesis\"").
			Return("Conversion of light into chemical energy.", nil).Once()

		_, err := svc.SuggestAnswer(ctx, "photosynthesis", "   ")
		assert.NoError(t, err)
	})

	t.Run("EmptyFrontRejected", func(t *testing.T) {
		client := aimocks.NewMockClient(t)
		svc := NewSuggestService(client, zap.NewNop())

		_, err := svc.SuggestAnswer(ctx, "   ", "")
		assert.ErrorIs(t, err, models.ErrValidation)
		client.AssertNotCalled(t, "GenerateText")
	})

	t.Run("OverlongFrontRejected", func(t *testing.T) {
		client := aimocks.NewMockClient(t)
		svc := NewSuggestService(client, zap.NewNop())

		_, err := svc.SuggestAnswer(ctx, strings.Repeat("x", maxFrontTextLength+1), "")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("ProviderErrorWrapped", func(t *testing.T) {
		client := aimocks.NewMockClient(t)
		svc := NewSuggestService(client, zap.NewNop())

		client.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return("", errors.New("upstream timeout")).Once()

		_, err := svc.SuggestAnswer(ctx, "mitochondria", "")
		assert.ErrorIs(t, err, models.ErrSuggestionFailed)
	})

	t.Run("BlankAnswerIsAFailure", func(t *testing.T) {
		client := aimocks.NewMockClient(t)
		svc := NewSuggestService(client, zap.NewNop())

		client.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return("   ", nil).Once()

		_, err := svc.SuggestAnswer(ctx, "mitochondria", "")
		assert.ErrorIs(t, err, models.ErrSuggestionFailed)
	})
}
