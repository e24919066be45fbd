package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// Compile-time check to ensure pgCardRepository implements CardRepository
var _ interfaces.CardRepository = (*pgCardRepository)(nil)

const cardColumns = `id, deck_id, front, back, created_at, updated_at`

type pgCardRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgCardRepository creates a new PostgreSQL-backed CardRepository.
func NewPgCardRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.CardRepository {
	return &pgCardRepository{
		db:     db,
		logger: logger.Named("PgCardRepo"),
	}
}

func scanCard(row pgx.Row) (*models.Card, error) {
	card := &models.Card{}
	err := row.Scan(&card.ID, &card.DeckID, &card.Front, &card.Back, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListByDeck retrieves all cards of a deck in creation order.
func (r *pgCardRepository) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE deck_id = $1 ORDER BY created_at ASC`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", deckID.String()))

	cards := make([]models.Card, 0)
	if err := pgxscan.Select(ctx, r.db, &cards, query, deckID); err != nil {
		r.logger.Error("Failed to query cards from postgres", zap.Error(err), zap.String("deckID", deckID.String()))
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	return cards, nil
}

// GetByID retrieves a card by its ID.
func (r *pgCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))
	card, err := scanCard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Card not found by ID", zap.String("id", id.String()))
			return nil, models.ErrCardNotFound
		}
		r.logger.Error("Failed to get card by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get card by id from postgres: %w", err)
	}
	return card, nil
}

// Create inserts a card and increments the deck's card_count in the same
// transaction.
func (r *pgCardRepository) Create(ctx context.Context, card *models.Card) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin card create transaction", zap.Error(err))
		return fmt.Errorf("failed to begin card create transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO cards (deck_id, front, back) VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", card.DeckID.String()))
	err = tx.QueryRow(ctx, query, card.DeckID, card.Front, card.Back).
		Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 is foreign_key_violation (deck vanished mid-request)
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Attempted to create card in non-existent deck", zap.String("deckID", card.DeckID.String()))
			return models.ErrDeckNotFound
		}
		r.logger.Error("Failed to create card in postgres", zap.Error(err), zap.String("deckID", card.DeckID.String()))
		return fmt.Errorf("failed to create card in postgres: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE decks SET card_count = card_count + 1, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, card.DeckID); err != nil {
		r.logger.Error("Failed to increment deck card count", zap.Error(err), zap.String("deckID", card.DeckID.String()))
		return fmt.Errorf("failed to increment deck card count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit card create transaction", zap.Error(err))
		return fmt.Errorf("failed to commit card create transaction: %w", err)
	}

	r.logger.Info("Card created successfully", zap.String("cardID", card.ID.String()), zap.String("deckID", card.DeckID.String()))
	return nil
}

// Update applies the non-nil fields of upd and returns the updated row.
func (r *pgCardRepository) Update(ctx context.Context, id uuid.UUID, upd models.CardUpdate) (*models.Card, error) {
	queryBase := "UPDATE cards SET updated_at = CURRENT_TIMESTAMP"
	args := []interface{}{}
	argID := 1

	if upd.Front != nil {
		queryBase += fmt.Sprintf(", front = $%d", argID)
		args = append(args, *upd.Front)
		argID++
	}
	if upd.Back != nil {
		queryBase += fmt.Sprintf(", back = $%d", argID)
		args = append(args, *upd.Back)
		argID++
	}

	if len(args) == 0 {
		r.logger.Debug("Update called with no fields to update", zap.String("cardID", id.String()))
		return r.GetByID(ctx, id)
	}

	query := queryBase + fmt.Sprintf(" WHERE id = $%d RETURNING ", argID) + cardColumns
	args = append(args, id)

	r.logger.Debug("Executing update card query", zap.String("query", query), zap.String("cardID", id.String()))
	card, err := scanCard(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Attempted to update non-existent card", zap.String("cardID", id.String()))
			return nil, models.ErrCardNotFound
		}
		r.logger.Error("Failed to update card in postgres", zap.Error(err), zap.String("cardID", id.String()))
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	r.logger.Info("Card updated successfully", zap.String("cardID", id.String()))
	return card, nil
}

// Delete removes a card and decrements the deck's card_count in the same
// transaction.
func (r *pgCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin card delete transaction", zap.Error(err))
		return fmt.Errorf("failed to begin card delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `DELETE FROM cards WHERE id = $1 RETURNING deck_id`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("cardID", id.String()))
	var deckID uuid.UUID
	if err := tx.QueryRow(ctx, query, id).Scan(&deckID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Attempted to delete non-existent card", zap.String("cardID", id.String()))
			return models.ErrCardNotFound
		}
		r.logger.Error("Failed to delete card from postgres", zap.Error(err), zap.String("cardID", id.String()))
		return fmt.Errorf("failed to delete card: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE decks SET card_count = GREATEST(card_count - 1, 0), updated_at = CURRENT_TIMESTAMP WHERE id = $1`, deckID); err != nil {
		r.logger.Error("Failed to decrement deck card count", zap.Error(err), zap.String("deckID", deckID.String()))
		return fmt.Errorf("failed to decrement deck card count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit card delete transaction", zap.Error(err))
		return fmt.Errorf("failed to commit card delete transaction: %w", err)
	}

	r.logger.Info("Card deleted successfully", zap.String("cardID", id.String()), zap.String("deckID", deckID.String()))
	return nil
}
