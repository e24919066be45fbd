package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/huycopper/flashmind/internal/interfaces"
	"github.com/huycopper/flashmind/internal/models"
)

// Compile-time check to ensure pgRatingRepository implements RatingRepository
var _ interfaces.RatingRepository = (*pgRatingRepository)(nil)

type pgRatingRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgRatingRepository creates a new PostgreSQL-backed RatingRepository.
func NewPgRatingRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.RatingRepository {
	return &pgRatingRepository{
		db:     db,
		logger: logger.Named("PgRatingRepo"),
	}
}

// Rate upserts the (deck, user) rating and recomputes the deck aggregates
// in the same transaction. The aggregate UPDATE reads the ratings table
// after the upsert, so two concurrent raters both leave a consistent
// average behind whichever commits last.
func (r *pgRatingRepository) Rate(ctx context.Context, deckID, userID uuid.UUID, value int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin rating transaction", zap.Error(err))
		return fmt.Errorf("failed to begin rating transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	upsert := `INSERT INTO ratings (deck_id, user_id, value) VALUES ($1, $2, $3)
		ON CONFLICT (deck_id, user_id) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`
	r.logger.Debug("Executing query", zap.String("query", upsert), zap.String("deckID", deckID.String()), zap.String("userID", userID.String()), zap.Int("value", value))
	if _, err := tx.Exec(ctx, upsert, deckID, userID, value); err != nil {
		var pgErr *pgconn.PgError
		// 23503 is foreign_key_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "ratings_user_id_fkey" {
				r.logger.Warn("Attempted to rate as non-existent user", zap.String("userID", userID.String()))
				return models.ErrUserNotFound
			}
			r.logger.Warn("Attempted to rate non-existent deck", zap.String("deckID", deckID.String()))
			return models.ErrDeckNotFound
		}
		r.logger.Error("Failed to upsert rating in postgres", zap.Error(err), zap.String("deckID", deckID.String()), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	// COALESCE guards the empty set, which cannot happen right after an
	// upsert but keeps the statement total.
	recompute := `UPDATE decks SET
			average_rating = COALESCE((SELECT ROUND(AVG(value)::numeric, 1) FROM ratings WHERE deck_id = $1), 0),
			rating_count = (SELECT COUNT(*) FROM ratings WHERE deck_id = $1)
		WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", recompute), zap.String("deckID", deckID.String()))
	cmdTag, err := tx.Exec(ctx, recompute, deckID)
	if err != nil {
		r.logger.Error("Failed to recompute deck rating aggregates", zap.Error(err), zap.String("deckID", deckID.String()))
		return fmt.Errorf("failed to recompute deck rating aggregates: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Rated deck disappeared before aggregate recompute", zap.String("deckID", deckID.String()))
		return models.ErrDeckNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit rating transaction", zap.Error(err))
		return fmt.Errorf("failed to commit rating transaction: %w", err)
	}

	r.logger.Info("Rating recorded", zap.String("deckID", deckID.String()), zap.String("userID", userID.String()), zap.Int("value", value))
	return nil
}

// GetValue returns the caller's rating for a deck.
func (r *pgRatingRepository) GetValue(ctx context.Context, deckID, userID uuid.UUID) (int, error) {
	query := `SELECT value FROM ratings WHERE deck_id = $1 AND user_id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", deckID.String()), zap.String("userID", userID.String()))

	var value int
	err := r.db.QueryRow(ctx, query, deckID, userID).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, models.ErrNotFound
		}
		r.logger.Error("Failed to get rating from postgres", zap.Error(err), zap.String("deckID", deckID.String()), zap.String("userID", userID.String()))
		return 0, fmt.Errorf("failed to get rating: %w", err)
	}
	return value, nil
}
