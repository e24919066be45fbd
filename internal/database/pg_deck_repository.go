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

// Compile-time check to ensure pgDeckRepository implements DeckRepository
var _ interfaces.DeckRepository = (*pgDeckRepository)(nil)

const deckColumns = `id, owner_id, owner_name, title, description, tags, is_public, is_hidden_by_admin, card_count, average_rating, rating_count, created_at, updated_at`

type pgDeckRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgDeckRepository creates a new PostgreSQL-backed DeckRepository.
func NewPgDeckRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.DeckRepository {
	return &pgDeckRepository{
		db:     db,
		logger: logger.Named("PgDeckRepo"),
	}
}

func scanDeck(row pgx.Row) (*models.Deck, error) {
	deck := &models.Deck{}
	err := row.Scan(
		&deck.ID, &deck.OwnerID, &deck.OwnerName, &deck.Title, &deck.Description,
		&deck.Tags, &deck.IsPublic, &deck.IsHiddenByAdmin,
		&deck.CardCount, &deck.AverageRating, &deck.RatingCount,
		&deck.CreatedAt, &deck.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return deck, nil
}

// Create inserts a new deck into the database.
func (r *pgDeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	query := `INSERT INTO decks (owner_id, owner_name, title, description, tags, is_public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("ownerID", deck.OwnerID.String()), zap.String("title", deck.Title))
	err := r.db.QueryRow(ctx, query, deck.OwnerID, deck.OwnerName, deck.Title, deck.Description, deck.Tags, deck.IsPublic).
		Scan(&deck.ID, &deck.CreatedAt, &deck.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 is foreign_key_violation (owner vanished mid-request)
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Attempted to create deck for non-existent owner", zap.String("ownerID", deck.OwnerID.String()))
			return models.ErrUserNotFound
		}
		r.logger.Error("Failed to create deck in postgres", zap.Error(err), zap.String("ownerID", deck.OwnerID.String()))
		return fmt.Errorf("failed to create deck in postgres: %w", err)
	}
	r.logger.Info("Deck created successfully", zap.String("deckID", deck.ID.String()), zap.String("ownerID", deck.OwnerID.String()))
	return nil
}

// GetByID retrieves a deck by its ID.
func (r *pgDeckRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))
	deck, err := scanDeck(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Deck not found by ID", zap.String("id", id.String()))
			return nil, models.ErrDeckNotFound
		}
		r.logger.Error("Failed to get deck by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get deck by id from postgres: %w", err)
	}
	return deck, nil
}

// buildDeckListQuery renders the WHERE clause for a deck listing.
//
// Rule precedence: an owner filter wins and includes admin-hidden decks so
// the owner sees the removed-by-admin state; otherwise public-only and the
// hidden exclusion apply. The search term matches title, description or any
// tag, case-insensitively.
func buildDeckListQuery(filter models.DeckFilter) (string, []interface{}) {
	query := `SELECT ` + deckColumns + ` FROM decks`
	args := []interface{}{}
	conditions := []string{}
	argID := 1

	if filter.OwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", argID))
		args = append(args, *filter.OwnerID)
		argID++
	} else {
		if filter.PublicOnly {
			conditions = append(conditions, "is_public = TRUE")
		}
		if !filter.IncludeHidden {
			conditions = append(conditions, "is_hidden_by_admin = FALSE")
		}
	}

	if search := filter.NormalizedSearch(); search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d))",
			argID, argID, argID))
		args = append(args, "%"+search+"%")
		argID++
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"
	return query, args
}

// List retrieves decks matching the filter, newest first.
func (r *pgDeckRepository) List(ctx context.Context, filter models.DeckFilter) ([]models.Deck, error) {
	query, args := buildDeckListQuery(filter)
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int("argCount", len(args)))

	decks := make([]models.Deck, 0)
	if err := pgxscan.Select(ctx, r.db, &decks, query, args...); err != nil {
		r.logger.Error("Failed to query decks from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	return decks, nil
}

// Update applies the non-nil fields of upd and returns the updated row.
func (r *pgDeckRepository) Update(ctx context.Context, id uuid.UUID, upd models.DeckUpdate) (*models.Deck, error) {
	queryBase := "UPDATE decks SET updated_at = CURRENT_TIMESTAMP"
	args := []interface{}{}
	argID := 1

	if upd.Title != nil {
		queryBase += fmt.Sprintf(", title = $%d", argID)
		args = append(args, *upd.Title)
		argID++
	}
	if upd.Description != nil {
		queryBase += fmt.Sprintf(", description = $%d", argID)
		args = append(args, *upd.Description)
		argID++
	}
	if upd.Tags != nil {
		queryBase += fmt.Sprintf(", tags = $%d", argID)
		args = append(args, upd.Tags)
		argID++
	}
	if upd.IsPublic != nil {
		queryBase += fmt.Sprintf(", is_public = $%d", argID)
		args = append(args, *upd.IsPublic)
		argID++
	}

	if len(args) == 0 {
		r.logger.Debug("Update called with no fields to update", zap.String("deckID", id.String()))
		return r.GetByID(ctx, id)
	}

	query := queryBase + fmt.Sprintf(" WHERE id = $%d RETURNING ", argID) + deckColumns
	args = append(args, id)

	r.logger.Debug("Executing update deck query", zap.String("query", query), zap.String("deckID", id.String()))
	deck, err := scanDeck(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Attempted to update non-existent deck", zap.String("deckID", id.String()))
			return nil, models.ErrDeckNotFound
		}
		r.logger.Error("Failed to update deck in postgres", zap.Error(err), zap.String("deckID", id.String()))
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}

	r.logger.Info("Deck updated successfully", zap.String("deckID", id.String()))
	return deck, nil
}

// Delete removes a deck. Cards, comments and ratings cascade.
func (r *pgDeckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM decks WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", id.String()))

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete deck from postgres", zap.Error(err), zap.String("deckID", id.String()))
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to delete non-existent deck", zap.String("deckID", id.String()))
		return models.ErrDeckNotFound
	}

	r.logger.Info("Deck deleted successfully", zap.String("deckID", id.String()))
	return nil
}

// Clone copies the source deck and all its cards into a new private deck
// owned by ownerID. Both inserts run in one transaction so a failed card
// copy never leaves a half-cloned deck behind.
func (r *pgDeckRepository) Clone(ctx context.Context, sourceID, ownerID uuid.UUID, ownerName, title string) (*models.Deck, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin clone transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to begin clone transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertDeck := `INSERT INTO decks (owner_id, owner_name, title, description, tags, is_public, card_count)
		SELECT $1, $2, $3, description, tags, FALSE, card_count
		FROM decks WHERE id = $4
		RETURNING ` + deckColumns
	r.logger.Debug("Executing query", zap.String("query", insertDeck), zap.String("sourceID", sourceID.String()), zap.String("ownerID", ownerID.String()))
	deck, err := scanDeck(tx.QueryRow(ctx, insertDeck, ownerID, ownerName, title, sourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Clone source deck not found", zap.String("sourceID", sourceID.String()))
			return nil, models.ErrDeckNotFound
		}
		r.logger.Error("Failed to clone deck row", zap.Error(err), zap.String("sourceID", sourceID.String()))
		return nil, fmt.Errorf("failed to clone deck: %w", err)
	}

	insertCards := `INSERT INTO cards (deck_id, front, back)
		SELECT $1, front, back FROM cards WHERE deck_id = $2 ORDER BY created_at ASC`
	r.logger.Debug("Executing query", zap.String("query", insertCards), zap.String("deckID", deck.ID.String()))
	cmdTag, err := tx.Exec(ctx, insertCards, deck.ID, sourceID)
	if err != nil {
		r.logger.Error("Failed to clone deck cards", zap.Error(err), zap.String("sourceID", sourceID.String()))
		return nil, fmt.Errorf("failed to clone deck cards: %w", err)
	}

	// card_count was copied from the source; reconcile with what actually
	// landed in case cards changed between the two statements.
	if int(cmdTag.RowsAffected()) != deck.CardCount {
		deck.CardCount = int(cmdTag.RowsAffected())
		if _, err := tx.Exec(ctx, `UPDATE decks SET card_count = $1 WHERE id = $2`, deck.CardCount, deck.ID); err != nil {
			r.logger.Error("Failed to reconcile cloned card count", zap.Error(err), zap.String("deckID", deck.ID.String()))
			return nil, fmt.Errorf("failed to reconcile cloned card count: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit clone transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to commit clone transaction: %w", err)
	}

	r.logger.Info("Deck cloned successfully",
		zap.String("sourceID", sourceID.String()),
		zap.String("deckID", deck.ID.String()),
		zap.String("ownerID", ownerID.String()),
		zap.Int("cardCount", deck.CardCount))
	return deck, nil
}

// SetHidden updates the is_hidden_by_admin flag for a deck.
func (r *pgDeckRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	query := `UPDATE decks SET is_hidden_by_admin = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", id.String()), zap.Bool("hidden", hidden))

	cmdTag, err := r.db.Exec(ctx, query, hidden, id)
	if err != nil {
		r.logger.Error("Failed to update deck hidden flag in postgres", zap.Error(err), zap.String("deckID", id.String()))
		return fmt.Errorf("failed to update deck hidden flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to moderate non-existent deck", zap.String("deckID", id.String()))
		return models.ErrDeckNotFound
	}

	r.logger.Info("Deck hidden flag updated", zap.String("deckID", id.String()), zap.Bool("hidden", hidden))
	return nil
}

// UpdateOwnerName fans a display-name change out to every deck of the owner.
func (r *pgDeckRepository) UpdateOwnerName(ctx context.Context, ownerID uuid.UUID, ownerName string) error {
	query := `UPDATE decks SET owner_name = $1 WHERE owner_id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("ownerID", ownerID.String()))

	cmdTag, err := r.db.Exec(ctx, query, ownerName, ownerID)
	if err != nil {
		r.logger.Error("Failed to update deck owner names in postgres", zap.Error(err), zap.String("ownerID", ownerID.String()))
		return fmt.Errorf("failed to update deck owner names: %w", err)
	}

	r.logger.Debug("Deck owner names updated", zap.String("ownerID", ownerID.String()), zap.Int64("decks", cmdTag.RowsAffected()))
	return nil
}
