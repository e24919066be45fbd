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

// Compile-time check to ensure pgCommentRepository implements CommentRepository
var _ interfaces.CommentRepository = (*pgCommentRepository)(nil)

const commentColumns = `id, deck_id, user_id, user_name, content, is_hidden_by_admin, created_at`

type pgCommentRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgCommentRepository creates a new PostgreSQL-backed CommentRepository.
func NewPgCommentRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.CommentRepository {
	return &pgCommentRepository{
		db:     db,
		logger: logger.Named("PgCommentRepo"),
	}
}

// ListByDeck retrieves a deck's comments, newest first.
func (r *pgCommentRepository) ListByDeck(ctx context.Context, deckID uuid.UUID, includeHidden bool) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE deck_id = $1`
	if !includeHidden {
		query += ` AND is_hidden_by_admin = FALSE`
	}
	query += ` ORDER BY created_at DESC`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", deckID.String()), zap.Bool("includeHidden", includeHidden))

	comments := make([]models.Comment, 0)
	if err := pgxscan.Select(ctx, r.db, &comments, query, deckID); err != nil {
		r.logger.Error("Failed to query comments from postgres", zap.Error(err), zap.String("deckID", deckID.String()))
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	return comments, nil
}

// GetByID retrieves a comment by its ID.
func (r *pgCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))

	comment := &models.Comment{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.DeckID, &comment.UserID, &comment.UserName,
		&comment.Content, &comment.IsHiddenByAdmin, &comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Comment not found by ID", zap.String("id", id.String()))
			return nil, models.ErrCommentNotFound
		}
		r.logger.Error("Failed to get comment by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get comment by id from postgres: %w", err)
	}
	return comment, nil
}

// Create inserts a comment.
func (r *pgCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (deck_id, user_id, user_name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("deckID", comment.DeckID.String()), zap.String("userID", comment.UserID.String()))
	err := r.db.QueryRow(ctx, query, comment.DeckID, comment.UserID, comment.UserName, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 is foreign_key_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "comments_user_id_fkey" {
				r.logger.Warn("Attempted to comment as non-existent user", zap.String("userID", comment.UserID.String()))
				return models.ErrUserNotFound
			}
			r.logger.Warn("Attempted to comment on non-existent deck", zap.String("deckID", comment.DeckID.String()))
			return models.ErrDeckNotFound
		}
		r.logger.Error("Failed to create comment in postgres", zap.Error(err), zap.String("deckID", comment.DeckID.String()))
		return fmt.Errorf("failed to create comment in postgres: %w", err)
	}

	r.logger.Info("Comment created successfully", zap.String("commentID", comment.ID.String()), zap.String("deckID", comment.DeckID.String()))
	return nil
}

// SetHidden updates the is_hidden_by_admin flag for a comment.
func (r *pgCommentRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	query := `UPDATE comments SET is_hidden_by_admin = $1 WHERE id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("commentID", id.String()), zap.Bool("hidden", hidden))

	cmdTag, err := r.db.Exec(ctx, query, hidden, id)
	if err != nil {
		r.logger.Error("Failed to update comment hidden flag in postgres", zap.Error(err), zap.String("commentID", id.String()))
		return fmt.Errorf("failed to update comment hidden flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to moderate non-existent comment", zap.String("commentID", id.String()))
		return models.ErrCommentNotFound
	}

	r.logger.Info("Comment hidden flag updated", zap.String("commentID", id.String()), zap.Bool("hidden", hidden))
	return nil
}

// Delete removes a comment.
func (r *pgCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("commentID", id.String()))

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete comment from postgres", zap.Error(err), zap.String("commentID", id.String()))
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to delete non-existent comment", zap.String("commentID", id.String()))
		return models.ErrCommentNotFound
	}

	r.logger.Info("Comment deleted successfully", zap.String("commentID", id.String()))
	return nil
}

// UpdateUserName fans a display-name change out to every comment the user
// authored.
func (r *pgCommentRepository) UpdateUserName(ctx context.Context, userID uuid.UUID, userName string) error {
	query := `UPDATE comments SET user_name = $1 WHERE user_id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", userID.String()))

	cmdTag, err := r.db.Exec(ctx, query, userName, userID)
	if err != nil {
		r.logger.Error("Failed to update comment user names in postgres", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to update comment user names: %w", err)
	}

	r.logger.Debug("Comment user names updated", zap.String("userID", userID.String()), zap.Int64("comments", cmdTag.RowsAffected()))
	return nil
}
