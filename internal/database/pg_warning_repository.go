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

// Compile-time check to ensure pgWarningRepository implements WarningRepository
var _ interfaces.WarningRepository = (*pgWarningRepository)(nil)

const warningColumns = `id, user_id, admin_id, reason, is_dismissed, created_at`

type pgWarningRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgWarningRepository creates a new PostgreSQL-backed WarningRepository.
func NewPgWarningRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.WarningRepository {
	return &pgWarningRepository{
		db:     db,
		logger: logger.Named("PgWarningRepo"),
	}
}

// Create inserts a warning.
func (r *pgWarningRepository) Create(ctx context.Context, warning *models.Warning) error {
	query := `INSERT INTO warnings (user_id, admin_id, reason)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", warning.UserID.String()), zap.String("adminID", warning.AdminID.String()))
	err := r.db.QueryRow(ctx, query, warning.UserID, warning.AdminID, warning.Reason).
		Scan(&warning.ID, &warning.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 is foreign_key_violation (warned user deleted)
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Attempted to warn non-existent user", zap.String("userID", warning.UserID.String()))
			return models.ErrUserNotFound
		}
		r.logger.Error("Failed to create warning in postgres", zap.Error(err), zap.String("userID", warning.UserID.String()))
		return fmt.Errorf("failed to create warning in postgres: %w", err)
	}

	r.logger.Info("Warning created successfully", zap.String("warningID", warning.ID.String()), zap.String("userID", warning.UserID.String()))
	return nil
}

// ListActiveByUser retrieves the user's non-dismissed warnings, newest first.
func (r *pgWarningRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Warning, error) {
	query := `SELECT ` + warningColumns + ` FROM warnings WHERE user_id = $1 AND is_dismissed = FALSE ORDER BY created_at DESC`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", userID.String()))

	warnings := make([]models.Warning, 0)
	if err := pgxscan.Select(ctx, r.db, &warnings, query, userID); err != nil {
		r.logger.Error("Failed to query warnings from postgres", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to query warnings: %w", err)
	}
	return warnings, nil
}

// GetByID retrieves a warning by its ID.
func (r *pgWarningRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Warning, error) {
	query := `SELECT ` + warningColumns + ` FROM warnings WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))

	warning := &models.Warning{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&warning.ID, &warning.UserID, &warning.AdminID, &warning.Reason,
		&warning.IsDismissed, &warning.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Warning not found by ID", zap.String("id", id.String()))
			return nil, models.ErrWarningNotFound
		}
		r.logger.Error("Failed to get warning by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get warning by id from postgres: %w", err)
	}
	return warning, nil
}

// Dismiss marks a warning dismissed.
func (r *pgWarningRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE warnings SET is_dismissed = TRUE WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("warningID", id.String()))

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to dismiss warning in postgres", zap.Error(err), zap.String("warningID", id.String()))
		return fmt.Errorf("failed to dismiss warning: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to dismiss non-existent warning", zap.String("warningID", id.String()))
		return models.ErrWarningNotFound
	}

	r.logger.Info("Warning dismissed", zap.String("warningID", id.String()))
	return nil
}
