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

// Compile-time check to ensure pgUserRepository implements UserRepository
var _ interfaces.UserRepository = (*pgUserRepository)(nil)

const userColumns = `id, username, display_name, email, password_hash, is_admin, is_locked, profile_picture, bio, created_at, updated_at`

type pgUserRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgUserRepository creates a new PostgreSQL-backed UserRepository.
func NewPgUserRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.UserRepository {
	return &pgUserRepository{
		db:     db,
		logger: logger.Named("PgUserRepo"),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.Email, &user.PasswordHash,
		&user.IsAdmin, &user.IsLocked, &user.ProfilePicture, &user.Bio,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user into the database.
func (r *pgUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, display_name, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("username", user.Username), zap.String("email", user.Email))
	err := r.db.QueryRow(ctx, query, user.Username, user.DisplayName, user.Email, user.PasswordHash, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation (duplicate username or email)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_email_key":
				r.logger.Warn("Attempted to create duplicate user by email", zap.String("email", user.Email))
				return models.ErrEmailAlreadyExists
			default:
				r.logger.Warn("Attempted to create duplicate user by username", zap.String("username", user.Username), zap.String("constraint", pgErr.ConstraintName))
				return models.ErrUserAlreadyExists
			}
		}
		r.logger.Error("Failed to create user in postgres", zap.Error(err), zap.String("username", user.Username))
		return fmt.Errorf("failed to create user in postgres: %w", err)
	}
	r.logger.Info("User created successfully", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return nil
}

// GetByID retrieves a user by their ID.
func (r *pgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("User not found by ID", zap.String("id", id.String()))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by id from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get user by id from postgres: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by their username.
func (r *pgUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("username", username))
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("User not found by username", zap.String("username", username))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by username from postgres", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username from postgres: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by their email.
func (r *pgUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("email", email))
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("User not found by email", zap.String("email", email))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by email from postgres", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email from postgres: %w", err)
	}
	return user, nil
}

// List retrieves all users, newest first.
// TODO: Add pagination (LIMIT, OFFSET)
func (r *pgUserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	r.logger.Debug("Executing query", zap.String("query", query))
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query users from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Username, &user.DisplayName, &user.Email, &user.PasswordHash,
			&user.IsAdmin, &user.IsLocked, &user.ProfilePicture, &user.Bio,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating user rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// SetLocked updates the is_locked status for a user.
func (r *pgUserRepository) SetLocked(ctx context.Context, id uuid.UUID, locked bool) error {
	query := `UPDATE users SET is_locked = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", id.String()), zap.Bool("locked", locked))

	cmdTag, err := r.db.Exec(ctx, query, locked, id)
	if err != nil {
		r.logger.Error("Failed to update user lock status in postgres", zap.Error(err), zap.String("userID", id.String()))
		return fmt.Errorf("failed to update user lock status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to update lock status for non-existent user", zap.String("userID", id.String()))
		return models.ErrUserNotFound
	}

	r.logger.Info("User lock status updated successfully", zap.String("userID", id.String()), zap.Bool("locked", locked))
	return nil
}

// UpdateProfile applies the non-nil fields of upd and returns the updated row.
func (r *pgUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	queryBase := "UPDATE users SET updated_at = CURRENT_TIMESTAMP"
	args := []interface{}{}
	argID := 1

	if upd.DisplayName != nil {
		queryBase += fmt.Sprintf(", display_name = $%d", argID)
		args = append(args, *upd.DisplayName)
		argID++
	}
	if upd.Bio != nil {
		queryBase += fmt.Sprintf(", bio = $%d", argID)
		args = append(args, *upd.Bio)
		argID++
	}
	if upd.ProfilePicture != nil {
		queryBase += fmt.Sprintf(", profile_picture = $%d", argID)
		args = append(args, *upd.ProfilePicture)
		argID++
	}

	if len(args) == 0 {
		r.logger.Debug("UpdateProfile called with no fields to update", zap.String("userID", id.String()))
		return r.GetByID(ctx, id)
	}

	query := queryBase + fmt.Sprintf(" WHERE id = $%d RETURNING ", argID) + userColumns
	args = append(args, id)

	r.logger.Debug("Executing update profile query", zap.String("query", query), zap.String("userID", id.String()))
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Attempted to update profile of non-existent user", zap.String("userID", id.String()))
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to update user profile in postgres", zap.Error(err), zap.String("userID", id.String()))
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	r.logger.Info("User profile updated successfully", zap.String("userID", id.String()))
	return user, nil
}
