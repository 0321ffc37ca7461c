package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, full_name, password_hash, avatar, cover_image,
		refresh_token_hash, refresh_token_expiry_time, created_at, updated_at`

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Avatar:       m.Avatar,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.CoverImage.Valid {
		d.CoverImage = m.CoverImage.String
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.Avatar,
		&m.CoverImage,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, username, email, full_name, password_hash, avatar, cover_image, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Avatar,
		user.CoverImage,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = lower($1);`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (username = lower($1) AND $1 <> '') OR (email = $2 AND $2 <> '');`
	return scanUser(r.db.QueryRow(ctx, query, username, email))
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET full_name = $1, email = $2, avatar = $3, cover_image = NULLIF($4, ''), updated_at = $5
        WHERE user_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.FullName,
		user.Email,
		user.Avatar,
		user.CoverImage,
		time.Now(),
		user.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// UpdatePassword is a partial update: only the password hash column is touched,
// so unrelated required fields are never re-validated.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE user_id = $3;`
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `UPDATE users SET refresh_token_hash = $1, refresh_token_expiry_time = $2, updated_at = $3 WHERE user_id = $4;`
	cmdTag, err := r.db.Exec(ctx, query, refreshTokenHash, refreshTokenExpiryTime, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// RotateRefreshToken performs the compare-and-swap rotation in a single
// conditional UPDATE. Two concurrent refresh calls for the same user can both
// read the old token as valid, but only one of them can win this statement.
func (r *PgxUserRepository) RotateRefreshToken(ctx context.Context, userID string, expectedHash string, newHash string, newExpiryTime time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2, updated_at = $3
        WHERE user_id = $4 AND refresh_token_hash = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, newHash, newExpiryTime, time.Now(), userID, expectedHash)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Stored value changed (or was cleared) since the token was issued.
		return apperrors.ErrTokenReused
	}
	return nil
}

// ClearRefreshToken sets the slot to NULL, not an empty string, so a future
// comparison against an absent token can never match.
func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL, updated_at = $1 WHERE user_id = $2;`
	if _, err := r.db.Exec(ctx, query, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	// Zero rows affected is fine: logout is idempotent.
	return nil
}
