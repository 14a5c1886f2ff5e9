package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/isaqueks/tasks/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// refresh helpers
	UpdateRefresh(ctx context.Context, userID, token string, expiresAt time.Time) error
	RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	ClearRefresh(ctx context.Context, userID string) error
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)

	// Telegram link
	UpdateTelegramLink(ctx context.Context, userID string, chatID int64, enable bool) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash,
	refresh_token, refresh_expires_at, refresh_revoked,
	telegram_chat_id, notify_telegram, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked,
		&u.TelegramChatID, &u.NotifyTelegram, &u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, q,
		user.ID, user.Name, user.Email, user.PasswordHash, time.Now(),
	).Scan(&user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *userRepository) UpdateRefresh(ctx context.Context, userID, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE id=$3
	`
	if _, err := r.db.ExecContext(ctx, q, token, expiresAt, userID); err != nil {
		return fmt.Errorf("update refresh: %w", err)
	}
	return nil
}

// RotateRefresh swaps the stored refresh token atomically: it only matches a
// row still holding oldToken, so a replayed old token cannot rotate twice.
func (r *userRepository) RotateRefresh(ctx context.Context, oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	q := `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE refresh_token=$3 AND NOT refresh_revoked
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, q, newToken, newExpiresAt, oldToken))
}

func (r *userRepository) ClearRefresh(ctx context.Context, userID string) error {
	const q = `
		UPDATE users
		SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=FALSE
		WHERE id=$1
	`
	if _, err := r.db.ExecContext(ctx, q, userID); err != nil {
		return fmt.Errorf("clear refresh: %w", err)
	}
	return nil
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, token))
}

func (r *userRepository) UpdateTelegramLink(ctx context.Context, userID string, chatID int64, enable bool) error {
	const q = `
		UPDATE users
		SET telegram_chat_id=$1, notify_telegram=$2
		WHERE id=$3
	`
	if _, err := r.db.ExecContext(ctx, q, chatID, enable, userID); err != nil {
		return fmt.Errorf("update telegram link: %w", err)
	}
	return nil
}
