// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/opinion-board/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetResetToken(ctx context.Context, id int64, tokenHash string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, id int64, tokenHash, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, username, password, age, state, profession,
	reset_token, reset_token_expires, created_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := r.db.Rebind(`
		INSERT INTO users (email, username, password, age, state, profession)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &user.ID, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.Age,
		user.State,
		user.Profession,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", core.ClassifyError(err))
	}

	stored, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	*user = *stored

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)

	var user User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, fmt.Errorf("get user: %w", core.ClassifyError(err))
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ?`)

	var user User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, fmt.Errorf("get user by email: %w", core.ClassifyError(err))
	}

	return &user, nil
}

func (r *repository) GetByResetTokenHash(
	ctx context.Context,
	tokenHash string,
) (*User, error) {
	query := r.db.Rebind(
		`SELECT ` + userColumns + ` FROM users WHERE reset_token = ?`)

	var user User
	if err := r.db.GetContext(ctx, &user, query, tokenHash); err != nil {
		return nil, fmt.Errorf("get user by reset token: %w", core.ClassifyError(err))
	}

	return &user, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := r.db.Rebind(`
		UPDATE users
		SET email = ?, username = ?, password = ?, age = ?, state = ?, profession = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.Age,
		user.State,
		user.Profession,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", core.ClassifyError(err))
	}

	return core.RequireRow(result, "update user", core.ErrNotFound)
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordHash string,
) error {
	query := r.db.Rebind(`UPDATE users SET password = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return core.RequireRow(result, "update password", core.ErrNotFound)
}

func (r *repository) SetResetToken(
	ctx context.Context,
	id int64,
	tokenHash string,
	expiresAt time.Time,
) error {
	query := r.db.Rebind(`
		UPDATE users
		SET reset_token = ?, reset_token_expires = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, tokenHash, expiresAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}

	return core.RequireRow(result, "set reset token", core.ErrNotFound)
}

// ConsumeResetToken swaps the password and clears both token columns, but
// only while the row still holds tokenHash. A second caller with the same
// token matches no row and gets ErrTokenInvalid.
func (r *repository) ConsumeResetToken(
	ctx context.Context,
	id int64,
	tokenHash, passwordHash string,
) error {
	query := r.db.Rebind(`
		UPDATE users
		SET password = ?, reset_token = NULL, reset_token_expires = NULL
		WHERE id = ? AND reset_token = ?`)

	result, err := r.db.ExecContext(ctx, query, passwordHash, id, tokenHash)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}

	return core.RequireRow(result, "consume reset token", core.ErrTokenInvalid)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM users WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return core.RequireRow(result, "delete user", core.ErrNotFound)
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, id DESC`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return total, nil
}
