// AngelaMos | 2026
// repository.go

package opinion

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/opinion-board/internal/core"
)

type Repository interface {
	Create(ctx context.Context, opinion *Opinion) error
	GetByID(ctx context.Context, id int64) (*Opinion, error)
	List(ctx context.Context) ([]Opinion, error)
	ListByUser(ctx context.Context, userID int64) ([]Opinion, error)
	IncrementVote(ctx context.Context, id int64, kind VoteKind) (*Tally, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (Stats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const opinionColumns = `id, text, votes_for, votes_neutral, votes_against,
	votes_total, user_id, username, created_at`

func (r *repository) Create(ctx context.Context, opinion *Opinion) error {
	query := r.db.Rebind(`
		INSERT INTO opinions (text, user_id, username)
		VALUES (?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &opinion.ID, query,
		opinion.Text,
		opinion.UserID,
		opinion.Username,
	)
	if err != nil {
		return fmt.Errorf("create opinion: %w", core.ClassifyError(err))
	}

	stored, err := r.GetByID(ctx, opinion.ID)
	if err != nil {
		return fmt.Errorf("create opinion: %w", err)
	}
	*opinion = *stored

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Opinion, error) {
	query := r.db.Rebind(`SELECT ` + opinionColumns + ` FROM opinions WHERE id = ?`)

	var opinion Opinion
	if err := r.db.GetContext(ctx, &opinion, query, id); err != nil {
		return nil, fmt.Errorf("get opinion: %w", core.ClassifyError(err))
	}

	return &opinion, nil
}

func (r *repository) List(ctx context.Context) ([]Opinion, error) {
	query := `SELECT ` + opinionColumns + `
		FROM opinions
		ORDER BY created_at DESC, id DESC`

	opinions := []Opinion{}
	if err := r.db.SelectContext(ctx, &opinions, query); err != nil {
		return nil, fmt.Errorf("list opinions: %w", err)
	}

	return opinions, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Opinion, error) {
	query := r.db.Rebind(`SELECT ` + opinionColumns + `
		FROM opinions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`)

	opinions := []Opinion{}
	if err := r.db.SelectContext(ctx, &opinions, query, userID); err != nil {
		return nil, fmt.Errorf("list opinions by user: %w", err)
	}

	return opinions, nil
}

// IncrementVote bumps one counter and rewrites the total in the same
// statement. The right-hand side sees the pre-update row, so the new total
// is the old sum plus one.
func (r *repository) IncrementVote(
	ctx context.Context,
	id int64,
	kind VoteKind,
) (*Tally, error) {
	column, ok := voteColumns[kind]
	if !ok {
		return nil, fmt.Errorf("increment vote %q: %w", kind, core.ErrInvalidInput)
	}

	query := r.db.Rebind(fmt.Sprintf(`
		UPDATE opinions
		SET %[1]s = %[1]s + 1,
		    votes_total = votes_for + votes_neutral + votes_against + 1
		WHERE id = ?
		RETURNING id, votes_for, votes_neutral, votes_against, votes_total`,
		column,
	))

	var tally Tally
	if err := r.db.GetContext(ctx, &tally, query, id); err != nil {
		return nil, fmt.Errorf("increment vote: %w", core.ClassifyError(err))
	}

	return &tally, nil
}

func (r *repository) UpdateText(ctx context.Context, id int64, text string) error {
	query := r.db.Rebind(`UPDATE opinions SET text = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, text, id)
	if err != nil {
		return fmt.Errorf("update opinion: %w", err)
	}

	return core.RequireRow(result, "update opinion", core.ErrNotFound)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM opinions WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete opinion: %w", err)
	}

	return core.RequireRow(result, "delete opinion", core.ErrNotFound)
}

func (r *repository) Stats(ctx context.Context) (Stats, error) {
	query := `
		SELECT COUNT(*) AS opinions,
		       CAST(COALESCE(SUM(votes_total), 0) AS BIGINT) AS votes
		FROM opinions`

	var stats Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return Stats{}, fmt.Errorf("opinion stats: %w", err)
	}

	return stats, nil
}
