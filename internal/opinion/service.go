// AngelaMos | 2026
// service.go

package opinion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/opinion-board/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NormalizeText trims text and checks it holds 1 to MaxTextLength
// characters.
func NormalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", core.ValidationError("opinion text is required")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", core.ValidationError(
			fmt.Sprintf("opinion text must be at most %d characters", MaxTextLength),
		)
	}
	return text, nil
}

func (s *Service) CreateOpinion(
	ctx context.Context,
	userID int64,
	username, text string,
) (int64, error) {
	text, err := NormalizeText(text)
	if err != nil {
		return 0, err
	}

	opinion := &Opinion{
		Text:     text,
		UserID:   &userID,
		Username: &username,
	}

	if err := s.repo.Create(ctx, opinion); err != nil {
		if errors.Is(err, core.ErrForeignKey) {
			return 0, core.ValidationError("user does not exist")
		}
		return 0, err
	}

	return opinion.ID, nil
}

func (s *Service) ListOpinions(ctx context.Context) ([]Opinion, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListOpinionsByUser(
	ctx context.Context,
	userID int64,
) ([]Opinion, error) {
	return s.repo.ListByUser(ctx, userID)
}

// CastVote rejects an unknown kind before any statement runs, so a bad
// vote never changes a counter.
func (s *Service) CastVote(
	ctx context.Context,
	opinionID int64,
	kind string,
) (*Tally, error) {
	vote := VoteKind(kind)
	if !vote.Valid() {
		return nil, core.ValidationError(
			"vote type must be one of: for, neutral, against",
		)
	}

	tally, err := s.repo.IncrementVote(ctx, opinionID, vote)
	if err != nil {
		return nil, err
	}

	core.AddSpanEvent(ctx, "opinion.vote",
		attribute.Int64("opinion.id", opinionID),
		attribute.String("vote.kind", kind),
		attribute.Int64("votes.total", tally.VotesTotal),
	)

	return tally, nil
}

func (s *Service) UpdateOpinionText(
	ctx context.Context,
	opinionID int64,
	text string,
) error {
	text, err := NormalizeText(text)
	if err != nil {
		return err
	}

	return s.repo.UpdateText(ctx, opinionID, text)
}

func (s *Service) DeleteOpinion(ctx context.Context, opinionID int64) error {
	return s.repo.Delete(ctx, opinionID)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
