// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/carterperez-dev/opinion-board/internal/auth"
	"github.com/carterperez-dev/opinion-board/internal/config"
	"github.com/carterperez-dev/opinion-board/internal/core"
	"github.com/carterperez-dev/opinion-board/internal/opinion"
	"github.com/carterperez-dev/opinion-board/internal/user"
)

const (
	testerEmail    = "tester@example.com"
	testerUsername = "tester"
	testerPassword = "password"
)

type sample struct {
	text     string
	votesFor int
	neutral  int
	against  int
}

var samples = []sample{
	{text: "Remote work should be standard.", votesFor: 3, neutral: 1},
	{text: "Public transport should be cheaper.", votesFor: 2, neutral: 2, against: 1},
	{text: "Schools need more project work.", votesFor: 1},
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	users := user.NewService(user.NewRepository(db.DB))
	opinions := opinion.NewService(opinion.NewRepository(db.DB))
	authSvc := auth.NewService(users, auth.Options{})

	return seed(ctx, slog.Default(), users, authSvc, opinions)
}

// seed ensures the tester account exists and, when it has no opinions yet,
// posts the samples and casts their votes one by one.
func seed(
	ctx context.Context,
	logger *slog.Logger,
	users *user.Service,
	authSvc *auth.Service,
	opinions *opinion.Service,
) error {
	userID, err := authSvc.Register(ctx, auth.RegisterRequest{
		Email:           testerEmail,
		Username:        testerUsername,
		Password:        testerPassword,
		ConfirmPassword: testerPassword,
	})
	switch {
	case errors.Is(err, core.ErrDuplicateKey):
		existing, lookupErr := users.GetByEmail(ctx, testerEmail)
		if lookupErr != nil {
			return fmt.Errorf("find tester: %w", lookupErr)
		}
		userID = existing.ID
		logger.Info("tester account already present", "user_id", userID)
	case err != nil:
		return fmt.Errorf("register tester: %w", err)
	default:
		logger.Info("tester account created", "user_id", userID)
	}

	existing, err := opinions.ListOpinionsByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("sample opinions already present", "count", len(existing))
		return nil
	}

	for _, s := range samples {
		id, err := opinions.CreateOpinion(ctx, userID, testerUsername, s.text)
		if err != nil {
			return fmt.Errorf("create sample opinion: %w", err)
		}

		if err := castVotes(ctx, opinions, id, opinion.VoteFor, s.votesFor); err != nil {
			return err
		}
		if err := castVotes(ctx, opinions, id, opinion.VoteNeutral, s.neutral); err != nil {
			return err
		}
		if err := castVotes(ctx, opinions, id, opinion.VoteAgainst, s.against); err != nil {
			return err
		}

		logger.Info("sample opinion inserted", "opinion_id", id)
	}

	logger.Info("seed finished")
	return nil
}

func castVotes(
	ctx context.Context,
	opinions *opinion.Service,
	id int64,
	kind opinion.VoteKind,
	n int,
) error {
	for range n {
		if _, err := opinions.CastVote(ctx, id, string(kind)); err != nil {
			return fmt.Errorf("cast %s vote: %w", kind, err)
		}
	}
	return nil
}
