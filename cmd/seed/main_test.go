// AngelaMos | 2026
// main_test.go

package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/opinion-board/internal/auth"
	"github.com/carterperez-dev/opinion-board/internal/opinion"
	"github.com/carterperez-dev/opinion-board/internal/testutil"
	"github.com/carterperez-dev/opinion-board/internal/user"
)

func TestSeed_Idempotent(t *testing.T) {
	db := testutil.NewDatabase(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := user.NewService(user.NewRepository(db.DB))
	opinions := opinion.NewService(opinion.NewRepository(db.DB))
	authSvc := auth.NewService(users, auth.Options{})

	require.NoError(t, seed(ctx, logger, users, authSvc, opinions))
	require.NoError(t, seed(ctx, logger, users, authSvc, opinions))

	tester, err := authSvc.Authenticate(ctx, testerEmail, testerPassword)
	require.NoError(t, err)
	assert.Equal(t, testerUsername, tester.Username)

	list, err := opinions.ListOpinionsByUser(ctx, tester.ID)
	require.NoError(t, err)
	require.Len(t, list, len(samples))

	stats, err := opinions.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4+5+1, stats.Votes)

	for _, o := range list {
		assert.Equal(t, o.VotesFor+o.VotesNeutral+o.VotesAgainst, o.VotesTotal)
	}
}
