// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/opinion-board/internal/config"
	"github.com/carterperez-dev/opinion-board/internal/middleware"
	"github.com/carterperez-dev/opinion-board/internal/opinion"
	"github.com/carterperez-dev/opinion-board/internal/testutil"
	"github.com/carterperez-dev/opinion-board/internal/user"
)

func TestSystemStats(t *testing.T) {
	db := testutil.NewDatabase(t)
	ctx := context.Background()

	users := user.NewService(user.NewRepository(db.DB))
	opinions := opinion.NewService(opinion.NewRepository(db.DB))

	u, err := users.CreateUser(ctx, user.CreateUserRequest{
		Email: "a@x.com", Username: "alice", Password: "secret1",
	})
	require.NoError(t, err)

	id, err := opinions.CreateOpinion(ctx, u.ID, u.Username, "Tabs over spaces.")
	require.NoError(t, err)
	for _, kind := range []string{"for", "for", "neutral"} {
		_, err := opinions.CastVote(ctx, id, kind)
		require.NoError(t, err)
	}

	h := NewHandler(HandlerConfig{
		Driver:       config.DriverSQLite,
		DBStats:      db.Stats,
		DBPing:       db.Ping,
		CountUsers:   users.CountUsers,
		OpinionStats: opinions.Stats,
	})

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r, middleware.AdminToken(testutil.AdminToken))
	})

	w := testutil.Do(t, r, http.MethodGet, "/api/admin/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/stats", nil, testutil.AdminHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var stats SystemStatsResponse
	testutil.DecodeInto(t, w, &stats)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalOpinions)
	assert.EqualValues(t, 3, stats.TotalVotes)
	assert.True(t, stats.Database.Healthy)
	assert.Equal(t, "sqlite", stats.Database.Driver)
	assert.NotEmpty(t, stats.Runtime.GoVersion)

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/stats/runtime", nil, testutil.AdminHeaders())
	assert.Equal(t, http.StatusOK, w.Code)
}
