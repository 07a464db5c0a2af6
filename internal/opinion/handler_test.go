// AngelaMos | 2026
// handler_test.go

package opinion

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/opinion-board/internal/middleware"
	"github.com/carterperez-dev/opinion-board/internal/testutil"
)

func newRouter(t *testing.T) (http.Handler, *ledger) {
	t.Helper()

	l := newLedger(t)
	h := NewHandler(l.svc)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
		h.RegisterAdminRoutes(r, middleware.AdminToken(testutil.AdminToken))
	})
	return r, l
}

func TestOpinionAPI_CreateVoteList(t *testing.T) {
	router, l := newRouter(t)
	alice := l.addUser(t, "alice")

	w := testutil.Do(t, router, http.MethodPost, "/api/opinions", map[string]any{
		"text":     "Remote work should be standard.",
		"userId":   alice,
		"username": "alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created CreatedResponse
	testutil.DecodeInto(t, w, &created)
	votePath := fmt.Sprintf("/api/opinions/%d/vote", created.OpinionID)

	w = testutil.Do(t, router, http.MethodPost, votePath, map[string]any{"type": "for"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(t, router, http.MethodPost, votePath, map[string]any{"type": "against"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var vote VoteResponse
	testutil.DecodeInto(t, w, &vote)
	assert.Equal(t, Tally{
		ID:           created.OpinionID,
		VotesFor:     1,
		VotesAgainst: 1,
		VotesTotal:   2,
	}, vote.Opinion)

	w = testutil.Do(t, router, http.MethodGet, "/api/opinions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list OpinionListResponse
	testutil.DecodeInto(t, w, &list)
	require.Len(t, list.Opinions, 1)
	assert.EqualValues(t, 2, list.Opinions[0].VotesTotal)
	assert.Equal(t, "Remote work should be standard.", list.Opinions[0].Text)

	w = testutil.Do(t, router, http.MethodGet, fmt.Sprintf("/api/opinions/user/%d", alice), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.DecodeInto(t, w, &list)
	assert.Len(t, list.Opinions, 1)
}

func TestOpinionAPI_Errors(t *testing.T) {
	router, l := newRouter(t)
	alice := l.addUser(t, "alice")

	w := testutil.Do(t, router, http.MethodPost, "/api/opinions", map[string]any{
		"text":     strings.Repeat("a", 257),
		"userId":   alice,
		"username": "alice",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, router, http.MethodGet, "/api/opinions", nil, nil)
	assert.JSONEq(t, `{"opinions":[]}`, w.Body.String())

	w = testutil.Do(t, router, http.MethodPost, "/api/opinions", map[string]any{
		"text": "no owner",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, router, http.MethodPost, "/api/opinions/1/vote", map[string]any{"type": "for"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "opinion not found", testutil.Decode(t, w)["message"])

	w = testutil.Do(t, router, http.MethodPost, "/api/opinions/1/vote", map[string]any{"type": "maybe"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, router, http.MethodPost, "/api/opinions/abc/vote", map[string]any{"type": "for"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, router, http.MethodGet, "/api/opinions/user/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpinionAPI_Admin(t *testing.T) {
	router, l := newRouter(t)
	alice := l.addUser(t, "alice")
	id, err := l.svc.CreateOpinion(t.Context(), alice, "alice", "draft")
	require.NoError(t, err)
	path := fmt.Sprintf("/api/admin/opinions/%d", id)

	w := testutil.Do(t, router, http.MethodGet, "/api/admin/opinions", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, router, http.MethodPut, path, map[string]any{"text": "final"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "draft", l.stored(t, id).Text)

	admin := testutil.AdminHeaders()

	w = testutil.Do(t, router, http.MethodGet, "/api/admin/opinions", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, router, http.MethodPut, path, map[string]any{"text": "final"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "final", l.stored(t, id).Text)

	w = testutil.Do(t, router, http.MethodPut, path, map[string]any{"text": "   "}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, router, http.MethodDelete, path, nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, router, http.MethodDelete, path, nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Do(t, router, http.MethodPut, path, map[string]any{"text": "again"}, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
