// AngelaMos | 2026
// testutil.go

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/opinion-board/internal/config"
	"github.com/carterperez-dev/opinion-board/internal/core"
)

const AdminToken = "test-admin-token"

// NewDatabase opens a migrated SQLite database in a per-test directory.
func NewDatabase(t *testing.T) *core.Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := core.NewDatabase(context.Background(), config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))

	return db
}

// Do sends a JSON request through h and returns the recorded response.
func Do(
	t *testing.T,
	h http.Handler,
	method, path string,
	body any,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// AdminHeaders returns the header set accepted by the admin gateway in tests.
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": AdminToken}
}

// Decode unmarshals the recorded body into a map for loose assertions.
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// DecodeInto unmarshals the recorded body into v.
func DecodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
