// AngelaMos | 2026
// admin.go

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/carterperez-dev/opinion-board/internal/core"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminToken rejects requests whose X-Admin-Token header does not equal
// secret. An empty secret rejects everything.
func AdminToken(secret string) func(http.Handler) http.Handler {
	want := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(AdminTokenHeader))

			if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				core.Unauthorized(w, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
