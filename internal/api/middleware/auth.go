package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/inboxd/internal/api/apierr"
)

// AdminKey creates middleware that requires a bearer key matching the
// bcrypt hash. An empty hash disables the check.
//
// bcrypt is slow on purpose, so the SHA-256 of the last accepted key is
// remembered and later requests presenting the same key skip the compare.
// Rejected keys are never cached and always pay the full bcrypt cost.
func AdminKey(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if keyHash == "" {
			return next
		}
		hash := []byte(keyHash)
		var accepted atomic.Pointer[[sha256.Size]byte]

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := extractKey(r)
			if key == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			sum := sha256.Sum256([]byte(key))
			if known := accepted.Load(); known == nil || subtle.ConstantTimeCompare(known[:], sum[:]) != 1 {
				if bcrypt.CompareHashAndPassword(hash, []byte(key)) != nil {
					apierr.WriteError(w, apierr.NewUnauthorizedError())
					return
				}
				accepted.Store(&sum)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractKey extracts the admin key from the Authorization header
func extractKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
