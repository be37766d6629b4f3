package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s-steel/steelsitebackend/config"
	"github.com/s-steel/steelsitebackend/repository"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// UserContextKey is the key used to store the user object in the request context.
	UserContextKey ContextKey = "user"
)

// bearerToken extracts the JWT from the Authorization header, falling back to
// the token query parameter so websocket clients can authenticate too.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// AuthMiddleware creates a middleware handler for JWT authentication.
// It verifies the token and, if valid, fetches the admin user and adds them
// to the request context.
func AuthMiddleware(userRepo repository.UserRepositoryInterface, cfg config.Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Authorization required")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid token")
			return
		}

		var userID uint
		if _, err := fmt.Sscan(claims.Subject, &userID); err != nil {
			WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid user ID in token")
			return
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			// the user may have been deleted after the token was issued
			WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
