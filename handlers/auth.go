package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s-steel/steelsitebackend/config"
	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/repository"
)

type AuthHandler struct {
	UserRepo repository.UserRepositoryInterface
	Cfg      config.Config
}

func NewAuthHandler(userRepo repository.UserRepositoryInterface, cfg config.Config) *AuthHandler {
	return &AuthHandler{UserRepo: userRepo, Cfg: cfg}
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"access_token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request payload")
		return
	}

	user, err := h.UserRepo.GetByUsername(payload.Username)
	if err != nil {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid username or password")
		return
	}

	if !user.CheckPassword(payload.Password) {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid username or password")
		return
	}

	expirationTime := time.Now().Add(time.Duration(h.Cfg.JWTExpirationHours) * time.Hour)
	claims := &jwt.RegisteredClaims{
		Subject:   fmt.Sprint(user.ID),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "steelsitebackend",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		WriteAPIError(w, http.StatusInternalServerError, CodeStorageFailure, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:     tokenString,
		Username:  user.Username,
		ExpiresAt: expirationTime,
	})
}

// CurrentUser retrieves the authenticated admin from the request context.
// This handler must be behind AuthMiddleware.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok || user == nil {
		WriteAPIError(w, http.StatusInternalServerError, CodeStorageFailure, "Could not retrieve user from context")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
