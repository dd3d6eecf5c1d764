// Package auth issues demo session tokens. There are no passwords: any
// email/name pair starts a session, matching the storefront's mocked login.
package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"electrofusion/globals"
	"electrofusion/middleware"
	"electrofusion/models"
	"electrofusion/state"
	"electrofusion/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const sessionTTL = 24 * time.Hour

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Handlers struct {
	manager *state.Manager
}

func NewHandlers(manager *state.Manager) *Handlers {
	return &Handlers{manager: manager}
}

// UserIDFor maps a login identity to the id that keys all persisted state.
func UserIDFor(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login starts a session and returns a bearer token. The user record is
// written through the state store so it survives restarts.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("Login decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || !emailRe.MatchString(strings.TrimSpace(input.Email)) {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and a valid email are required")
		return
	}

	userID := UserIDFor(input.Email)
	user := models.User{Email: userID, Name: input.Name}

	token, err := newToken(userID, user)
	if err != nil {
		log.Println("Login token error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	store := h.manager.ForUser(r.Context(), userID)
	snap := store.Dispatch(r.Context(), state.Login(user))

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  snap.User,
	}, "Login successful", nil)
}

// Logout resets the session's state and erases its persisted records.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	store := h.manager.ForUser(r.Context(), userID)
	store.Dispatch(r.Context(), state.Logout())
	h.manager.Drop(userID)

	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

func newToken(userID string, user models.User) (string, error) {
	claims := middleware.Claims{
		UserID: userID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}
