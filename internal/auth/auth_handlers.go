package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"flowdeck-api/internal/httpx"
	"flowdeck-api/models"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type AuthHandlers struct {
	loginService *LoginService
	tokenService *TokenService
	logger       *log.Logger
}

func NewAuthHandlers(loginService *LoginService, tokenService *TokenService, logger *log.Logger) *AuthHandlers {
	return &AuthHandlers{loginService: loginService, tokenService: tokenService, logger: logger}
}

// LoginHandler handles POST /Auth
func (h *AuthHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.loginService.Authenticate(r.Context(), creds.Username, creds.Password)
	if err != nil {
		// Any credential failure on this route is a 401, including blank
		// username/password in an otherwise well-formed body.
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) || errors.Is(err, models.ErrInvalidCredentials) {
			h.logger.Printf("authentication failed for username %q: %v", creds.Username, err)
			httpx.RespondErrorMessage(w, http.StatusUnauthorized, err.Error())
			return
		}
		httpx.RespondError(w, h.logger, err, "error during authentication")
		return
	}

	tokenString, err := h.tokenService.GenerateToken(user.ID, user.Username)
	if err != nil {
		h.logger.Printf("failed to generate token for user %q: %v", user.Username, err)
		httpx.RespondErrorMessage(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.logger.Printf("user %q authenticated", user.Username)
	httpx.RespondJSON(w, http.StatusOK, LoginResponse{Token: tokenString})
}
