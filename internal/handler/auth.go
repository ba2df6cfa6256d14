package handler

import (
	"encoding/json"
	"net/http"
)

// TokenIssuer выпускает JWT токен для пользователя
type TokenIssuer interface {
	Login(userID string) (string, error)
}

// AuthHandler обрабатывает эндпоинты аутентификации
type AuthHandler struct {
	authService TokenIssuer
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest представляет тело запроса на логин
type LoginRequest struct {
	UserID string `json:"user_id"`
}

// LoginResponse представляет тело ответа на логин
type LoginResponse struct {
	Token string `json:"token"`
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondBadRequest(w, r, "invalid request body")
		return
	}

	if req.UserID == "" {
		RespondBadRequest(w, r, "user_id is required")
		return
	}

	token, err := h.authService.Login(req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
