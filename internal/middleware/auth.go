package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/aidar/team-dao/internal/service"
)

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

// UserIDKey ключ контекста для ID пользователя
const UserIDKey ContextKey = "user_id"

// TokenValidator проверяет JWT токен
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	var body errorBody
	body.Error.Code = "UNAUTHORIZED"
	body.Error.Message = message

	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, body)
}

// AuthMiddleware создает middleware для валидации JWT токенов.
// ID пользователя из токена становится идентичностью вызывающего.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, r, "missing authorization header")
				return
			}

			// Проверяем формат Bearer
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, r, "invalid authorization header format")
				return
			}

			// Валидируем токен
			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				unauthorized(w, r, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// WithUserID добавляет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserIDFromContext извлекает ID пользователя из контекста
func GetUserIDFromContext(ctx context.Context) string {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
