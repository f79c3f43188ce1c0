package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"kanbanTracker/internal/auth"
	"kanbanTracker/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const UserIdKey contextKey = "user_id"
const UserRoleKey contextKey = "user_role"

// Auth достаёт Bearer-токен, проверяет подпись и кладёт принципала в контекст.
// Дальше хендлеры работают только с уже аутентифицированным user_id.
func Auth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				unauthorized(w, r, "error.not_authenticated")
				return
			}

			claims, err := manager.ParseToken(token)
			if err != nil {
				logger.Warn("HTTP: Невалидный токен",
					zap.Error(err),
					zap.String("request_id", GetRequestID(r.Context())))
				unauthorized(w, r, "error.not_authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), UserIdKey, claims.UserID)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIdKey).(uuid.UUID)
	return id, ok
}

func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"error":      reason,
		"request_id": GetRequestID(r.Context()),
	})
}
