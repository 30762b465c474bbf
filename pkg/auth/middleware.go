package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/snekrasov/regcenter/pkg/utils"
)

type ContextKey string

const (
	EmployeeIDKey ContextKey = "employeeID"
	RoleKey       ContextKey = "employeeRole"
	NameKey       ContextKey = "employeeName"
)

// Middleware validates the bearer token and puts the employee identity into
// the request context.
func (s *JWTService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := s.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeIDKey, claims.EmployeeID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, NameKey, claims.Name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeID extracts the authenticated employee id from the context.
func EmployeeID(ctx context.Context) int {
	id, _ := ctx.Value(EmployeeIDKey).(int)
	return id
}

// Role extracts the authenticated employee role string from the context.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}
