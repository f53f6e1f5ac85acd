package middleware

import (
	"context"
	"net/http"

	"fc-admin/internal/models"
	"fc-admin/internal/repository"
	"fc-admin/internal/supabase"
	"fc-admin/internal/utils"
)

// CurrentUserer is satisfied by *auth.Service.
type CurrentUserer interface {
	GetCurrentUser(ctx context.Context) (*supabase.User, error)
}

// RequireAuth asks the backend who owns the request session and blocks when
// nobody does. The user id and email are put on the context.
func RequireAuth(users CurrentUserer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := users.GetCurrentUser(r.Context())
			if err != nil && !supabase.IsAuthError(err) {
				utils.Error(w, http.StatusBadGateway, "auth backend unavailable")
				return
			}
			if u == nil || u.ID == "" {
				utils.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			ctx := context.WithValue(r.Context(), CtxUserID, u.ID)
			ctx = context.WithValue(ctx, CtxEmail, u.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin allows the request only if the user has an admin_users row.
// Must run after RequireAuth.
func RequireAdmin(admins repository.AdminRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, _ := utils.GetString(r.Context(), CtxUserID)
			a, err := admins.GetByID(r.Context(), uid)
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			if a == nil || a.Role != models.RoleAdmin {
				utils.Error(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
