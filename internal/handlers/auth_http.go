package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fc-admin/internal/auth"
	"fc-admin/internal/middleware"
	"fc-admin/internal/repository"
	"fc-admin/internal/supabase"
	"fc-admin/internal/utils"
)

type AuthHTTP struct {
	svc    *auth.Service
	admins repository.AdminRepository
	secure bool
}

// admins may be nil when no database is configured.
func NewAuthHTTP(s *auth.Service, admins repository.AdminRepository, secureCookie bool) *AuthHTTP {
	return &AuthHTTP{svc: s, admins: admins, secure: secureCookie}
}

// backendError writes the backend's own message for auth errors and a 502
// for everything else (network, decoding).
func backendError(w http.ResponseWriter, err error, authStatus int) {
	var ae *supabase.AuthError
	if errors.As(err, &ae) {
		utils.Error(w, authStatus, ae.Message)
		return
	}
	utils.Error(w, http.StatusBadGateway, "auth backend unavailable")
}

// POST /api/auth/login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := h.svc.SignInAdmin(r.Context(), in.Email, in.Password)
		if err != nil {
			backendError(w, err, http.StatusUnauthorized)
			return
		}
		if res == nil || res.Session == nil {
			utils.Error(w, http.StatusBadGateway, "auth backend returned no session")
			return
		}

		middleware.SetSessionCookie(w, res.Session, h.secure)

		var expiresAt *time.Time
		if exp := res.Session.Expiry(); !exp.IsZero() {
			expiresAt = &exp
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"user":       res.User,
			"expires_at": expiresAt,
		})
	}
}

// POST /api/auth/logout
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.svc.SignOutAdmin(r.Context())
		middleware.ClearSessionCookie(w)
		if err != nil {
			backendError(w, err, http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /api/auth/me
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := h.svc.GetCurrentUser(r.Context())
		if err != nil {
			backendError(w, err, http.StatusUnauthorized)
			return
		}
		if u == nil {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

// GET /api/admins/me
// Admin profile row of the signed-in user.
func (h *AuthHTTP) AdminProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		a, err := h.admins.GetByID(r.Context(), uid)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if a == nil {
			utils.Error(w, http.StatusNotFound, "admin not found")
			return
		}
		utils.JSON(w, http.StatusOK, a)
	}
}
