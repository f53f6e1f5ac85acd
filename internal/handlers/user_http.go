package handlers

import (
	"net/http"

	"fc-admin/internal/repository"
	"fc-admin/internal/utils"

	"github.com/go-chi/chi/v5"
)

type UserHTTP struct {
	repo  repository.AppUserRepository
	cards repository.CardRepository
}

func NewUserHTTP(r repository.AppUserRepository, cards repository.CardRepository) *UserHTTP {
	return &UserHTTP{repo: r, cards: cards}
}

// GET /api/users?q=&limit=&offset=
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		limit := utils.QueryInt(qv, "limit", 20)
		offset := utils.QueryInt(qv, "offset", 0)

		users, total, err := h.repo.List(r.Context(), qv.Get("q"), limit, offset)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": users, "total": total})
	}
}

// GET /api/users/{id}
func (h *UserHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if u == nil {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

// GET /api/users/{id}/cards
func (h *UserHTTP) Cards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.cards.UserCardsForUser(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}
