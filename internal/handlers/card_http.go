package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fc-admin/internal/models"
	"fc-admin/internal/repository"
	"fc-admin/internal/utils"

	"github.com/go-chi/chi/v5"
)

type CardHTTP struct {
	repo repository.CardRepository
}

func NewCardHTTP(r repository.CardRepository) *CardHTTP { return &CardHTTP{repo: r} }

// GET /api/missions/{id}/cards?section=&active=
func (h *CardHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		section := models.SectionType(strings.TrimSpace(qv.Get("section")))
		if section != "" && !section.Valid() {
			utils.Error(w, http.StatusBadRequest, "unknown section "+string(section))
			return
		}
		activeOnly := utils.QueryBool(qv, "active", false)

		items, err := h.repo.ListByMission(r.Context(), chi.URLParam(r, "id"), section, activeOnly)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// POST /api/missions/{id}/cards
func (h *CardHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c models.MissionCard
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		c.MissionID = chi.URLParam(r, "id")
		if c.CardType == "" {
			c.CardType = models.CardShared
		}
		if !c.SectionType.Valid() || !c.CardType.Valid() || strings.TrimSpace(c.Title) == "" {
			utils.Error(w, http.StatusBadRequest, "invalid card")
			return
		}
		if err := h.repo.Create(r.Context(), &c); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, c)
	}
}

// PATCH /api/cards/{id}/active
func (h *CardHTTP) SetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Active *bool `json:"active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		c, err := h.repo.SetActive(r.Context(), chi.URLParam(r, "id"), *req.Active)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if c == nil {
			utils.Error(w, http.StatusNotFound, "card not found")
			return
		}
		utils.JSON(w, http.StatusOK, c)
	}
}

// GET /api/cards/{id}/users
func (h *CardHTTP) UserCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.repo.UserCards(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// GET /api/cards/{id}
func (h *CardHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if c == nil {
			utils.Error(w, http.StatusNotFound, "card not found")
			return
		}
		utils.JSON(w, http.StatusOK, c)
	}
}
