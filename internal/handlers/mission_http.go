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

type MissionHTTP struct {
	repo repository.MissionRepository
}

func NewMissionHTTP(r repository.MissionRepository) *MissionHTTP {
	return &MissionHTTP{repo: r}
}

// GET /api/missions?status=&limit=&offset=
func (h *MissionHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		status := models.MissionStatus(strings.TrimSpace(qv.Get("status")))
		if status != "" && !status.Valid() {
			utils.Error(w, http.StatusBadRequest, "unknown status "+string(status))
			return
		}
		limit := utils.QueryInt(qv, "limit", 20)
		offset := utils.QueryInt(qv, "offset", 0)

		items, total, err := h.repo.List(r.Context(), status, limit, offset)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
	}
}

// GET /api/missions/{id}
func (h *MissionHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if m == nil {
			utils.Error(w, http.StatusNotFound, "mission not found")
			return
		}
		utils.JSON(w, http.StatusOK, m)
	}
}

// POST /api/missions
func (h *MissionHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m models.Mission
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		for _, f := range []struct{ name, val string }{
			{"name", m.Name},
			{"country", m.Country},
			{"city", m.City},
			{"start_date", m.StartDate},
			{"end_date", m.EndDate},
		} {
			if strings.TrimSpace(f.val) == "" {
				utils.Error(w, http.StatusBadRequest, f.name+" is required")
				return
			}
		}
		if m.Status == "" {
			m.Status = models.MissionDraft
		}
		if !m.Status.Valid() {
			utils.Error(w, http.StatusBadRequest, "unknown status "+string(m.Status))
			return
		}
		if err := h.repo.Create(r.Context(), &m); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, m)
	}
}

// PATCH /api/missions/{id}/status
func (h *MissionHTTP) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status models.MissionStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Status.Valid() {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		m, err := h.repo.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if m == nil {
			utils.Error(w, http.StatusNotFound, "mission not found")
			return
		}
		utils.JSON(w, http.StatusOK, m)
	}
}

// GET /api/missions/{id}/users
func (h *MissionHTTP) Assignments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.repo.Assignments(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// POST /api/missions/{id}/users
func (h *MissionHTTP) Assign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}
		um, err := h.repo.Assign(r.Context(), req.UserID, chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, um)
	}
}

// DELETE /api/missions/{id}/users/{userID}
func (h *MissionHTTP) Unassign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := h.repo.Unassign(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "id"))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !ok {
			utils.Error(w, http.StatusNotFound, "assignment not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
