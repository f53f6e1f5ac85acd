package handlers

import (
	"net/http"

	"fc-admin/internal/theme"
	"fc-admin/internal/utils"
)

// GET /api/theme[?key=primary.DEFAULT]
func Theme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if key := r.URL.Query().Get("key"); key != "" {
			hex, ok := theme.Lookup(key)
			if !ok {
				utils.Error(w, http.StatusNotFound, "unknown color "+key)
				return
			}
			utils.JSON(w, http.StatusOK, map[string]string{"key": key, "value": hex})
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"colors":  theme.Flatten(),
			"content": theme.ContentGlobs(),
		})
	}
}
