package handlers

import (
	"net/http"

	"fc-admin/internal/utils"
)

// Health reports liveness and whether the data routes are mounted.
func Health(dataRoutes bool) http.HandlerFunc {
	db := "disabled"
	if dataRoutes {
		db = "enabled"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": db})
	}
}
