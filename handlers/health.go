package handlers

import (
	"net/http"

	"catdistribution/backend/database"
)

// Health reports whether the server and its database respond
func Health(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil || database.DB.PingContext(r.Context()) != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
