package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"catdistribution/backend/middleware"
	"catdistribution/backend/models"
	"catdistribution/backend/services"
)

func GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := services.GetUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// SyncUser creates or refreshes the calling user's profile. The ID always
// comes from the verified token, never from the body.
func SyncUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		http.Error(w, "Unauthorized: No user ID found", http.StatusUnauthorized)
		return
	}

	var profile models.User
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	profile.ID = userID
	if email := middleware.GetUserEmailFromContext(r); email != "" {
		profile.Email = email
	}
	if profile.Username == "" {
		profile.Username, _, _ = strings.Cut(profile.Email, "@")
	}
	if profile.Username == "" {
		profile.Username = userID
	}

	user, err := services.UpsertUser(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
