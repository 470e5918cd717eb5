package handlers

import (
	"encoding/json"
	"net/http"

	"catdistribution/backend/models"
	"catdistribution/backend/services"

	"github.com/gorilla/mux"
)

func GetOperationLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := services.ListOperationLogs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// AddOperationLog records an action for the user named in the path
func AddOperationLog(w http.ResponseWriter, r *http.Request) {
	var entry models.OperationLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := services.AddOperationLog(r.Context(), mux.Vars(r)["userId"], entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
