package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"catdistribution/backend/catalog"
	"catdistribution/backend/middleware"
	"catdistribution/backend/models"
	"catdistribution/backend/services"

	"github.com/gorilla/mux"
)

// GetCats returns every cat in creation order
func GetCats(w http.ResponseWriter, r *http.Request) {
	cats, err := services.ListCats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// GetCatsPage runs the stored collection through filter, sort and pagination.
// Query: search, minAge, maxAge, sort, dir, pageSize, page.
func GetCatsPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize, err := intParam(q, "pageSize", catalog.DefaultPageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page, err := intParam(q, "page", 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	minAge, err := optionalIntParam(q, "minAge")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxAge, err := optionalIntParam(q, "maxAge")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sortCfg, err := catalog.ParseSortConfig(q.Get("sort"), q.Get("dir"))
	if err != nil {
		writeError(w, err)
		return
	}

	browser := catalog.NewBrowser(catalog.DefaultPageSize)
	if err := browser.SetPageSize(pageSize); err != nil {
		writeError(w, err)
		return
	}
	if err := browser.FilterByAge(minAge, maxAge); err != nil {
		writeError(w, err)
		return
	}

	cats, err := services.ListCats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	browser.SetRecords(cats)
	browser.SetSearchTerm(q.Get("search"))
	browser.SetSort(sortCfg)
	browser.SetPage(page)

	result, err := browser.View()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetCatStatistics summarizes the whole collection
func GetCatStatistics(w http.ResponseWriter, r *http.Request) {
	cats, err := services.ListCats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Summarize(cats))
}

func GetCat(w http.ResponseWriter, r *http.Request) {
	cat, err := services.GetCat(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// GetCatByName backs update navigation, which addresses cats by name
func GetCatByName(w http.ResponseWriter, r *http.Request) {
	cat, err := services.GetCatByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// CreateCat stores a new cat owned by the calling user
func CreateCat(w http.ResponseWriter, r *http.Request) {
	var cat models.Cat
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cat.ID = ""
	cat.UserID = middleware.GetUserIDFromContext(r)

	created, err := services.CreateCat(r.Context(), cat)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func UpdateCat(w http.ResponseWriter, r *http.Request) {
	var cat models.Cat
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := services.UpdateCat(r.Context(), mux.Vars(r)["id"], cat)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func DeleteCat(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteCat(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func intParam(q url.Values, key string, fallback int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

func optionalIntParam(q url.Values, key string) (*int, error) {
	if q.Get(key) == "" {
		return nil, nil
	}
	v, err := intParam(q, key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
