package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/models/dtos"
)

// ListEventsHandler handles GET /events
func ListEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := deps.Services.Events.ListEvents(r.Context(), page)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// GetEventHandler handles GET /events/{id}
func GetEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := deps.Services.Events.GetEvent(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, event)
	}
}

// GetEventStatsHandler handles GET /events/stats
func GetEventStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.Services.Events.GetStats(r.Context(), r.URL.Query().Get("community_id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, stats)
	}
}

// CreateEventHandler handles POST /events (multipart)
func CreateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, image, err := parseUploadForm(r, "image")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := deps.Services.Events.CreateEvent(r.Context(), fields, image)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdateEventHandler handles PUT /events/{id}
func UpdateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event dtos.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Events.UpdateEvent(r.Context(), chi.URLParam(r, "id"), event)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeleteEventHandler handles DELETE /events/{id}
func DeleteEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Events.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Event deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}
