package api

import (
	"encoding/json"
	"net/http"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/db/repositories"
)

// GetFeedPrefsHandler handles GET /prefs/feed
func GetFeedPrefsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := auth.GetSession(r.Context())

		prefs, err := deps.Repo.Prefs.GetPrefs(r.Context(), session.User.ID.String())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load feed preferences")
			return
		}
		respondWithSuccess(w, http.StatusOK, prefs)
	}
}

// SaveFeedPrefsHandler handles PUT /prefs/feed
func SaveFeedPrefsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := auth.GetSession(r.Context())

		var prefs repositories.FeedPrefs
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Repo.Prefs.SavePrefs(r.Context(), session.User.ID.String(), &prefs); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save feed preferences")
			return
		}
		respondWithSuccess(w, http.StatusOK, &prefs)
	}
}

// DeleteFeedPrefsHandler handles DELETE /prefs/feed
func DeleteFeedPrefsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := auth.GetSession(r.Context())

		if err := deps.Repo.Prefs.DeletePrefs(r.Context(), session.User.ID.String()); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to reset feed preferences")
			return
		}

		result := map[string]string{"message": "Preferences reset"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}
