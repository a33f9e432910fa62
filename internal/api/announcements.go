package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
	"hckonnect/hubgate/internal/services"
)

// ListAnnouncementsHandler handles GET /announcements
//
// @Summary      List announcements
// @Tags         Announcements
// @Produce      json
// @Param        page          query  int     false  "Page number"
// @Param        community_id  query  string  false  "Scope to one community"
// @Router       /announcements [get]
func ListAnnouncementsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := deps.Services.Announcements.ListAnnouncements(r.Context(), page, r.URL.Query().Get("community_id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// GetAnnouncementStatsHandler handles GET /announcements/stats
func GetAnnouncementStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.Services.Announcements.GetStats(r.Context(), r.URL.Query().Get("community_id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, stats)
	}
}

// CreateAnnouncementHandler handles POST /announcements (multipart)
func CreateAnnouncementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, image, err := parseUploadForm(r, "image")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := deps.Services.Announcements.CreateAnnouncement(r.Context(), fields, image)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdateAnnouncementHandler handles PATCH /announcements/{id}
func UpdateAnnouncementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update dtos.AnnouncementUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Announcements.UpdateAnnouncement(r.Context(), chi.URLParam(r, "id"), update)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeleteAnnouncementHandler handles DELETE /announcements/{id}
func DeleteAnnouncementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Announcements.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Announcement deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// parseUploadForm pulls the string fields and an optional file part out of a
// multipart form. The returned FilePart streams straight from the request;
// callers must use it before the handler returns.
func parseUploadForm(r *http.Request, fileField string) (map[string]string, *providers.FilePart, error) {
	if err := r.ParseMultipartForm(services.MaxUploadSize); err != nil {
		return nil, nil, err
	}

	fields := make(map[string]string)
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	file, header, err := r.FormFile(fileField)
	if err != nil {
		// Field absent; form-only submit
		return fields, nil, nil
	}

	return fields, &providers.FilePart{
		Field:  fileField,
		Name:   header.Filename,
		Reader: file,
	}, nil
}
