package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/providers"
	"hckonnect/hubgate/internal/services"
)

// ListResourcesHandler handles GET /resources
func ListResourcesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := deps.Services.Resources.ListResources(r.Context(), r.URL.Query().Get("community_id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &resources)
	}
}

// UploadResourceHandler handles POST /resources (multipart). The 15 MB
// ceiling is enforced by the resource service before the upstream sees a
// byte, so the form parse here runs with a matching memory bound.
func UploadResourceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(services.MaxUploadSize); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		fields := make(map[string]string)
		for key, values := range r.MultipartForm.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}

		var filePart *providers.FilePart
		var size int64
		if file, header, err := r.FormFile("file"); err == nil {
			filePart = &providers.FilePart{Field: "file", Name: header.Filename, Reader: file}
			size = header.Size
		}

		created, err := deps.Services.Resources.UploadResource(r.Context(), fields, filePart, size)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdateResourceHandler handles PATCH /resources/{id}
func UpdateResourceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Resources.UpdateResource(r.Context(), chi.URLParam(r, "id"), fields)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeleteResourceHandler handles DELETE /resources/{id}
func DeleteResourceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Resources.DeleteResource(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Resource deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}
