package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/permissions"
)

// ListDiscussionsHandler handles GET /discussions
func ListDiscussionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := deps.Services.Discussions.ListDiscussions(r.Context(), page)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// GetDiscussionHandler handles GET /discussions/{id}
//
// The detail payload carries a can_manage flag so the page can decide
// whether to show the edit and delete controls.
func GetDiscussionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discussion, err := deps.Services.Discussions.GetDiscussion(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}

		var user *dtos.UserProfile
		if session := auth.GetSession(r.Context()); session != nil {
			user = &session.User
		}

		result := struct {
			dtos.Discussion
			CanManage bool `json:"can_manage"`
		}{
			Discussion: *discussion,
			CanManage: permissions.CanManage(user, permissions.Content{
				AuthorID:    discussion.CreatedBy.String(),
				CommunityID: discussion.Community.String(),
			}),
		}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// CreateDiscussionHandler handles POST /discussions
func CreateDiscussionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.DiscussionCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := deps.Services.Discussions.CreateDiscussion(r.Context(), req)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdateDiscussionHandler handles PATCH /discussions/{id}
func UpdateDiscussionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.DiscussionCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Discussions.UpdateDiscussion(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeleteDiscussionHandler handles DELETE /discussions/{id}
func DeleteDiscussionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Discussions.DeleteDiscussion(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Discussion deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// ListRepliesHandler handles GET /discussions/{id}/replies
func ListRepliesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := deps.Services.Discussions.ListReplies(r.Context(), chi.URLParam(r, "id"), page)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// CreateReplyHandler handles POST /discussions/replies
func CreateReplyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ReplyCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := deps.Services.Discussions.CreateReply(r.Context(), req)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdateReplyHandler handles PATCH /discussions/replies/{id}
func UpdateReplyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Discussions.UpdateReply(r.Context(), chi.URLParam(r, "id"), body.Content)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeleteReplyHandler handles DELETE /discussions/replies/{id}
func DeleteReplyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Discussions.DeleteReply(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Reply deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// ToggleDiscussionReactionHandler handles POST /discussions/reactions
func ToggleDiscussionReactionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ReactionToggle
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Discussions.ToggleReaction(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Reaction toggled"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}
