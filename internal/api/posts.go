package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/permissions"
)

// ListPostsHandler handles GET /posts
func ListPostsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := deps.Services.Posts.ListPosts(r.Context(), page)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// GetPostHandler handles GET /posts/{id}
func GetPostHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := deps.Services.Posts.GetPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}

		var user *dtos.UserProfile
		if session := auth.GetSession(r.Context()); session != nil {
			user = &session.User
		}

		result := struct {
			dtos.Post
			CanManage bool `json:"can_manage"`
		}{
			Post: *post,
			CanManage: permissions.CanManage(user, permissions.Content{
				AuthorID:    post.User.String(),
				CommunityID: post.Community.String(),
			}),
		}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// CreatePostHandler handles POST /posts; multipart only when an image is
// attached, plain JSON otherwise.
func CreatePostHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			fields, image, err := parseUploadForm(r, "image")
			if err != nil {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}

			created, err := deps.Services.Posts.CreatePost(r.Context(), fields["content"], image)
			if err != nil {
				respondWithAPIError(w, err)
				return
			}
			respondWithSuccess(w, http.StatusCreated, created)
			return
		}

		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := deps.Services.Posts.CreatePost(r.Context(), body.Content, nil)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdatePostHandler handles PATCH /posts/{id}
func UpdatePostHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update dtos.PostUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Posts.UpdatePost(r.Context(), chi.URLParam(r, "id"), update)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeletePostHandler handles DELETE /posts/{id}
func DeletePostHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Posts.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Post deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// TogglePostReactionHandler handles POST /posts/{id}/react
func TogglePostReactionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Posts.ToggleReaction(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Reaction toggled"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// ListCommentsHandler handles GET /posts/{id}/comments
func ListCommentsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := deps.Services.Posts.ListComments(r.Context(), chi.URLParam(r, "id"), page)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// CreateCommentHandler handles POST /posts/comments
func CreateCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CommentCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := deps.Services.Posts.CreateComment(r.Context(), req)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}

// UpdateCommentHandler handles PATCH /posts/comments/{id}
func UpdateCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := deps.Services.Posts.UpdateComment(r.Context(), chi.URLParam(r, "id"), body.Content)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, updated)
	}
}

// DeleteCommentHandler handles DELETE /posts/comments/{id}
func DeleteCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Posts.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Comment deleted"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}
