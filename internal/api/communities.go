package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/models/dtos"
)

// ListCommunitiesHandler handles GET /communities
func ListCommunitiesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		communities, err := deps.Services.Communities.ListCommunities(r.Context())
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &communities)
	}
}

// GetCommunityDashboardHandler handles GET /communities/{id}/dashboard
//
// @Summary      Community dashboard
// @Description  One call replacing the five the dashboard page used to make:
// @Description  community detail, both stats blocks, recent announcements,
// @Description  and upcoming events.
// @Tags         Communities
// @Produce      json
// @Router       /communities/{id}/dashboard [get]
func GetCommunityDashboardHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := deps.Services.Communities.GetDashboard(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, dashboard)
	}
}

// ListCommunityMembersHandler handles GET /communities/{id}/members
func ListCommunityMembersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := deps.Services.Communities.ListMembers(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &members)
	}
}

// SearchStudentsHandler handles GET /communities/students
func SearchStudentsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := deps.Services.Communities.SearchStudents(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &students)
	}
}

// ApplyMembershipHandler handles POST /communities/memberships/apply
func ApplyMembershipHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.MembershipApply
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Communities.ApplyMembership(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Application submitted"}
		respondWithSuccess(w, http.StatusCreated, &result)
	}
}

// PendingMembershipsHandler handles GET /communities/memberships/pending
func PendingMembershipsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := deps.Services.Communities.PendingMemberships(r.Context())
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &pending)
	}
}

// ApproveMembershipHandler handles PATCH /communities/memberships/{id}/approve
func ApproveMembershipHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Role string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Communities.ApproveMembership(r.Context(), chi.URLParam(r, "id"), body.Role); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Membership approved"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// AddMemberHandler handles POST /communities/members
func AddMemberHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.MemberAdd
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Communities.AddMember(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Member added"}
		respondWithSuccess(w, http.StatusCreated, &result)
	}
}

// RemoveMemberHandler handles DELETE /communities/members/{id}
func RemoveMemberHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Services.Communities.RemoveMember(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Member removed"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// CreateVacancyHandler handles POST /communities/vacancies
func CreateVacancyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vacancy dtos.Vacancy
		if err := json.NewDecoder(r.Body).Decode(&vacancy); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := deps.Services.Communities.CreateVacancy(r.Context(), vacancy)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, created)
	}
}
