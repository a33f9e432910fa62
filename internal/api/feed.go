package api

import (
	"net/http"
	"strconv"
	"strings"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/services"
)

// GetFeedHandler handles GET /feed
//
// @Summary      Aggregated feed
// @Description  Merges announcements, events, discussions, and posts into one
// @Description  chronological feed. Explicit query filters win; otherwise the
// @Description  signed-in user's stored preferences apply.
// @Tags         Feed
// @Produce      json
// @Param        page               query  int     false  "Page number"
// @Param        filter             query  string  false  "Active tab (all/announcement/event/discussion/post)"
// @Param        hidden_types       query  string  false  "Comma-separated types to hide"
// @Param        hidden_communities query  string  false  "Comma-separated communities to hide"
// @Success      200  {object}  responses.APIResponse[services.FeedPage]
// @Router       /feed [get]
func GetFeedHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		opts := services.FeedOptions{
			ActiveTab:         query.Get("filter"),
			HiddenTypes:       splitParam(query.Get("hidden_types")),
			HiddenCommunities: splitParam(query.Get("hidden_communities")),
		}
		if page, err := strconv.Atoi(query.Get("page")); err == nil {
			opts.Page = page
		}

		var user *dtos.UserProfile
		if session := auth.GetSession(r.Context()); session != nil {
			user = &session.User

			// Stored preferences fill in whatever the query left blank
			if opts.ActiveTab == "" || len(opts.HiddenTypes) == 0 && len(opts.HiddenCommunities) == 0 {
				if prefs, err := deps.Repo.Prefs.GetPrefs(r.Context(), user.ID.String()); err == nil {
					if opts.ActiveTab == "" {
						opts.ActiveTab = prefs.ActiveTab
					}
					if len(opts.HiddenTypes) == 0 {
						opts.HiddenTypes = prefs.HiddenTypes
					}
					if len(opts.HiddenCommunities) == 0 {
						opts.HiddenCommunities = prefs.HiddenCommunities
					}
				}
			}
		}

		feed, err := deps.Services.Feed.BuildFeed(r.Context(), user, opts)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, feed)
	}
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	cleaned := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}
