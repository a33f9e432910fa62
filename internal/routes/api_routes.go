package routes

import (
	"github.com/go-chi/chi/v5"

	"hckonnect/hubgate/internal/api"
	"hckonnect/hubgate/internal/middleware"
)

// RegisterAPIRoutes registers every page-equivalent endpoint. Auth entry
// points are public; everything content-facing requires a session, matching
// the upstream's own permission model.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	// Public account flows
	r.Post("/auth/login", api.LoginHandler(deps))
	r.Post("/auth/register", api.RegisterHandler(deps))
	r.Post("/auth/forgot-password", api.ForgotPasswordHandler(deps))
	r.Post("/auth/verify-otp", api.VerifyOTPHandler(deps))
	r.Post("/auth/reset-password", api.ResetPasswordHandler(deps))
	r.Post("/auth/logout", api.LogoutHandler(deps))

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Get("/auth/me", api.MeHandler(deps))

		protected.Get("/feed", api.GetFeedHandler(deps))
		protected.Get("/prefs/feed", api.GetFeedPrefsHandler(deps))
		protected.Put("/prefs/feed", api.SaveFeedPrefsHandler(deps))
		protected.Delete("/prefs/feed", api.DeleteFeedPrefsHandler(deps))

		protected.Route("/announcements", func(a chi.Router) {
			a.Get("/", api.ListAnnouncementsHandler(deps))
			a.Get("/stats", api.GetAnnouncementStatsHandler(deps))
			a.Post("/", api.CreateAnnouncementHandler(deps))
			a.Patch("/{id}", api.UpdateAnnouncementHandler(deps))
			a.Delete("/{id}", api.DeleteAnnouncementHandler(deps))
		})

		protected.Route("/events", func(e chi.Router) {
			e.Get("/", api.ListEventsHandler(deps))
			e.Get("/stats", api.GetEventStatsHandler(deps))
			e.Get("/{id}", api.GetEventHandler(deps))
			e.Post("/", api.CreateEventHandler(deps))
			e.Put("/{id}", api.UpdateEventHandler(deps))
			e.Delete("/{id}", api.DeleteEventHandler(deps))
		})

		protected.Route("/discussions", func(d chi.Router) {
			d.Get("/", api.ListDiscussionsHandler(deps))
			d.Post("/", api.CreateDiscussionHandler(deps))
			d.Post("/reactions", api.ToggleDiscussionReactionHandler(deps))
			d.Post("/replies", api.CreateReplyHandler(deps))
			d.Patch("/replies/{id}", api.UpdateReplyHandler(deps))
			d.Delete("/replies/{id}", api.DeleteReplyHandler(deps))
			d.Get("/{id}", api.GetDiscussionHandler(deps))
			d.Get("/{id}/replies", api.ListRepliesHandler(deps))
			d.Patch("/{id}", api.UpdateDiscussionHandler(deps))
			d.Delete("/{id}", api.DeleteDiscussionHandler(deps))
		})

		protected.Route("/posts", func(p chi.Router) {
			p.Get("/", api.ListPostsHandler(deps))
			p.Post("/", api.CreatePostHandler(deps))
			p.Post("/comments", api.CreateCommentHandler(deps))
			p.Patch("/comments/{id}", api.UpdateCommentHandler(deps))
			p.Delete("/comments/{id}", api.DeleteCommentHandler(deps))
			p.Get("/{id}", api.GetPostHandler(deps))
			p.Get("/{id}/comments", api.ListCommentsHandler(deps))
			p.Post("/{id}/react", api.TogglePostReactionHandler(deps))
			p.Patch("/{id}", api.UpdatePostHandler(deps))
			p.Delete("/{id}", api.DeletePostHandler(deps))
		})

		protected.Route("/communities", func(c chi.Router) {
			c.Get("/", api.ListCommunitiesHandler(deps))
			c.Get("/students", api.SearchStudentsHandler(deps))
			c.Post("/memberships/apply", api.ApplyMembershipHandler(deps))
			c.Get("/memberships/pending", api.PendingMembershipsHandler(deps))
			c.Patch("/memberships/{id}/approve", api.ApproveMembershipHandler(deps))
			c.Post("/members", api.AddMemberHandler(deps))
			c.Delete("/members/{id}", api.RemoveMemberHandler(deps))
			c.Post("/vacancies", api.CreateVacancyHandler(deps))
			c.Get("/{id}/dashboard", api.GetCommunityDashboardHandler(deps))
			c.Get("/{id}/members", api.ListCommunityMembersHandler(deps))
		})

		protected.Route("/resources", func(res chi.Router) {
			res.Get("/", api.ListResourcesHandler(deps))
			res.Post("/", api.UploadResourceHandler(deps))
			res.Patch("/{id}", api.UpdateResourceHandler(deps))
			res.Delete("/{id}", api.DeleteResourceHandler(deps))
		})
	})
}
