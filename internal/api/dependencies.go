package api

import (
	"context"
	"os"

	"gorm.io/gorm"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/common"
	"hckonnect/hubgate/internal/db/repositories"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/metrics"
	"hckonnect/hubgate/internal/providers"
	"hckonnect/hubgate/internal/services"
)

type Repositories struct {
	Prefs *repositories.PrefsRepository
}

type Services struct {
	Cache         common.CacheInterface
	Sessions      *common.SessionService
	Auth          *services.AuthService
	Announcements *services.AnnouncementService
	Events        *services.EventService
	Discussions   *services.DiscussionService
	Posts         *services.PostService
	Communities   *services.CommunityService
	Resources     *services.ResourceService
	Feed          *services.FeedService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Provider *providers.HubAPIProvider
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires the whole graph: cache (redis when configured,
// in-memory otherwise), sessions, the upstream provider with its 401 hook,
// and the domain services.
func InitDependencies(hubDB *gorm.DB) (*Dependencies, error) {
	metricsReg := metrics.NewMetricsRegistry()

	var cache common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		cache = common.NewRedisCacheService(common.NewRedisClient())
	} else {
		cache = common.NewCacheService(60, 120)
	}

	sessionSvc := common.NewSessionService(cache)

	provider := providers.NewHubAPIProvider(metricsReg)
	provider.OnUnauthorized = func(ctx context.Context) {
		if session := auth.GetSession(ctx); session != nil {
			sessionSvc.DeleteSession(ctx, session.SessionID)
			logging.Info("Session invalidated by upstream 401", "session_id", session.SessionID)
		}
	}

	announcementSvc := services.NewAnnouncementService(provider)
	eventSvc := services.NewEventService(provider)
	discussionSvc := services.NewDiscussionService(provider)
	postSvc := services.NewPostService(provider)

	deps := &Dependencies{
		Repo: &Repositories{
			Prefs: repositories.NewPrefsRepository(hubDB),
		},
		Services: &Services{
			Cache:         cache,
			Sessions:      sessionSvc,
			Auth:          services.NewAuthService(provider, sessionSvc),
			Announcements: announcementSvc,
			Events:        eventSvc,
			Discussions:   discussionSvc,
			Posts:         postSvc,
			Communities:   services.NewCommunityService(provider, announcementSvc, eventSvc),
			Resources:     services.NewResourceService(provider),
			Feed:          services.NewFeedService(eventSvc, announcementSvc, discussionSvc, postSvc, cache, metricsReg),
		},
		Provider: provider,
		Metrics:  metricsReg,
	}
	return deps, nil
}
