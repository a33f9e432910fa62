package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"hckonnect/hubgate/internal/common"
	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/metrics"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/permissions"
)

// The aggregator only needs the list calls, so the sources are narrow
// interfaces rather than the full services.
type EventSource interface {
	ListEvents(ctx context.Context, page int) (*dtos.Paginated[dtos.Event], error)
}

type AnnouncementSource interface {
	ListAnnouncements(ctx context.Context, page int, communityID string) (*dtos.Paginated[dtos.Announcement], error)
}

type DiscussionSource interface {
	ListDiscussions(ctx context.Context, page int) (*dtos.Paginated[dtos.Discussion], error)
}

type PostSource interface {
	ListPosts(ctx context.Context, page int) (*dtos.Paginated[dtos.Post], error)
}

// FeedOptions are the per-request filter knobs.
type FeedOptions struct {
	Page              int
	ActiveTab         string
	HiddenTypes       []string
	HiddenCommunities []string
}

// FeedPage is the filtered, sorted result of one feed build.
type FeedPage struct {
	Items []dtos.FeedItem `json:"items"`
	Page  int             `json:"page"`
}

const feedCacheTTL = 30 * time.Second

// FeedService fans out to the four content sources and merges the results
// into the single chronological feed the home page renders.
type FeedService struct {
	events        EventSource
	announcements AnnouncementSource
	discussions   DiscussionSource
	posts         PostSource
	cache         common.CacheInterface
	metrics       *metrics.MetricsRegistry
}

// NewFeedService creates a new feed service
func NewFeedService(
	events EventSource,
	announcements AnnouncementSource,
	discussions DiscussionSource,
	posts PostSource,
	cache common.CacheInterface,
	reg *metrics.MetricsRegistry,
) *FeedService {
	return &FeedService{
		events:        events,
		announcements: announcements,
		discussions:   discussions,
		posts:         posts,
		cache:         cache,
		metrics:       reg,
	}
}

// BuildFeed fetches the four sources concurrently, normalizes, sorts, and
// filters. A failed source contributes nothing and logs a warning; the feed
// never fails outright as long as the build itself can run. The user is only
// used to annotate each item with its manageability.
func (s *FeedService) BuildFeed(ctx context.Context, user *dtos.UserProfile, opts FeedOptions) (*FeedPage, error) {
	start := time.Now()
	page := pageOrFirst(opts.Page)

	items, err := s.rawItems(ctx, page)
	if err != nil {
		return nil, err
	}

	// Sort before filtering so pagination cuts are stable across filter
	// changes
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	items = applyFilters(items, opts)

	for i := range items {
		items[i].CanManage = permissions.CanManage(user, permissions.Content{
			AuthorID:    items[i].AuthorID,
			CommunityID: items[i].Community.ID,
		})
	}

	if s.metrics != nil {
		s.metrics.FeedBuildsTotal.Inc()
		s.metrics.FeedBuildDuration.Observe(time.Since(start).Seconds())
	}

	return &FeedPage{Items: items, Page: page}, nil
}

// rawItems returns the normalized, unfiltered item set for one page, cached
// briefly since every user shares the same upstream content.
func (s *FeedService) rawItems(ctx context.Context, page int) ([]dtos.FeedItem, error) {
	cacheKey := fmt.Sprintf("%spage_%d", constants.CachePrefixFeed, page)

	if s.cache != nil {
		if val, found := s.cache.Get(cacheKey); found {
			if raw, ok := val.(string); ok {
				var cached []dtos.FeedItem
				if err := json.Unmarshal([]byte(raw), &cached); err == nil {
					s.recordCache(true)
					return cached, nil
				}
			}
		}
		s.recordCache(false)
	}

	items, err := s.fetchAll(ctx, page)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			s.cache.Set(cacheKey, string(data), feedCacheTTL)
		}
	}
	return items, nil
}

func (s *FeedService) fetchAll(ctx context.Context, page int) ([]dtos.FeedItem, error) {
	now := time.Now()

	var (
		events        []dtos.Event
		announcements []dtos.Announcement
		discussions   []dtos.Discussion
		posts         []dtos.Post
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.events.ListEvents(gctx, page)
		if err != nil {
			logging.Warn("Feed source unavailable", "source", constants.FeedTypeEvent, "error", err)
			return nil
		}
		events = result.Results
		return nil
	})

	g.Go(func() error {
		result, err := s.announcements.ListAnnouncements(gctx, page, "")
		if err != nil {
			logging.Warn("Feed source unavailable", "source", constants.FeedTypeAnnouncement, "error", err)
			return nil
		}
		announcements = result.Results
		return nil
	})

	g.Go(func() error {
		result, err := s.discussions.ListDiscussions(gctx, page)
		if err != nil {
			logging.Warn("Feed source unavailable", "source", constants.FeedTypeDiscussion, "error", err)
			return nil
		}
		discussions = result.Results
		return nil
	})

	g.Go(func() error {
		result, err := s.posts.ListPosts(gctx, page)
		if err != nil {
			logging.Warn("Feed source unavailable", "source", constants.FeedTypePost, "error", err)
			return nil
		}
		posts = result.Results
		return nil
	})

	// Sources swallow their own errors, so Wait only fails on ctx
	// cancellation
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dtos.FeedItem, 0, len(events)+len(announcements)+len(discussions)+len(posts))
	for _, e := range events {
		items = append(items, normalizeEvent(e, now))
	}
	for _, a := range announcements {
		items = append(items, normalizeAnnouncement(a, now))
	}
	for _, d := range discussions {
		items = append(items, normalizeDiscussion(d, now))
	}
	for _, p := range posts {
		items = append(items, normalizePost(p, now))
	}
	return items, nil
}

func (s *FeedService) recordCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixFeed)).Inc()
	} else {
		s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixFeed)).Inc()
	}
}

// applyFilters runs the three filters in their fixed order: hidden types,
// hidden communities, then the active tab.
func applyFilters(items []dtos.FeedItem, opts FeedOptions) []dtos.FeedItem {
	hiddenTypes := toSet(opts.HiddenTypes)
	hiddenCommunities := toSet(opts.HiddenCommunities)

	filtered := make([]dtos.FeedItem, 0, len(items))
	for _, item := range items {
		if _, hidden := hiddenTypes[string(item.Type)]; hidden {
			continue
		}
		if _, hidden := hiddenCommunities[item.Community.ID]; hidden {
			continue
		}
		if _, hidden := hiddenCommunities[item.Community.Name]; hidden {
			continue
		}
		if opts.ActiveTab != "" && opts.ActiveTab != constants.FeedFilterAll && string(item.Type) != opts.ActiveTab {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func normalizeEvent(e dtos.Event, now time.Time) dtos.FeedItem {
	return dtos.FeedItem{
		ID:          e.ID.String(),
		Type:        constants.FeedTypeEvent,
		Title:       e.Title,
		Description: e.Description,
		Community: dtos.CommunityRef{
			ID:           e.Community.String(),
			Name:         e.CommunityName,
			LogoInitials: logoInitials(e.CommunityName),
		},
		AuthorID:  e.CreatedBy.String(),
		CreatedAt: parseCreatedAt(e.CreatedAt, now),
	}
}

func normalizeAnnouncement(a dtos.Announcement, now time.Time) dtos.FeedItem {
	return dtos.FeedItem{
		ID:          a.ID.String(),
		Type:        constants.FeedTypeAnnouncement,
		Title:       a.Title,
		Description: a.Description,
		Community: dtos.CommunityRef{
			ID:           a.Community.String(),
			Name:         a.CommunityName,
			LogoInitials: logoInitials(a.CommunityName),
		},
		Author:    a.UploadedBy,
		AuthorID:  a.CreatedByUser.String(),
		CreatedAt: parseCreatedAt(a.CreatedAt, now),
	}
}

func normalizeDiscussion(d dtos.Discussion, now time.Time) dtos.FeedItem {
	return dtos.FeedItem{
		ID:          d.ID.String(),
		Type:        constants.FeedTypeDiscussion,
		Title:       d.Topic,
		Description: d.Content,
		Community: dtos.CommunityRef{
			ID:           d.Community.String(),
			Name:         d.CommunityName,
			LogoInitials: logoInitials(d.CommunityName),
		},
		Author:    d.CreatedByName,
		AuthorID:  d.CreatedBy.String(),
		Likes:     d.ReactionCount,
		Comments:  d.ReplyCount,
		CreatedAt: parseCreatedAt(d.CreatedAt, now),
	}
}

func normalizePost(p dtos.Post, now time.Time) dtos.FeedItem {
	return dtos.FeedItem{
		ID:          p.ID.String(),
		Type:        constants.FeedTypePost,
		Description: p.Content,
		Community: dtos.CommunityRef{
			ID:           p.Community.String(),
			Name:         p.CommunityName,
			LogoInitials: logoInitials(p.CommunityName),
		},
		Author:    p.UserName,
		AuthorID:  p.User.String(),
		Likes:     p.LikeCount,
		Comments:  p.CommentCount,
		CreatedAt: parseCreatedAt(p.CreatedAt, now),
	}
}

// logoInitials builds the two-letter avatar text from the first letters of
// the first two words of the community name.
func logoInitials(name string) string {
	words := strings.Fields(name)
	initials := ""
	for i, word := range words {
		if i == 2 {
			break
		}
		initials += strings.ToUpper(word[:1])
	}
	return initials
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseCreatedAt tries the timestamp layouts the upstream has been seen to
// emit. Anything unparseable gets the build time, which floats the item to
// the top of the feed rather than burying or dropping it.
func parseCreatedAt(raw string, fallback time.Time) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}
