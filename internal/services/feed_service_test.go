package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hckonnect/hubgate/internal/common"
	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/models/dtos"
)

type mockEventSource struct {
	listFunc func(ctx context.Context, page int) (*dtos.Paginated[dtos.Event], error)
}

func (m *mockEventSource) ListEvents(ctx context.Context, page int) (*dtos.Paginated[dtos.Event], error) {
	return m.listFunc(ctx, page)
}

type mockAnnouncementSource struct {
	listFunc func(ctx context.Context, page int, communityID string) (*dtos.Paginated[dtos.Announcement], error)
}

func (m *mockAnnouncementSource) ListAnnouncements(ctx context.Context, page int, communityID string) (*dtos.Paginated[dtos.Announcement], error) {
	return m.listFunc(ctx, page, communityID)
}

type mockDiscussionSource struct {
	listFunc func(ctx context.Context, page int) (*dtos.Paginated[dtos.Discussion], error)
}

func (m *mockDiscussionSource) ListDiscussions(ctx context.Context, page int) (*dtos.Paginated[dtos.Discussion], error) {
	return m.listFunc(ctx, page)
}

type mockPostSource struct {
	listFunc func(ctx context.Context, page int) (*dtos.Paginated[dtos.Post], error)
}

func (m *mockPostSource) ListPosts(ctx context.Context, page int) (*dtos.Paginated[dtos.Post], error) {
	return m.listFunc(ctx, page)
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// newTestFeedService wires a feed service over mock sources with no cache.
func newTestFeedService(
	events []dtos.Event, eventsErr error,
	announcements []dtos.Announcement, announcementsErr error,
	discussions []dtos.Discussion, discussionsErr error,
	posts []dtos.Post, postsErr error,
) *FeedService {
	return NewFeedService(
		&mockEventSource{listFunc: func(ctx context.Context, page int) (*dtos.Paginated[dtos.Event], error) {
			if eventsErr != nil {
				return nil, eventsErr
			}
			return &dtos.Paginated[dtos.Event]{Results: events}, nil
		}},
		&mockAnnouncementSource{listFunc: func(ctx context.Context, page int, communityID string) (*dtos.Paginated[dtos.Announcement], error) {
			if announcementsErr != nil {
				return nil, announcementsErr
			}
			return &dtos.Paginated[dtos.Announcement]{Results: announcements}, nil
		}},
		&mockDiscussionSource{listFunc: func(ctx context.Context, page int) (*dtos.Paginated[dtos.Discussion], error) {
			if discussionsErr != nil {
				return nil, discussionsErr
			}
			return &dtos.Paginated[dtos.Discussion]{Results: discussions}, nil
		}},
		&mockPostSource{listFunc: func(ctx context.Context, page int) (*dtos.Paginated[dtos.Post], error) {
			if postsErr != nil {
				return nil, postsErr
			}
			return &dtos.Paginated[dtos.Post]{Results: posts}, nil
		}},
		nil,
		nil,
	)
}

func TestBuildFeed_MergesAndSortsDescending(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []dtos.Event{
		{ID: "e1", Title: "Hack Night", Community: "12", CommunityName: "Devcorps", CreatedAt: stamp(base.Add(-2 * time.Hour))},
	}
	announcements := []dtos.Announcement{
		{ID: "a1", Title: "Schedule change", Community: "12", CommunityName: "Devcorps", CreatedAt: stamp(base.Add(-1 * time.Hour))},
	}
	discussions := []dtos.Discussion{
		{ID: "d1", Topic: "AI on campus", Community: "44", CommunityName: "IOT Innovators", CreatedAt: stamp(base.Add(-3 * time.Hour))},
	}
	posts := []dtos.Post{
		{ID: "p1", Content: "Highlights", User: "9", CreatedAt: stamp(base)},
	}

	svc := newTestFeedService(events, nil, announcements, nil, discussions, nil, posts, nil)
	feed, err := svc.BuildFeed(context.Background(), nil, FeedOptions{})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}

	if len(feed.Items) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(feed.Items))
	}

	expectedOrder := []string{"p1", "a1", "e1", "d1"}
	for i, id := range expectedOrder {
		if feed.Items[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, feed.Items[i].ID)
		}
	}

	for i := 1; i < len(feed.Items); i++ {
		if feed.Items[i].CreatedAt.After(feed.Items[i-1].CreatedAt) {
			t.Errorf("Feed not sorted descending at position %d", i)
		}
	}
}

func TestBuildFeed_FailedSourceDegradesToEmpty(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := []dtos.Post{
		{ID: "p1", Content: "Still here", User: "9", CreatedAt: stamp(base)},
	}

	svc := newTestFeedService(
		nil, errors.New("events down"),
		nil, errors.New("announcements down"),
		nil, errors.New("discussions down"),
		posts, nil,
	)

	feed, err := svc.BuildFeed(context.Background(), nil, FeedOptions{})
	if err != nil {
		t.Fatalf("Expected degraded feed, got error: %v", err)
	}
	if len(feed.Items) != 1 || feed.Items[0].ID != "p1" {
		t.Errorf("Expected surviving post only, got %+v", feed.Items)
	}
}

func TestBuildFeed_UnparseableTimestampSortsFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	announcements := []dtos.Announcement{
		{ID: "a-good", Title: "Dated", CreatedAt: stamp(base)},
		{ID: "a-bad", Title: "Undated", CreatedAt: "three days ago"},
	}

	svc := newTestFeedService(nil, nil, announcements, nil, nil, nil, nil, nil)
	feed, err := svc.BuildFeed(context.Background(), nil, FeedOptions{})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}

	if feed.Items[0].ID != "a-bad" {
		t.Errorf("Expected unparseable timestamp at top of feed, got %s", feed.Items[0].ID)
	}
}

func TestBuildFeed_HiddenTypesFilter(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []dtos.Event{{ID: "e1", CreatedAt: stamp(base)}}
	posts := []dtos.Post{{ID: "p1", CreatedAt: stamp(base)}}

	svc := newTestFeedService(events, nil, nil, nil, nil, nil, posts, nil)
	feed, err := svc.BuildFeed(context.Background(), nil, FeedOptions{
		HiddenTypes: []string{string(constants.FeedTypeEvent)},
	})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}

	if len(feed.Items) != 1 || feed.Items[0].ID != "p1" {
		t.Errorf("Expected events hidden, got %+v", feed.Items)
	}
}

func TestBuildFeed_HiddenCommunitiesFilter(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	announcements := []dtos.Announcement{
		{ID: "a1", Community: "12", CommunityName: "Devcorps", CreatedAt: stamp(base)},
		{ID: "a2", Community: "44", CommunityName: "EthicalHCK", CreatedAt: stamp(base)},
	}

	svc := newTestFeedService(nil, nil, announcements, nil, nil, nil, nil, nil)
	feed, err := svc.BuildFeed(context.Background(), nil, FeedOptions{
		HiddenCommunities: []string{"12"},
	})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}

	if len(feed.Items) != 1 || feed.Items[0].ID != "a2" {
		t.Errorf("Expected community 12 hidden, got %+v", feed.Items)
	}
}

func TestBuildFeed_ActiveTabFilter(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []dtos.Event{{ID: "e1", CreatedAt: stamp(base)}}
	discussions := []dtos.Discussion{{ID: "d1", CreatedAt: stamp(base)}}
	posts := []dtos.Post{{ID: "p1", CreatedAt: stamp(base)}}

	svc := newTestFeedService(events, nil, nil, nil, discussions, nil, posts, nil)

	feed, err := svc.BuildFeed(context.Background(), nil, FeedOptions{
		ActiveTab: string(constants.FeedTypeDiscussion),
	})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}
	if len(feed.Items) != 1 || feed.Items[0].Type != constants.FeedTypeDiscussion {
		t.Errorf("Expected discussions only, got %+v", feed.Items)
	}

	// "all" disables the tab filter
	feed, err = svc.BuildFeed(context.Background(), nil, FeedOptions{ActiveTab: constants.FeedFilterAll})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}
	if len(feed.Items) != 3 {
		t.Errorf("Expected all 3 items on the all tab, got %d", len(feed.Items))
	}
}

func TestBuildFeed_CanManageAnnotation(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := []dtos.Post{
		{ID: "mine", User: "9", CreatedAt: stamp(base)},
		{ID: "theirs", User: "10", CreatedAt: stamp(base.Add(-time.Hour))},
	}
	user := &dtos.UserProfile{ID: dtos.FlexID("9"), Role: constants.RoleStudent}

	svc := newTestFeedService(nil, nil, nil, nil, nil, nil, posts, nil)
	feed, err := svc.BuildFeed(context.Background(), user, FeedOptions{})
	if err != nil {
		t.Fatalf("Expected feed, got error: %v", err)
	}

	byID := map[string]dtos.FeedItem{}
	for _, item := range feed.Items {
		byID[item.ID] = item
	}
	if !byID["mine"].CanManage {
		t.Error("Expected own post to be manageable")
	}
	if byID["theirs"].CanManage {
		t.Error("Expected someone else's post not to be manageable")
	}
}

func TestBuildFeed_CachesNormalizedItems(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	calls := 0
	svc := NewFeedService(
		&mockEventSource{listFunc: func(ctx context.Context, page int) (*dtos.Paginated[dtos.Event], error) {
			calls++
			return &dtos.Paginated[dtos.Event]{Results: []dtos.Event{{ID: "e1", CreatedAt: stamp(base)}}}, nil
		}},
		&mockAnnouncementSource{listFunc: func(ctx context.Context, page int, communityID string) (*dtos.Paginated[dtos.Announcement], error) {
			return &dtos.Paginated[dtos.Announcement]{}, nil
		}},
		&mockDiscussionSource{listFunc: func(ctx context.Context, page int) (*dtos.Paginated[dtos.Discussion], error) {
			return &dtos.Paginated[dtos.Discussion]{}, nil
		}},
		&mockPostSource{listFunc: func(ctx context.Context, page int) (*dtos.Paginated[dtos.Post], error) {
			return &dtos.Paginated[dtos.Post]{}, nil
		}},
		common.NewCacheService(60, 120),
		nil,
	)

	for i := 0; i < 3; i++ {
		if _, err := svc.BuildFeed(context.Background(), nil, FeedOptions{}); err != nil {
			t.Fatalf("Build %d failed: %v", i, err)
		}
	}

	if calls != 1 {
		t.Errorf("Expected one upstream fetch across cached builds, got %d", calls)
	}
}

func TestLogoInitials(t *testing.T) {
	cases := map[string]string{
		"Devcorps":       "D",
		"Herald Bizcore": "HB",
		"IOT Innovators": "II",
		"a b c":          "AB",
		"":               "",
	}
	for name, expected := range cases {
		if got := logoInitials(name); got != expected {
			t.Errorf("logoInitials(%q) = %q, expected %q", name, got, expected)
		}
	}
}
