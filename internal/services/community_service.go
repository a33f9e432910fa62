package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

type CommunityService struct {
	provider      *providers.HubAPIProvider
	announcements *AnnouncementService
	events        *EventService
}

// NewCommunityService creates a new community service
func NewCommunityService(provider *providers.HubAPIProvider, announcements *AnnouncementService, events *EventService) *CommunityService {
	return &CommunityService{
		provider:      provider,
		announcements: announcements,
		events:        events,
	}
}

// ListCommunities retrieves all communities.
func (s *CommunityService) ListCommunities(ctx context.Context) ([]dtos.Community, error) {
	var communities []dtos.Community
	if _, err := s.provider.DoGET(ctx, "/communities/communities-list/", &communities); err != nil {
		return nil, err
	}
	return communities, nil
}

// GetDashboard assembles the community dashboard in a single fan-out:
// community detail, both stats endpoints, the latest announcements, and the
// event list. Stats and content failures degrade to zero values so the page
// still renders; only the community detail itself is fatal.
func (s *CommunityService) GetDashboard(ctx context.Context, communityID string) (*dtos.CommunityDashboard, error) {
	dashboard := &dtos.CommunityDashboard{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		endpoint := fmt.Sprintf("/communities/dashboard/%s/", communityID)
		_, err := s.provider.DoGET(gctx, endpoint, &dashboard.Community)
		return err
	})

	g.Go(func() error {
		stats, err := s.announcements.GetStats(gctx, communityID)
		if err != nil {
			logging.Warn("Dashboard announcement stats unavailable", "community_id", communityID, "error", err)
			return nil
		}
		dashboard.AnnouncementStats = *stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.events.GetStats(gctx, communityID)
		if err != nil {
			logging.Warn("Dashboard event stats unavailable", "community_id", communityID, "error", err)
			return nil
		}
		dashboard.EventStats = *stats
		return nil
	})

	g.Go(func() error {
		page, err := s.announcements.ListAnnouncements(gctx, 1, communityID)
		if err != nil {
			logging.Warn("Dashboard announcements unavailable", "community_id", communityID, "error", err)
			return nil
		}
		if len(page.Results) > 5 {
			page.Results = page.Results[:5]
		}
		dashboard.RecentAnnouncements = page.Results
		return nil
	})

	g.Go(func() error {
		page, err := s.events.ListEvents(gctx, 1)
		if err != nil {
			logging.Warn("Dashboard events unavailable", "community_id", communityID, "error", err)
			return nil
		}
		for _, event := range page.Results {
			if event.Community.String() == communityID {
				dashboard.UpcomingEvents = append(dashboard.UpcomingEvents, event)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// ListMembers retrieves the member roster of one community.
func (s *CommunityService) ListMembers(ctx context.Context, communityID string) ([]dtos.CommunityMember, error) {
	var members []dtos.CommunityMember
	endpoint := fmt.Sprintf("/communities/%s/members/", communityID)
	if _, err := s.provider.DoGET(ctx, endpoint, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SearchStudents looks up students for the member-add picker.
func (s *CommunityService) SearchStudents(ctx context.Context, query string) ([]dtos.Student, error) {
	var students []dtos.Student
	endpoint := "/communities/students/?search=" + url.QueryEscape(query)
	if _, err := s.provider.DoGET(ctx, endpoint, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// ApplyMembership submits a join request to a community.
func (s *CommunityService) ApplyMembership(ctx context.Context, req dtos.MembershipApply) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/communities/memberships/apply/", req, nil)
	return err
}

// PendingMemberships lists join requests awaiting approval.
func (s *CommunityService) PendingMemberships(ctx context.Context) ([]dtos.CommunityMember, error) {
	var pending []dtos.CommunityMember
	if _, err := s.provider.DoGET(ctx, "/communities/memberships/pending/", &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// ApproveMembership approves a pending join request with a role.
func (s *CommunityService) ApproveMembership(ctx context.Context, membershipID, role string) error {
	endpoint := fmt.Sprintf("/communities/memberships/%s/approve/", membershipID)
	payload := map[string]string{"role": role}
	_, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, payload, nil)
	return err
}

// AddMember directly adds a student to the community.
func (s *CommunityService) AddMember(ctx context.Context, req dtos.MemberAdd) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/communities/members/add/", req, nil)
	return err
}

// RemoveMember drops a member by membership id.
func (s *CommunityService) RemoveMember(ctx context.Context, membershipID string) error {
	endpoint := fmt.Sprintf("/communities/members/%s/", membershipID)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// CreateVacancy opens a recruiting vacancy for the community.
func (s *CommunityService) CreateVacancy(ctx context.Context, vacancy dtos.Vacancy) (*dtos.Vacancy, error) {
	var created dtos.Vacancy
	if _, err := s.provider.DoJSON(ctx, http.MethodPost, "/communities/community-vacancy/", vacancy, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
