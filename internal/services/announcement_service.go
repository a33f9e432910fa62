package services

import (
	"context"
	"fmt"
	"net/http"

	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

type AnnouncementService struct {
	provider *providers.HubAPIProvider
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(provider *providers.HubAPIProvider) *AnnouncementService {
	return &AnnouncementService{provider: provider}
}

// ListAnnouncements retrieves one page of announcements, optionally scoped
// to a community.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, page int, communityID string) (*dtos.Paginated[dtos.Announcement], error) {
	endpoint := fmt.Sprintf("/contents/announcements/?page=%d", pageOrFirst(page))
	if communityID != "" {
		endpoint += "&community_id=" + communityID
	}

	var result dtos.Paginated[dtos.Announcement]
	if _, err := s.provider.DoGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStats retrieves the announcement counters shown on dashboards.
func (s *AnnouncementService) GetStats(ctx context.Context, communityID string) (*dtos.AnnouncementStats, error) {
	endpoint := "/contents/announcements/stats/"
	if communityID != "" {
		endpoint += "?community_id=" + communityID
	}

	var stats dtos.AnnouncementStats
	if _, err := s.provider.DoGET(ctx, endpoint, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateAnnouncement posts a new announcement. The upstream create endpoint
// is multipart because of the optional banner image.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, fields map[string]string, image *providers.FilePart) (*dtos.Announcement, error) {
	var files []providers.FilePart
	if image != nil {
		files = append(files, *image)
	}

	var created dtos.Announcement
	if _, err := s.provider.DoMultipart(ctx, http.MethodPost, "/contents/announcements/create/", fields, files, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAnnouncement patches title/description/visibility.
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id string, update dtos.AnnouncementUpdate) (*dtos.Announcement, error) {
	var updated dtos.Announcement
	endpoint := fmt.Sprintf("/contents/announcements/%s/update/", id)
	if _, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAnnouncement removes an announcement.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/contents/announcements/%s/delete/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
