package services

import (
	"context"
	"fmt"
	"net/http"

	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

type EventService struct {
	provider *providers.HubAPIProvider
}

// NewEventService creates a new event service
func NewEventService(provider *providers.HubAPIProvider) *EventService {
	return &EventService{provider: provider}
}

// ListEvents retrieves one page of events.
func (s *EventService) ListEvents(ctx context.Context, page int) (*dtos.Paginated[dtos.Event], error) {
	endpoint := fmt.Sprintf("/events/event-list/?page=%d", pageOrFirst(page))

	var result dtos.Paginated[dtos.Event]
	if _, err := s.provider.DoGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEvent retrieves a single event with full detail.
func (s *EventService) GetEvent(ctx context.Context, id string) (*dtos.Event, error) {
	var event dtos.Event
	endpoint := fmt.Sprintf("/events/event/%s/", id)
	if _, err := s.provider.DoGET(ctx, endpoint, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetStats retrieves total and upcoming event counts.
func (s *EventService) GetStats(ctx context.Context, communityID string) (*dtos.EventStats, error) {
	endpoint := "/events/stats/"
	if communityID != "" {
		endpoint += "?community_id=" + communityID
	}

	var stats dtos.EventStats
	if _, err := s.provider.DoGET(ctx, endpoint, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateEvent posts a new event. Multipart because of the optional banner.
func (s *EventService) CreateEvent(ctx context.Context, fields map[string]string, image *providers.FilePart) (*dtos.Event, error) {
	var files []providers.FilePart
	if image != nil {
		files = append(files, *image)
	}

	var created dtos.Event
	if _, err := s.provider.DoMultipart(ctx, http.MethodPost, "/events/event-create/", fields, files, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent replaces an event. The upstream edit endpoint is a full PUT.
func (s *EventService) UpdateEvent(ctx context.Context, id string, event dtos.Event) (*dtos.Event, error) {
	var updated dtos.Event
	endpoint := fmt.Sprintf("/events/%s/update/", id)
	if _, err := s.provider.DoJSON(ctx, http.MethodPut, endpoint, event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/events/%s/delete/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}
