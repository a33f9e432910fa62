package services

import (
	"context"
	"fmt"
	"net/http"

	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

type DiscussionService struct {
	provider *providers.HubAPIProvider
}

// NewDiscussionService creates a new discussion service
func NewDiscussionService(provider *providers.HubAPIProvider) *DiscussionService {
	return &DiscussionService{provider: provider}
}

// ListDiscussions retrieves one page of discussion topics.
func (s *DiscussionService) ListDiscussions(ctx context.Context, page int) (*dtos.Paginated[dtos.Discussion], error) {
	endpoint := fmt.Sprintf("/discussions/list/?page=%d", pageOrFirst(page))

	var result dtos.Paginated[dtos.Discussion]
	if _, err := s.provider.DoGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDiscussion retrieves a topic with its replies inlined.
func (s *DiscussionService) GetDiscussion(ctx context.Context, id string) (*dtos.Discussion, error) {
	var discussion dtos.Discussion
	endpoint := fmt.Sprintf("/discussions/discussion-detail/%s/", id)
	if _, err := s.provider.DoGET(ctx, endpoint, &discussion); err != nil {
		return nil, err
	}
	return &discussion, nil
}

// CreateDiscussion opens a new topic.
func (s *DiscussionService) CreateDiscussion(ctx context.Context, req dtos.DiscussionCreate) (*dtos.Discussion, error) {
	var created dtos.Discussion
	if _, err := s.provider.DoJSON(ctx, http.MethodPost, "/discussions/create/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDiscussion patches topic/content/visibility.
func (s *DiscussionService) UpdateDiscussion(ctx context.Context, id string, req dtos.DiscussionCreate) (*dtos.Discussion, error) {
	var updated dtos.Discussion
	endpoint := fmt.Sprintf("/discussions/%s/update/", id)
	if _, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDiscussion removes a topic and its replies.
func (s *DiscussionService) DeleteDiscussion(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/discussions/%s/delete/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// ListReplies pages through the replies of one topic.
func (s *DiscussionService) ListReplies(ctx context.Context, topicID string, page int) (*dtos.Paginated[dtos.Reply], error) {
	endpoint := fmt.Sprintf("/discussions/replies/list/?topic_id=%s&page=%d", topicID, pageOrFirst(page))

	var result dtos.Paginated[dtos.Reply]
	if _, err := s.provider.DoGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateReply posts a reply, threaded when ParentReply is set.
func (s *DiscussionService) CreateReply(ctx context.Context, req dtos.ReplyCreate) (*dtos.Reply, error) {
	var created dtos.Reply
	if _, err := s.provider.DoJSON(ctx, http.MethodPost, "/discussions/replies/create/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReply edits a reply's content.
func (s *DiscussionService) UpdateReply(ctx context.Context, id, content string) (*dtos.Reply, error) {
	var updated dtos.Reply
	endpoint := fmt.Sprintf("/discussions/replies/%s/update/", id)
	payload := map[string]string{"content": content}
	if _, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReply removes a reply.
func (s *DiscussionService) DeleteReply(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/discussions/replies/%s/delete/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// ToggleReaction likes or unlikes either a topic or a reply.
func (s *DiscussionService) ToggleReaction(ctx context.Context, req dtos.ReactionToggle) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/discussions/reactions/", req, nil)
	return err
}
