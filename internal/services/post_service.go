package services

import (
	"context"
	"fmt"
	"net/http"

	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

type PostService struct {
	provider *providers.HubAPIProvider
}

// NewPostService creates a new post service
func NewPostService(provider *providers.HubAPIProvider) *PostService {
	return &PostService{provider: provider}
}

// ListPosts retrieves one page of posts.
func (s *PostService) ListPosts(ctx context.Context, page int) (*dtos.Paginated[dtos.Post], error) {
	endpoint := fmt.Sprintf("/contents/post-list/?page=%d", pageOrFirst(page))

	var result dtos.Paginated[dtos.Post]
	if _, err := s.provider.DoGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPost retrieves a single post.
func (s *PostService) GetPost(ctx context.Context, id string) (*dtos.Post, error) {
	var post dtos.Post
	endpoint := fmt.Sprintf("/contents/post/detail/%s/", id)
	if _, err := s.provider.DoGET(ctx, endpoint, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost publishes a post; multipart only when an image rides along.
func (s *PostService) CreatePost(ctx context.Context, content string, image *providers.FilePart) (*dtos.Post, error) {
	var created dtos.Post

	if image == nil {
		payload := map[string]string{"content": content}
		if _, err := s.provider.DoJSON(ctx, http.MethodPost, "/contents/post/create/", payload, &created); err != nil {
			return nil, err
		}
		return &created, nil
	}

	fields := map[string]string{"content": content}
	files := []providers.FilePart{*image}
	if _, err := s.provider.DoMultipart(ctx, http.MethodPost, "/contents/post/create/", fields, files, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePost patches a post's content.
func (s *PostService) UpdatePost(ctx context.Context, id string, update dtos.PostUpdate) (*dtos.Post, error) {
	var updated dtos.Post
	endpoint := fmt.Sprintf("/contents/post/%s/manage/", id)
	if _, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost removes a post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/contents/post/%s/manage/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// ToggleReaction likes or unlikes a post.
func (s *PostService) ToggleReaction(ctx context.Context, postID string) error {
	payload := dtos.PostReaction{Post: dtos.FlexID(postID)}
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/contents/post/react/", payload, nil)
	return err
}

// ListComments pages through the comments of one post.
func (s *PostService) ListComments(ctx context.Context, postID string, page int) (*dtos.Paginated[dtos.Comment], error) {
	endpoint := fmt.Sprintf("/contents/post/comments/list/?post_id=%s&page=%d", postID, pageOrFirst(page))

	var result dtos.Paginated[dtos.Comment]
	if _, err := s.provider.DoGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateComment adds a comment, threaded when Parent is set.
func (s *PostService) CreateComment(ctx context.Context, req dtos.CommentCreate) (*dtos.Comment, error) {
	var created dtos.Comment
	if _, err := s.provider.DoJSON(ctx, http.MethodPost, "/contents/post/comments/create/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComment edits a comment's content.
func (s *PostService) UpdateComment(ctx context.Context, id, content string) (*dtos.Comment, error) {
	var updated dtos.Comment
	endpoint := fmt.Sprintf("/contents/post/comments/%s/update/", id)
	payload := map[string]string{"content": content}
	if _, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteComment removes a comment.
func (s *PostService) DeleteComment(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/contents/post/comments/%s/delete/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}
