package services

import (
	"context"
	"fmt"
	"net/http"

	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

// MaxUploadSize is the ceiling for resource files, enforced here before any
// bytes leave for the upstream.
const MaxUploadSize = 15 << 20

type ResourceService struct {
	provider *providers.HubAPIProvider
}

// NewResourceService creates a new resource service
func NewResourceService(provider *providers.HubAPIProvider) *ResourceService {
	return &ResourceService{provider: provider}
}

// ListResources retrieves the resource library, optionally scoped to a
// community.
func (s *ResourceService) ListResources(ctx context.Context, communityID string) ([]dtos.Resource, error) {
	endpoint := "/contents/resources/"
	if communityID != "" {
		endpoint += "?community_id=" + communityID
	}

	var resources []dtos.Resource
	if _, err := s.provider.DoGET(ctx, endpoint, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// UploadResource creates a resource. size is the declared length of the file
// part; uploads over the ceiling are rejected without touching the upstream.
func (s *ResourceService) UploadResource(ctx context.Context, fields map[string]string, file *providers.FilePart, size int64) (*dtos.Resource, error) {
	if file != nil && size > MaxUploadSize {
		return nil, &providers.APIError{
			Code:    constants.ErrCodeValidationFailed,
			Message: constants.StatusFileTooLarge,
		}
	}

	var files []providers.FilePart
	if file != nil {
		files = append(files, *file)
	}

	var created dtos.Resource
	if _, err := s.provider.DoMultipart(ctx, http.MethodPost, "/contents/resources/create/", fields, files, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateResource patches resource metadata.
func (s *ResourceService) UpdateResource(ctx context.Context, id string, fields map[string]string) (*dtos.Resource, error) {
	var updated dtos.Resource
	endpoint := fmt.Sprintf("/contents/resources/%s/manage/", id)
	if _, err := s.provider.DoJSON(ctx, http.MethodPatch, endpoint, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteResource removes a resource.
func (s *ResourceService) DeleteResource(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/contents/resources/%s/manage/", id)
	_, err := s.provider.DoJSON(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}
