package dtos

// Resource mirrors the upstream resource-library serializer.
type Resource struct {
	ID            FlexID `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	File          string `json:"file,omitempty"`
	FileExtension string `json:"file_extension,omitempty"`
	FileSize      int64  `json:"file_size,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	Community     FlexID `json:"community,omitempty"`
	TimeAgo       string `json:"time_ago,omitempty"`
	CreatedAt     string `json:"created_at"`
}
