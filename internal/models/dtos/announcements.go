package dtos

// Announcement mirrors the upstream announcement read serializer. The list
// endpoint denormalizes the community into flat *_name/*_logo fields rather
// than nesting an object.
type Announcement struct {
	ID              FlexID `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Image           string `json:"image,omitempty"`
	Visibility      string `json:"visibility,omitempty"`
	Community       FlexID `json:"community,omitempty"`
	CommunityName   string `json:"community_name"`
	CommunityLogo   string `json:"community_logo,omitempty"`
	UploadedBy      string `json:"uploaded_by,omitempty"`
	TimeSincePosted string `json:"time_since_posted,omitempty"`
	CreatedByUser   FlexID `json:"created_by_user,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// AnnouncementStats mirrors GET /contents/announcements/stats/
type AnnouncementStats struct {
	TotalAnnouncements int `json:"total_announcements"`
}

// AnnouncementUpdate is the PATCH body for announcement edits.
type AnnouncementUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}
