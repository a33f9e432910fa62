package dtos

import (
	"time"

	"hckonnect/hubgate/internal/constants"
)

// CommunityRef is the synthesized community display object carried by every
// feed item, regardless of how the source endpoint shaped its community data.
type CommunityRef struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	LogoInitials string `json:"logo_initials"`
}

// FeedItem is the normalized shape the aggregator produces from the four
// content sources. CreatedAt is the sole sort key; items whose upstream
// timestamp failed to parse carry the build time instead.
type FeedItem struct {
	ID          string             `json:"id"`
	Type        constants.FeedType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Community   CommunityRef       `json:"community"`
	Author      string             `json:"author,omitempty"`
	AuthorID    string             `json:"author_id,omitempty"`
	Likes       int                `json:"likes"`
	Comments    int                `json:"comments"`
	CreatedAt   time.Time          `json:"created_at"`
	CanManage   bool               `json:"can_manage"`
}
