package gorm

import "time"

// FeedPreference persists one user's feed filter choices so they survive
// logout. Hidden types and communities are stored as comma-joined lists; the
// repository handles the split/join so callers only ever see slices.
type FeedPreference struct {
	UserID            string    `gorm:"column:user_id;primaryKey"`
	HiddenTypes       string    `gorm:"column:hidden_types"`
	HiddenCommunities string    `gorm:"column:hidden_communities"`
	ActiveTab         string    `gorm:"column:active_tab;default:all"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FeedPreference) TableName() string {
	return "feed_preferences"
}
