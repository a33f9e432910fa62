package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hckonnect/hubgate/internal/constants"
	gormModels "hckonnect/hubgate/internal/models/gorm"
)

// FeedPrefs is the slice-typed view of one user's stored feed filters.
type FeedPrefs struct {
	HiddenTypes       []string `json:"hidden_types"`
	HiddenCommunities []string `json:"hidden_communities"`
	ActiveTab         string   `json:"active_tab"`
}

type PrefsRepository struct {
	db *gorm.DB
}

// NewPrefsRepository creates a GORM-based feed preference repository
func NewPrefsRepository(db *gorm.DB) *PrefsRepository {
	return &PrefsRepository{db: db}
}

// GetPrefs retrieves the stored feed preferences for a user. A user with no
// stored row gets the defaults: nothing hidden, "all" tab.
func (r *PrefsRepository) GetPrefs(ctx context.Context, userID string) (*FeedPrefs, error) {
	var row gormModels.FeedPreference

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &FeedPrefs{
				HiddenTypes:       []string{},
				HiddenCommunities: []string{},
				ActiveTab:         constants.FeedFilterAll,
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch feed preferences: %w", err)
	}

	return &FeedPrefs{
		HiddenTypes:       splitList(row.HiddenTypes),
		HiddenCommunities: splitList(row.HiddenCommunities),
		ActiveTab:         row.ActiveTab,
	}, nil
}

// SavePrefs upserts the feed preferences for a user
func (r *PrefsRepository) SavePrefs(ctx context.Context, userID string, prefs *FeedPrefs) error {
	if prefs.ActiveTab == "" {
		prefs.ActiveTab = constants.FeedFilterAll
	}

	row := gormModels.FeedPreference{
		UserID:            userID,
		HiddenTypes:       strings.Join(prefs.HiddenTypes, ","),
		HiddenCommunities: strings.Join(prefs.HiddenCommunities, ","),
		ActiveTab:         prefs.ActiveTab,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"hidden_types", "hidden_communities", "active_tab", "updated_at"}),
		}).
		Create(&row).Error

	if err != nil {
		return fmt.Errorf("failed to save feed preferences: %w", err)
	}
	return nil
}

// DeletePrefs removes the stored preferences for a user
func (r *PrefsRepository) DeletePrefs(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&gormModels.FeedPreference{}).Error

	if err != nil {
		return fmt.Errorf("failed to delete feed preferences: %w", err)
	}
	return nil
}

func splitList(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
