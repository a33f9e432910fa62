package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hckonnect/hubgate/internal/constants"
	gormModels "hckonnect/hubgate/internal/models/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&gormModels.FeedPreference{}); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}
	return db
}

func TestGetPrefs_DefaultsWhenUnset(t *testing.T) {
	repo := NewPrefsRepository(setupTestDB(t))

	prefs, err := repo.GetPrefs(context.Background(), "42")
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if len(prefs.HiddenTypes) != 0 || len(prefs.HiddenCommunities) != 0 {
		t.Errorf("Expected nothing hidden by default, got %+v", prefs)
	}
	if prefs.ActiveTab != constants.FeedFilterAll {
		t.Errorf("Expected default tab %q, got %q", constants.FeedFilterAll, prefs.ActiveTab)
	}
}

func TestSavePrefs_RoundTrip(t *testing.T) {
	repo := NewPrefsRepository(setupTestDB(t))
	ctx := context.Background()

	in := &FeedPrefs{
		HiddenTypes:       []string{string(constants.FeedTypeEvent)},
		HiddenCommunities: []string{"12", "44"},
		ActiveTab:         string(constants.FeedTypeDiscussion),
	}
	if err := repo.SavePrefs(ctx, "42", in); err != nil {
		t.Fatalf("Failed to save prefs: %v", err)
	}

	out, err := repo.GetPrefs(ctx, "42")
	if err != nil {
		t.Fatalf("Failed to load prefs: %v", err)
	}
	if len(out.HiddenTypes) != 1 || out.HiddenTypes[0] != string(constants.FeedTypeEvent) {
		t.Errorf("Hidden types did not round trip: %v", out.HiddenTypes)
	}
	if len(out.HiddenCommunities) != 2 || out.HiddenCommunities[1] != "44" {
		t.Errorf("Hidden communities did not round trip: %v", out.HiddenCommunities)
	}
	if out.ActiveTab != string(constants.FeedTypeDiscussion) {
		t.Errorf("Active tab did not round trip: %q", out.ActiveTab)
	}
}

func TestSavePrefs_UpsertsExistingRow(t *testing.T) {
	repo := NewPrefsRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.SavePrefs(ctx, "42", &FeedPrefs{HiddenTypes: []string{"event"}}); err != nil {
		t.Fatalf("Failed initial save: %v", err)
	}
	if err := repo.SavePrefs(ctx, "42", &FeedPrefs{HiddenCommunities: []string{"7"}}); err != nil {
		t.Fatalf("Failed second save: %v", err)
	}

	out, err := repo.GetPrefs(ctx, "42")
	if err != nil {
		t.Fatalf("Failed to load prefs: %v", err)
	}
	if len(out.HiddenTypes) != 0 {
		t.Errorf("Expected second save to replace hidden types, got %v", out.HiddenTypes)
	}
	if len(out.HiddenCommunities) != 1 || out.HiddenCommunities[0] != "7" {
		t.Errorf("Expected hidden communities from second save, got %v", out.HiddenCommunities)
	}
}

func TestDeletePrefs(t *testing.T) {
	repo := NewPrefsRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.SavePrefs(ctx, "42", &FeedPrefs{HiddenTypes: []string{"post"}}); err != nil {
		t.Fatalf("Failed to save prefs: %v", err)
	}
	if err := repo.DeletePrefs(ctx, "42"); err != nil {
		t.Fatalf("Failed to delete prefs: %v", err)
	}

	out, err := repo.GetPrefs(ctx, "42")
	if err != nil {
		t.Fatalf("Failed to load prefs after delete: %v", err)
	}
	if len(out.HiddenTypes) != 0 {
		t.Errorf("Expected defaults after delete, got %v", out.HiddenTypes)
	}
}
