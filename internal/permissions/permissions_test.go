package permissions

import (
	"testing"

	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/models/dtos"
)

func TestCanManage_AnonymousAlwaysFalse(t *testing.T) {
	contents := []Content{
		{},
		{AuthorID: "9"},
		{CommunityID: "12"},
		{AuthorID: "9", CommunityID: "12"},
	}

	for _, content := range contents {
		if CanManage(nil, content) {
			t.Errorf("Expected false for anonymous user on %+v", content)
		}
	}
}

func TestCanManage_CommunityAccountOwnsContent(t *testing.T) {
	user := &dtos.UserProfile{
		ID:   dtos.FlexID("12"),
		Role: constants.RoleCommunity,
	}

	if !CanManage(user, Content{CommunityID: "12"}) {
		t.Error("Expected community account to manage its own content")
	}

	// Regardless of any other field
	if !CanManage(user, Content{AuthorID: "999", CommunityID: "12"}) {
		t.Error("Expected community account to manage content authored by someone else")
	}

	if CanManage(user, Content{CommunityID: "13"}) {
		t.Error("Expected community account not to manage another community's content")
	}
}

func TestCanManage_RepresentativePath(t *testing.T) {
	// user 5 is a student and a representative of community 12; the item was
	// written by user 9 for community 12
	user := &dtos.UserProfile{
		ID:   dtos.FlexID("5"),
		Role: constants.RoleStudent,
		Membership: &dtos.Membership{
			Community: dtos.FlexID("12"),
			Role:      constants.MembershipRepresentative,
		},
	}

	if !CanManage(user, Content{AuthorID: "9", CommunityID: "12"}) {
		t.Error("Expected representative to manage community content they did not author")
	}

	if CanManage(user, Content{AuthorID: "9", CommunityID: "44"}) {
		t.Error("Expected representative not to manage another community's content")
	}
}

func TestCanManage_PlainMemberCannotModerate(t *testing.T) {
	user := &dtos.UserProfile{
		ID:   dtos.FlexID("5"),
		Role: constants.RoleStudent,
		Membership: &dtos.Membership{
			Community: dtos.FlexID("12"),
			Role:      constants.MembershipMember,
		},
	}

	if CanManage(user, Content{AuthorID: "9", CommunityID: "12"}) {
		t.Error("Expected plain member not to manage other members' content")
	}
}

func TestCanManage_AuthorPath(t *testing.T) {
	user := &dtos.UserProfile{
		ID:   dtos.FlexID("9"),
		Role: constants.RoleStudent,
	}

	if !CanManage(user, Content{AuthorID: "9", CommunityID: "12"}) {
		t.Error("Expected author to manage their own content")
	}

	if !CanManage(user, Content{AuthorID: "9"}) {
		t.Error("Expected author to manage their own personal post")
	}

	if CanManage(user, Content{AuthorID: "10"}) {
		t.Error("Expected non-author without role or membership to be refused")
	}
}

func TestCanManage_EmptyOwnershipNeverMatches(t *testing.T) {
	// A content item with no author and no community must not match a user
	// whose id happens to be empty-ish
	user := &dtos.UserProfile{ID: dtos.FlexID(""), Role: constants.RoleStudent}

	if CanManage(user, Content{}) {
		t.Error("Expected empty ownership to match nobody")
	}
}
