// Package permissions holds the one moderation predicate the card and detail
// views previously each reimplemented. It is advisory: it decides whether the
// UI offers edit/delete affordances, while the upstream API remains the real
// authorization boundary.
package permissions

import (
	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/models/dtos"
)

// Content identifies the ownership of one content item: who wrote it and
// which community it belongs to. Either field may be empty depending on the
// source (personal posts have no community, community announcements may have
// no individual author).
type Content struct {
	AuthorID    string
	CommunityID string
}

// CanManage reports whether user may edit or delete the given content.
// True if any of:
//   - the user is the community account that owns the content,
//   - the user is a representative of the owning community,
//   - the user authored the content.
//
// A nil user (anonymous) can never manage anything.
func CanManage(user *dtos.UserProfile, content Content) bool {
	if user == nil {
		return false
	}

	if content.CommunityID != "" {
		if user.Role == constants.RoleCommunity && user.ID.String() == content.CommunityID {
			return true
		}
		if m := user.Membership; m != nil &&
			m.Role == constants.MembershipRepresentative &&
			m.Community.String() == content.CommunityID {
			return true
		}
	}

	return content.AuthorID != "" && user.ID.String() == content.AuthorID
}
