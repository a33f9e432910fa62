package constants

// UserRole mirrors the upstream accounts 'role' field
type UserRole string

const (
	RoleStudent   UserRole = "student"
	RoleCommunity UserRole = "community"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

// MembershipRole mirrors the upstream community-membership 'role' field
type MembershipRole string

const (
	MembershipMember         MembershipRole = "member"
	MembershipRepresentative MembershipRole = "representative"
)

func (r MembershipRole) String() string { return string(r) }
