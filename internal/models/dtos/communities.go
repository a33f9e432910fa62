package dtos

// Community mirrors the upstream community list/dashboard serializers.
// Communities are first-class accounts upstream, so the id doubles as the
// owning account id for permission checks.
type Community struct {
	ID            FlexID `json:"id"`
	CommunityName string `json:"community_name"`
	CommunityLogo string `json:"community_logo,omitempty"`
	Description   string `json:"description,omitempty"`
	MemberCount   int    `json:"member_count,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// CommunityMember is one row of GET /communities/{id}/members/
type CommunityMember struct {
	MembershipID FlexID `json:"membership_id"`
	User         FlexID `json:"user"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	JoinedAt     string `json:"joined_at,omitempty"`
}

// MembershipApply is the body for POST /communities/memberships/apply/
type MembershipApply struct {
	Community FlexID `json:"community"`
	Message   string `json:"message,omitempty"`
}

// MemberAdd is the body for POST /communities/members/add/
type MemberAdd struct {
	User      FlexID `json:"user"`
	Community FlexID `json:"community,omitempty"`
	Role      string `json:"role,omitempty"`
}

// CommunityDashboard is the gateway-side aggregate behind the dashboard
// page: community detail plus the stats and recent content the page renders,
// gathered in one fan-out instead of five client round trips.
type CommunityDashboard struct {
	Community           Community         `json:"community"`
	AnnouncementStats   AnnouncementStats `json:"announcement_stats"`
	EventStats          EventStats        `json:"event_stats"`
	RecentAnnouncements []Announcement    `json:"recent_announcements"`
	UpcomingEvents      []Event           `json:"upcoming_events"`
	Members             []CommunityMember `json:"members,omitempty"`
}

// Student is one row of GET /communities/students/
type Student struct {
	ID       FlexID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Vacancy mirrors the community vacancy serializer.
type Vacancy struct {
	ID          FlexID `json:"id"`
	Community   FlexID `json:"community"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Role        string `json:"role,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	IsOpen      bool   `json:"is_open"`
}
