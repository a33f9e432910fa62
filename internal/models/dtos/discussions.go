package dtos

// Reply is a single discussion reply. Top-level replies carry a null
// parent_reply; threaded replies point at their parent.
type Reply struct {
	ID            FlexID `json:"id"`
	Topic         FlexID `json:"topic"`
	ParentReply   FlexID `json:"parent_reply,omitempty"`
	Content       string `json:"content"`
	CreatedBy     FlexID `json:"created_by"`
	CreatedByName string `json:"created_by_name,omitempty"`
	UserHasLiked  bool   `json:"user_has_liked,omitempty"`
	TimeAgo       string `json:"time_ago,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Discussion mirrors the upstream discussion read serializer. Unlike the
// announcement list, the community may come back as a bare id with a separate
// community_name field.
type Discussion struct {
	ID            FlexID  `json:"id"`
	Topic         string  `json:"topic"`
	Content       string  `json:"content"`
	Visibility    string  `json:"visibility,omitempty"`
	IsPinned      bool    `json:"is_pinned,omitempty"`
	Community     FlexID  `json:"community"`
	CommunityName string  `json:"community_name"`
	CreatedBy     FlexID  `json:"created_by"`
	CreatedByName string  `json:"created_by_name,omitempty"`
	ReplyCount    int     `json:"reply_count"`
	ReactionCount int     `json:"reaction_count"`
	UserHasLiked  bool    `json:"user_has_liked,omitempty"`
	TimeAgo       string  `json:"time_ago,omitempty"`
	CreatedAt     string  `json:"created_at"`
	Replies       []Reply `json:"replies,omitempty"`
}

// DiscussionCreate is the body for POST /discussions/create/
type DiscussionCreate struct {
	Topic      string `json:"topic"`
	Content    string `json:"content"`
	Community  FlexID `json:"community,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	IsPinned   bool   `json:"is_pinned,omitempty"`
}

// ReplyCreate is the body for POST /discussions/replies/create/
type ReplyCreate struct {
	Topic       FlexID `json:"topic"`
	Content     string `json:"content"`
	ParentReply FlexID `json:"parent_reply,omitempty"`
}

// ReactionToggle targets either a topic or a reply, never both.
type ReactionToggle struct {
	Topic FlexID `json:"topic,omitempty"`
	Reply FlexID `json:"reply,omitempty"`
}
