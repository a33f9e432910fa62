package dtos

// Post mirrors the upstream post list serializer. Personal posts have no
// community; posts made on behalf of a community carry one.
type Post struct {
	ID            FlexID `json:"id"`
	Content       string `json:"content"`
	Image         string `json:"image,omitempty"`
	User          FlexID `json:"user"`
	UserName      string `json:"user_name,omitempty"`
	Community     FlexID `json:"community,omitempty"`
	CommunityName string `json:"community_name,omitempty"`
	LikeCount     int    `json:"like_count"`
	CommentCount  int    `json:"comment_count"`
	UserHasLiked  bool   `json:"user_has_liked,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Comment is a post comment; threaded via parent.
type Comment struct {
	ID        FlexID `json:"id"`
	Post      FlexID `json:"post"`
	Parent    FlexID `json:"parent,omitempty"`
	Content   string `json:"content"`
	User      FlexID `json:"user"`
	UserName  string `json:"user_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// CommentCreate is the body for POST /contents/post/comments/create/
type CommentCreate struct {
	Post    FlexID `json:"post"`
	Content string `json:"content"`
	Parent  FlexID `json:"parent,omitempty"`
}

// PostReaction toggles a like on a post.
type PostReaction struct {
	Post FlexID `json:"post"`
}

// PostUpdate is the PATCH body for post edits.
type PostUpdate struct {
	Content string `json:"content,omitempty"`
}
