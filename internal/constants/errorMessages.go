package constants

const (
	StatusError             = "Error"
	StatusLoginFailed       = "Invalid credentials"
	StatusSessionExpired    = "Session expired, please sign in again"
	StatusUpstreamDown      = "Server not reachable"
	StatusFailedToFetchFeed = "Failed to fetch feed"
	StatusNotPermitted      = "You are not allowed to manage this item"
	StatusFileTooLarge      = "File exceeds the 15 MB upload limit"
)

const (
	MsgProfileNotFound  = "Profile not found upstream"
	MsgCommunityMissing = "Community not found"
	MsgDuplicateLogin   = "A session already exists for this user"
)
