package auth

import (
	"context"

	"hckonnect/hubgate/internal/common"
)

type contextKey string

var (
	sessionKey     contextKey = "hub_session"
	accessTokenKey contextKey = "hub_access_token"
)

// SetSession stores the resolved session on the request context, together
// with the access token the gateway client attaches to upstream calls.
func SetSession(ctx context.Context, session *common.SessionData) context.Context {
	ctx = context.WithValue(ctx, sessionKey, session)
	if session != nil {
		ctx = context.WithValue(ctx, accessTokenKey, session.Tokens.Access)
	}
	return ctx
}

// GetSession retrieves the session from context, nil for anonymous requests.
func GetSession(ctx context.Context) *common.SessionData {
	if session, ok := ctx.Value(sessionKey).(*common.SessionData); ok {
		return session
	}
	return nil
}

// SetAccessToken stores a bare access token without a full session. Used by
// the diagnostic CLI, which talks to the upstream directly.
func SetAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessToken returns the upstream bearer token for this request, if any.
func AccessToken(ctx context.Context) string {
	if token, ok := ctx.Value(accessTokenKey).(string); ok {
		return token
	}
	return ""
}
