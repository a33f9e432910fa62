package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/models/dtos"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// DefaultSessionTTL bounds sessions whose access token carries no usable
// expiry claim.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionData is the single authoritative session object. Callers receive it
// through the request context; nothing reads tokens or the cached user from
// anywhere else.
type SessionData struct {
	SessionID string           `json:"session_id"`
	User      dtos.UserProfile `json:"user"`
	Tokens    dtos.TokenPair   `json:"tokens"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// SessionService manages sessions behind the shared cache interface, so the
// same code runs against the in-memory cache or Redis.
type SessionService struct {
	cache CacheInterface
}

// NewSessionService creates a new session service
func NewSessionService(cache CacheInterface) *SessionService {
	return &SessionService{cache: cache}
}

// CreateSession stores a fresh session for a signed-in user. The session
// lifetime tracks the access token's exp claim; there is no client-side
// refresh exchange, so when the token dies the session dies with it.
func (s *SessionService) CreateSession(ctx context.Context, user dtos.UserProfile, tokens dtos.TokenPair) (*SessionData, error) {
	now := time.Now()
	expiresAt := now.Add(DefaultSessionTTL)
	if exp, ok := accessTokenExpiry(tokens.Access); ok && exp.After(now) {
		expiresAt = exp
	}

	session := &SessionData{
		SessionID: uuid.New().String(),
		User:      user,
		Tokens:    tokens,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	s.cache.Set(sessionKey(session.SessionID), string(data), time.Until(expiresAt))

	logging.Info("Session created",
		"session_id", session.SessionID,
		"user_id", user.ID.String(),
		"role", user.Role.String(),
		"expires_at", expiresAt.Format(time.RFC3339),
	)
	return session, nil
}

// GetSession retrieves a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(sessionKey(sessionID))
	if !found {
		return nil, ErrSessionNotFound
	}

	raw, ok := val.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected session cache value of type %T", val)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.DeleteSession(ctx, sessionID)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// DeleteSession removes a session. Safe to call for ids that no longer exist.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) {
	s.cache.Delete(sessionKey(sessionID))
}

// UpdateUser replaces the cached profile on an existing session, keeping the
// token pair and expiry untouched.
func (s *SessionService) UpdateUser(ctx context.Context, sessionID string, user dtos.UserProfile) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	session.User = user
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	s.cache.Set(sessionKey(sessionID), string(data), time.Until(session.ExpiresAt))
	return nil
}

func sessionKey(sessionID string) string {
	return string(constants.CachePrefixSession) + sessionID
}

// accessTokenExpiry pulls the exp claim out of the upstream access token.
// The signature is deliberately not verified: hubgate never trusts the token
// contents for authorization, it only needs the expiry timestamp.
func accessTokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
