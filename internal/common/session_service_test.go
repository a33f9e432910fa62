package common

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/models/dtos"
)

func newTestSessionService() *SessionService {
	return NewSessionService(NewCacheService(60, 120))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 9,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func testUser() dtos.UserProfile {
	return dtos.UserProfile{
		ID:       dtos.FlexID("9"),
		Username: "maya",
		Email:    "maya@example.edu",
		Role:     constants.RoleStudent,
	}
}

func TestCreateSession_RoundTrip(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	tokens := dtos.TokenPair{Access: signedToken(t, time.Now().Add(time.Hour)), Refresh: "refresh-token"}
	session, err := svc.CreateSession(ctx, testUser(), tokens)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if session.SessionID == "" {
		t.Fatal("Expected a session id")
	}

	loaded, err := svc.GetSession(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded.User.Username != "maya" {
		t.Errorf("Profile did not round trip: %+v", loaded.User)
	}
	if loaded.Tokens.Refresh != "refresh-token" {
		t.Error("Expected refresh token stored alongside access token")
	}
}

func TestCreateSession_ExpiryTracksAccessToken(t *testing.T) {
	svc := newTestSessionService()
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	tokens := dtos.TokenPair{Access: signedToken(t, exp)}
	session, err := svc.CreateSession(context.Background(), testUser(), tokens)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if !session.ExpiresAt.Equal(exp) {
		t.Errorf("Expected expiry %v from token exp claim, got %v", exp, session.ExpiresAt)
	}
}

func TestCreateSession_FallbackTTLWithoutExpClaim(t *testing.T) {
	svc := newTestSessionService()

	tokens := dtos.TokenPair{Access: "not-a-jwt"}
	session, err := svc.CreateSession(context.Background(), testUser(), tokens)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	remaining := time.Until(session.ExpiresAt)
	if remaining < DefaultSessionTTL-time.Minute || remaining > DefaultSessionTTL {
		t.Errorf("Expected fallback TTL near %v, got %v", DefaultSessionTTL, remaining)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	svc := newTestSessionService()

	if _, err := svc.GetSession(context.Background(), "no-such-session"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetSession_ExpiredSessionIsDeleted(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	tokens := dtos.TokenPair{Access: signedToken(t, time.Now().Add(-time.Minute))}
	session, err := svc.CreateSession(ctx, testUser(), tokens)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if _, err := svc.GetSession(ctx, session.SessionID); err == nil {
		t.Error("Expected error for expired session")
	}
	// Second read must also miss; expiry is terminal
	if _, err := svc.GetSession(ctx, session.SessionID); err != ErrSessionNotFound && err != ErrSessionExpired {
		t.Errorf("Expected session gone after expiry, got %v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	tokens := dtos.TokenPair{Access: signedToken(t, time.Now().Add(time.Hour))}
	session, err := svc.CreateSession(ctx, testUser(), tokens)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	svc.DeleteSession(ctx, session.SessionID)
	if _, err := svc.GetSession(ctx, session.SessionID); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestUpdateUser_KeepsTokensAndExpiry(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	tokens := dtos.TokenPair{Access: signedToken(t, time.Now().Add(time.Hour)), Refresh: "r"}
	session, err := svc.CreateSession(ctx, testUser(), tokens)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	updated := testUser()
	updated.Membership = &dtos.Membership{
		Community: dtos.FlexID("12"),
		Role:      constants.MembershipRepresentative,
	}
	if err := svc.UpdateUser(ctx, session.SessionID, updated); err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}

	loaded, err := svc.GetSession(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Failed to reload session: %v", err)
	}
	if loaded.User.Membership == nil || loaded.User.Membership.Role != constants.MembershipRepresentative {
		t.Errorf("Expected updated membership, got %+v", loaded.User.Membership)
	}
	if loaded.Tokens.Refresh != "r" {
		t.Error("Expected token pair untouched by profile update")
	}
	if !loaded.ExpiresAt.Equal(session.ExpiresAt) {
		t.Errorf("Expected expiry untouched, got %v vs %v", loaded.ExpiresAt, session.ExpiresAt)
	}
}
