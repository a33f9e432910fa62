package services

import (
	"context"
	"fmt"
	"net/http"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/common"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
)

// AuthService owns the login/logout lifecycle. Login exchanges credentials
// for the upstream token pair, pulls the profile, and mints a gateway
// session; everything else reads the session off the request context.
type AuthService struct {
	provider *providers.HubAPIProvider
	sessions *common.SessionService
}

// NewAuthService creates a new auth service
func NewAuthService(provider *providers.HubAPIProvider, sessions *common.SessionService) *AuthService {
	return &AuthService{provider: provider, sessions: sessions}
}

// Login authenticates against the upstream and creates a session. The auth
// hook is suppressed for both calls so a rejected password can never tear
// down an unrelated session.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*common.SessionData, error) {
	var loginResp dtos.LoginResponse
	if _, err := s.provider.DoJSON(ctx, http.MethodPost, "/accounts/login/", req, &loginResp, providers.WithoutAuthHook()); err != nil {
		return nil, err
	}

	tokens := loginResp.Data.Token
	if tokens.Access == "" {
		return nil, fmt.Errorf("login succeeded but no access token returned")
	}

	profileCtx := auth.SetAccessToken(ctx, tokens.Access)
	var profile dtos.UserProfile
	if _, err := s.provider.DoGET(profileCtx, "/accounts/profile/", &profile, providers.WithoutAuthHook()); err != nil {
		return nil, fmt.Errorf("failed to fetch profile after login: %w", err)
	}

	session, err := s.sessions.CreateSession(ctx, profile, tokens)
	if err != nil {
		return nil, err
	}

	logging.Info("User logged in", "user_id", profile.ID.String(), "role", profile.Role.String())
	return session, nil
}

// Logout drops the session. The upstream has no logout endpoint; simple-jwt
// tokens just age out.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	s.sessions.DeleteSession(ctx, sessionID)
}

// CurrentUser re-fetches the profile from upstream and refreshes the copy
// stored on the session, so role or membership changes show up without a
// re-login.
func (s *AuthService) CurrentUser(ctx context.Context) (*dtos.UserProfile, error) {
	session := auth.GetSession(ctx)
	if session == nil {
		return nil, common.ErrSessionNotFound
	}

	var profile dtos.UserProfile
	if _, err := s.provider.DoGET(ctx, "/accounts/profile/", &profile); err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateUser(ctx, session.SessionID, profile); err != nil {
		logging.Warn("Failed to refresh session profile", "session_id", session.SessionID, "error", err)
	}
	return &profile, nil
}

// Register forwards a registration request. Anonymous flow, no session.
func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/accounts/register/", req, nil, providers.WithoutAuthHook())
	return err
}

// ForgotPassword starts or re-sends the OTP reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, req dtos.ForgotPasswordRequest) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/accounts/forgot-password/", req, nil, providers.WithoutAuthHook())
	return err
}

// VerifyOTP checks the reset code without consuming it.
func (s *AuthService) VerifyOTP(ctx context.Context, req dtos.VerifyOTPRequest) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/accounts/verify-otp/", req, nil, providers.WithoutAuthHook())
	return err
}

// ResetPassword completes the OTP flow with the new password.
func (s *AuthService) ResetPassword(ctx context.Context, req dtos.ResetPasswordRequest) error {
	_, err := s.provider.DoJSON(ctx, http.MethodPost, "/accounts/reset-password/", req, nil, providers.WithoutAuthHook())
	return err
}
