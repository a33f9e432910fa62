package dtos

import "hckonnect/hubgate/internal/constants"

// LoginRequest is the body for POST /accounts/login/
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair carries the upstream simple-jwt token pair. The refresh token is
// stored but never exchanged; session lifetime tracks the access token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResponse mirrors the upstream login envelope:
// { "msg": "...", "data": { "token": { "access": ..., "refresh": ... } } }
type LoginResponse struct {
	Msg  string `json:"msg"`
	Data struct {
		Token TokenPair `json:"token"`
	} `json:"data"`
}

// RegisterRequest is the body for POST /accounts/register/
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role,omitempty"`
	UniversityID string `json:"university_id,omitempty"`
}

// ForgotPasswordRequest starts (or re-sends) the OTP reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
	Type  string `json:"type,omitempty"` // "send" | "resend"
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Membership is the optional community membership attached to a student
// profile.
type Membership struct {
	Community FlexID                   `json:"community"`
	Role      constants.MembershipRole `json:"role"`
}

// UserProfile mirrors GET /accounts/profile/
type UserProfile struct {
	ID           FlexID             `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	Role         constants.UserRole `json:"role"`
	ProfileImage string             `json:"profile_image,omitempty"`
	Course       string             `json:"course,omitempty"`
	Interests    string             `json:"interests,omitempty"`
	Bio          string             `json:"bio,omitempty"`
	LinkedinLink string             `json:"linkedin_link,omitempty"`
	GithubLink   string             `json:"github_link,omitempty"`
	UniversityID string             `json:"university_id,omitempty"`
	Membership   *Membership        `json:"membership,omitempty"`
}
