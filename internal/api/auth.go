package api

import (
	"encoding/json"
	"net/http"
	"time"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/middleware"
	"hckonnect/hubgate/internal/models/dtos"
)

// LoginHandler handles POST /auth/login
//
// @Summary      Sign in
// @Description  Exchanges credentials for a gateway session. The session id
// @Description  is set as an HttpOnly cookie and echoed in the body for
// @Description  non-browser clients.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.APIResponse[dtos.UserProfile]
// @Failure      401  {object}  responses.APIResponse[any]
// @Router       /auth/login [post]
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		session, err := deps.Services.Auth.Login(r.Context(), req)
		if err != nil {
			respondWithAPIError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    session.SessionID,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		deps.Metrics.SessionsActive.Inc()

		result := struct {
			SessionID string           `json:"session_id"`
			User      dtos.UserProfile `json:"user"`
			ExpiresAt time.Time        `json:"expires_at"`
		}{session.SessionID, session.User, session.ExpiresAt}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// LogoutHandler handles POST /auth/logout
func LogoutHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session := auth.GetSession(r.Context()); session != nil {
			deps.Services.Auth.Logout(r.Context(), session.SessionID)
			deps.Metrics.SessionsActive.Dec()
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		result := map[string]string{"message": "Signed out"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// MeHandler handles GET /auth/me
//
// @Summary      Current user
// @Description  Returns the fresh upstream profile for the session user.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.APIResponse[dtos.UserProfile]
// @Router       /auth/me [get]
func MeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := deps.Services.Auth.CurrentUser(r.Context())
		if err != nil {
			respondWithAPIError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, profile)
	}
}

// RegisterHandler handles POST /auth/register
func RegisterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Auth.Register(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Account created, please sign in"}
		respondWithSuccess(w, http.StatusCreated, &result)
	}
}

// ForgotPasswordHandler handles POST /auth/forgot-password
func ForgotPasswordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Auth.ForgotPassword(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "OTP sent"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// VerifyOTPHandler handles POST /auth/verify-otp
func VerifyOTPHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.VerifyOTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Auth.VerifyOTP(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "OTP verified"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// ResetPasswordHandler handles POST /auth/reset-password
func ResetPasswordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := deps.Services.Auth.ResetPassword(r.Context(), req); err != nil {
			respondWithAPIError(w, err)
			return
		}

		result := map[string]string{"message": "Password updated, please sign in"}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}
