// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"keygate/internal/delivery/http/middleware"
	"keygate/internal/delivery/http/response"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the account and session endpoints.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	cookies   *CookieManager
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accountUC usecase.AccountUsecase, sessionUC usecase.SessionUsecase, cookies *CookieManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
		sessionUC: sessionUC,
		cookies:   cookies,
		logger:    logger,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type verifyEmailRequest struct {
	Code string `json:"code" validate:"required"`
}

type loginRequest struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// userView is the sanitized account shape returned to clients.
type userView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func newUserView(user *entity.User) userView {
	return userView{ID: user.ID, Username: user.Username, Email: user.Email}
}

type authResponse struct {
	AccessToken string   `json:"accessToken"`
	User        userView `json:"user"`
}

// Signup handles new account registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetSignupCookie(c, output.UserID.String())

	return response.Success(c, http.StatusCreated, map[string]string{"email": output.Email}, "Verification code sent")
}

// VerifyEmail consumes the emailed verification code and activates the account.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	userID, err := h.signupUserID(c)
	if err != nil {
		return err
	}

	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.VerifyEmail(c.Request().Context(), userID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearSignupCookie(c)
	h.cookies.SetRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, authResponse{
		AccessToken: output.AccessToken,
		User:        newUserView(output.User),
	}, "Email verified")
}

// ResendVerification regenerates and mails the verification code.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	userID, err := h.signupUserID(c)
	if err != nil {
		return err
	}

	if err := h.accountUC.ResendVerificationCode(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Verification code sent")
}

// Login authenticates an email-or-username identity.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identity:        req.Identity,
		Password:        req.Password,
		OldRefreshToken: h.cookies.RefreshToken(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, authResponse{
		AccessToken: output.AccessToken,
		User:        newUserView(output.User),
	}, "Login successful")
}

// Refresh rotates the refresh cookie into a fresh token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	rawToken := h.cookies.RefreshToken(c)
	if rawToken == "" {
		return domainerrors.ErrRefreshTokenMissing
	}

	output, err := h.accountUC.Refresh(c.Request().Context(), rawToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, authResponse{
		AccessToken: output.AccessToken,
		User:        newUserView(output.User),
	}, "Token refreshed")
}

// Logout ends the current session. The cookie is cleared no matter what; an
// unknown or already-rotated token is not an error worth surfacing here.
func (h *AuthHandler) Logout(c echo.Context) error {
	rawToken := h.cookies.RefreshToken(c)
	if rawToken != "" {
		if err := h.accountUC.Logout(c.Request().Context(), rawToken); err != nil &&
			!errors.Is(err, domainerrors.ErrRefreshTokenNotFound) {
			return errors.WithStack(err)
		}
	}

	h.cookies.ClearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// ForgotPassword mails a password reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.accountUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reset link sent")
}

// ResetPassword consumes a mailed reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	rawToken := c.Param("token")
	if rawToken == "" {
		return domainerrors.ErrResetTokenMissing
	}
	email := c.QueryParam("email")
	if email == "" {
		return domainerrors.ErrResetEmailMissing
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.accountUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       email,
		RawToken:    rawToken,
		NewPassword: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset")
}

// Me returns the account behind the presented access token.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := contextUserID(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetAuthUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// Sessions lists the caller's active device sessions.
func (h *AuthHandler) Sessions(c echo.Context) error {
	userID, err := contextUserID(c)
	if err != nil {
		return err
	}

	sessions, err := h.sessionUC.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "")
}

// RevokeAllSessions logs the caller out everywhere.
func (h *AuthHandler) RevokeAllSessions(c echo.Context) error {
	userID, err := contextUserID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "All sessions revoked")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) signupUserID(c echo.Context) (uuid.UUID, error) {
	signupID := h.cookies.SignupID(c)
	if signupID == "" {
		return uuid.Nil, domainerrors.ErrSignupCookieMissing
	}

	userID, err := uuid.Parse(signupID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSignupCookieMissing
	}

	return userID, nil
}

func contextUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return userID, nil
}
