package client

import (
	"context"
	"io"
	"net/http"
)

// CurrentUser is the GET /auth/me payload.
type CurrentUser struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	RoleID         int    `json:"role_id"`
	ProfilePicture string `json:"profile_picture"`
}

// AuthClient covers the /auth endpoints. Login stores the session
// cookie in the client's jar; subsequent calls ride on it.
type AuthClient struct {
	c *Client
}

// Signup self-registers a user for a registration-allowed role.
func (a *AuthClient) Signup(ctx context.Context, fullName, email, password string, roleID int) error {
	body := map[string]any{
		"full_name": fullName,
		"email":     email,
		"password":  password,
		"role_id":   roleID,
	}
	return a.c.do(ctx, http.MethodPost, "/auth/signup", body, nil)
}

// Login authenticates and stores the session cookie.
func (a *AuthClient) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return a.c.do(ctx, http.MethodPost, "/auth/login", body, nil)
}

// Logout clears the server-side session cookie.
func (a *AuthClient) Logout(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me fetches the authenticated identity.
func (a *AuthClient) Me(ctx context.Context) (*CurrentUser, error) {
	var out CurrentUser
	if err := a.c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfilePicture uploads a replacement profile image.
func (a *AuthClient) UpdateProfilePicture(ctx context.Context, fileName string, file io.Reader) (string, error) {
	var out struct {
		ProfilePicture string `json:"profile_picture"`
	}
	if err := a.c.doMultipart(ctx, http.MethodPost, "/auth/me/profile-picture", fileName, file, &out); err != nil {
		return "", err
	}
	return out.ProfilePicture, nil
}

// GenerateOTP requests a password-reset code by email.
func (a *AuthClient) GenerateOTP(ctx context.Context, email string) error {
	return a.c.do(ctx, http.MethodPost, "/auth/otp/generate", map[string]string{"email": email}, nil)
}

// VerifyOTP consumes a reset code and sets a new password.
func (a *AuthClient) VerifyOTP(ctx context.Context, email, otp, newPassword string) error {
	body := map[string]string{"email": email, "otp": otp, "new_password": newPassword}
	return a.c.do(ctx, http.MethodPost, "/auth/otp/verify", body, nil)
}
