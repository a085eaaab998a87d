package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"etree.io/etree/internal/fieldform"
)

// User is the wire representation of a user account.
type User struct {
	UserID         string    `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	RoleID         int       `json:"role_id"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profile_picture"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserUpdateInput is the partial-update payload; nil fields stay
// untouched server-side.
type UserUpdateInput struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	RoleID   *int    `json:"role_id,omitempty"`
}

// UsersClient covers /users and the per-user field-value endpoints.
type UsersClient struct {
	c *Client
}

// CreateUser provisions an account; the actor's role must be allowed
// to create users of the target role.
func (u *UsersClient) CreateUser(ctx context.Context, fullName, email, password string, roleID int) (*User, error) {
	body := map[string]any{
		"full_name": fullName,
		"email":     email,
		"password":  password,
		"role_id":   roleID,
	}
	var out User
	if err := u.c.do(ctx, http.MethodPost, "/users/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsersByRole lists accounts of a role.
func (u *UsersClient) ListUsersByRole(ctx context.Context, roleID int, activeOnly bool) ([]User, error) {
	path := fmt.Sprintf("/users/role/%d", roleID)
	if activeOnly {
		path += "?active_only=true"
	}
	var out []User
	err := u.c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// GetUser fetches one account.
func (u *UsersClient) GetUser(ctx context.Context, userID string) (*User, error) {
	var out User
	if err := u.c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies a partial update.
func (u *UsersClient) UpdateUser(ctx context.Context, userID string, in UserUpdateInput) (*User, error) {
	var out User
	if err := u.c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateUser disables an account without deleting it.
func (u *UsersClient) DeactivateUser(ctx context.Context, userID string) error {
	return u.c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/deactivate", nil, nil)
}

// GetFields fetches the merged field form. Empty targetUserID means
// the actor's own form.
func (u *UsersClient) GetFields(ctx context.Context, targetUserID string) ([]fieldform.Entry, error) {
	path := "/users/me/fields"
	if targetUserID != "" {
		path += "?target_user_id=" + url.QueryEscape(targetUserID)
	}
	var out []fieldform.Entry
	err := u.c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// UpdateField submits a field value for the target user.
func (u *UsersClient) UpdateField(ctx context.Context, targetUserID string, fieldID int, value any) error {
	path := fmt.Sprintf("/users/me/fields/%d", fieldID)
	if targetUserID != "" {
		path += "?target_user_id=" + url.QueryEscape(targetUserID)
	}
	return u.c.do(ctx, http.MethodPost, path, map[string]any{"value": value}, nil)
}

// UploadDocument uploads a file for a document field.
func (u *UsersClient) UploadDocument(ctx context.Context, targetUserID string, fieldID int, fileName string, file io.Reader) error {
	path := fmt.Sprintf("/users/me/fields/%d/upload", fieldID)
	if targetUserID != "" {
		path += "?target_user_id=" + url.QueryEscape(targetUserID)
	}
	return u.c.doMultipart(ctx, http.MethodPost, path, fileName, file, nil)
}

// DownloadDocument fetches the stored file and the server-suggested
// filename.
func (u *UsersClient) DownloadDocument(ctx context.Context, targetUserID string, fieldID int) ([]byte, string, error) {
	path := fmt.Sprintf("/users/me/fields/%d/download", fieldID)
	if targetUserID != "" {
		path += "?target_user_id=" + url.QueryEscape(targetUserID)
	}
	return u.c.download(ctx, path)
}

// DeleteDocument removes the stored file and its value record.
func (u *UsersClient) DeleteDocument(ctx context.Context, targetUserID string, fieldID int) error {
	path := fmt.Sprintf("/users/me/fields/%d/file", fieldID)
	if targetUserID != "" {
		path += "?target_user_id=" + url.QueryEscape(targetUserID)
	}
	return u.c.do(ctx, http.MethodDelete, path, nil, nil)
}
