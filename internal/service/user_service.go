package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"etree.io/etree/ent"
	entotp "etree.io/etree/ent/otp"
	entuser "etree.io/etree/ent/user"
	"etree.io/etree/internal/config"
	"etree.io/etree/internal/domain"
	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/pkg/logger"
	"etree.io/etree/internal/storage"
)

// allowed profile picture content types
var profilePictureTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// UserService manages user accounts, credentials and profile media.
type UserService struct {
	client     *ent.Client
	media      *storage.MediaStore
	dispatcher *domain.EventDispatcher
	policy     config.PasswordPolicy
	otpTTL     time.Duration
	pool       *ants.Pool
}

// NewUserService creates a new UserService. The pool runs deferred
// cleanup work (old profile pictures); nil means cleanup runs inline.
func NewUserService(client *ent.Client, media *storage.MediaStore, dispatcher *domain.EventDispatcher, authCfg config.AuthConfig, pool *ants.Pool) *UserService {
	otpTTL := authCfg.OTPLifetime
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}
	return &UserService{
		client:     client,
		media:      media,
		dispatcher: dispatcher,
		policy:     authCfg.PasswordPolicy,
		otpTTL:     otpTTL,
		pool:       pool,
	}
}

// CreateUserInput is the payload for creating an account.
type CreateUserInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int    `json:"role_id" binding:"required"`
}

// Create provisions a user account and announces it (the welcome-mail
// handler listens for the event).
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*ent.User, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, apperrors.ErrBadRequest.WithMessage("full name cannot be empty")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") {
		return nil, apperrors.ErrBadRequest.WithMessage("invalid email address")
	}
	if err := ValidatePassword(s.policy, in.Password); err != nil {
		return nil, err
	}

	role, err := s.client.Role.Get(ctx, in.RoleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRoleNotFound.WithMessagef("role with id %d does not exist", in.RoleID)
		}
		return nil, fmt.Errorf("get role %d: %w", in.RoleID, err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id: %w", err)
	}

	user, err := s.client.User.Create().
		SetID(id.String()).
		SetFullName(fullName).
		SetEmail(email).
		SetPasswordHash(hash).
		SetRoleID(in.RoleID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrEmailTaken.WithMessagef("email %s is already registered", email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.dispatchUserCreated(ctx, user, role.Name, in.Password)
	return user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (*ent.User, error) {
	user, err := s.client.User.Query().
		Where(entuser.IDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound.WithMessagef("user with id %s not found", userID)
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetWithRole fetches a user with its role edge loaded.
func (s *UserService) GetWithRole(ctx context.Context, userID string) (*ent.User, error) {
	user, err := s.client.User.Query().
		Where(entuser.IDEQ(userID)).
		WithRole().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound.WithMessagef("user with id %s not found", userID)
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetByEmail fetches a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	user, err := s.client.User.Query().
		Where(entuser.EmailEQ(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound.WithMessagef("user with email %s not found", email)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// ListByRole returns users holding a role, optionally only active ones.
func (s *UserService) ListByRole(ctx context.Context, roleID int, activeOnly bool) ([]*ent.User, error) {
	q := s.client.User.Query().
		Where(entuser.RoleIDEQ(roleID))
	if activeOnly {
		q = q.Where(entuser.IsActiveEQ(true))
	}
	return q.Order(ent.Asc(entuser.FieldFullName)).All(ctx)
}

// UpdateUserInput is the payload for partially updating an account.
type UpdateUserInput struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleID   *int    `json:"role_id"`
}

// Update applies a partial update to a user account.
func (s *UserService) Update(ctx context.Context, userID string, in UpdateUserInput) (*ent.User, error) {
	update := s.client.User.UpdateOneID(userID)

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !strings.Contains(email, "@") {
			return nil, apperrors.ErrBadRequest.WithMessage("invalid email address")
		}
		update.SetEmail(email)
	}
	if in.FullName != nil && strings.TrimSpace(*in.FullName) != "" {
		update.SetFullName(strings.TrimSpace(*in.FullName))
	}
	if in.Password != nil {
		if err := ValidatePassword(s.policy, *in.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		update.SetPasswordHash(hash)
	}
	if in.RoleID != nil {
		if _, err := s.client.Role.Get(ctx, *in.RoleID); err != nil {
			if ent.IsNotFound(err) {
				return nil, apperrors.ErrRoleNotFound.WithMessagef("role with id %d does not exist", *in.RoleID)
			}
			return nil, fmt.Errorf("get role %d: %w", *in.RoleID, err)
		}
		update.SetRoleID(*in.RoleID)
	}

	user, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound.WithMessagef("user with id %s not found", userID)
		}
		if ent.IsConstraintError(err) {
			return nil, apperrors.ErrEmailTaken.WithErr(err)
		}
		return nil, fmt.Errorf("update user %s: %w", userID, err)
	}
	return user, nil
}

// Deactivate flips a user to inactive, keeping the record.
func (s *UserService) Deactivate(ctx context.Context, userID string) (*ent.User, error) {
	user, err := s.client.User.UpdateOneID(userID).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound.WithMessagef("user with id %s not found", userID)
		}
		return nil, fmt.Errorf("deactivate user %s: %w", userID, err)
	}

	if s.dispatcher != nil {
		event := domain.NewEvent(domain.EventUserDeactivated, "user", userID, userID, nil)
		if err := s.dispatcher.Dispatch(ctx, event); err != nil {
			logger.Warn("User deactivation event dispatch failed", zap.Error(err))
		}
	}
	return user, nil
}

// Delete removes a user account entirely.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.client.User.DeleteOneID(userID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrUserNotFound.WithMessagef("user with id %s not found", userID)
		}
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}

// Authenticate verifies credentials and returns the user with its role.
// Inactive accounts and unknown emails produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*ent.User, error) {
	user, err := s.client.User.Query().
		Where(
			entuser.EmailEQ(strings.ToLower(strings.TrimSpace(email))),
			entuser.IsActiveEQ(true),
		).
		WithRole().
		Only(ctx)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials.WithMessage("invalid credentials or account is not active")
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials.WithMessage("invalid credentials or account is not active")
	}
	return user, nil
}

// GenerateOTP creates a one-time password-reset code and announces it
// (the OTP-mail handler delivers it).
func (s *UserService) GenerateOTP(ctx context.Context, email string) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := GenerateOTPCode()
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate otp id: %w", err)
	}
	_, err = s.client.Otp.Create().
		SetID(id.String()).
		SetUserID(user.ID).
		SetCode(code).
		SetExpiresAt(time.Now().Add(s.otpTTL)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if s.dispatcher != nil {
		payload, perr := domain.OTPRequestedPayload{
			UserID:    user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			Code:      code,
			ExpiresIn: s.otpTTL.String(),
		}.ToJSON()
		if perr == nil {
			event := domain.NewEvent(domain.EventOTPRequested, "user", user.ID, user.ID, payload)
			if derr := s.dispatcher.Dispatch(ctx, event); derr != nil {
				logger.Warn("OTP event dispatch failed", zap.Error(derr))
			}
		}
	}
	return nil
}

// VerifyOTP checks a code and, when valid, resets the user's password
// and marks the code used. Codes are single-use and expire.
func (s *UserService) VerifyOTP(ctx context.Context, email, code, newPassword string) (*ent.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	otp, err := s.client.Otp.Query().
		Where(
			entotp.UserIDEQ(user.ID),
			entotp.CodeEQ(code),
			entotp.IsUsedEQ(false),
			entotp.ExpiresAtGT(time.Now()),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, fmt.Errorf("get otp: %w", err)
	}

	if err := ValidatePassword(s.policy, newPassword); err != nil {
		return nil, err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.client.User.UpdateOneID(user.ID).SetPasswordHash(hash).Exec(ctx); err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}
	if err := s.client.Otp.UpdateOneID(otp.ID).SetIsUsed(true).Exec(ctx); err != nil {
		return nil, fmt.Errorf("mark otp used: %w", err)
	}

	if s.dispatcher != nil {
		payload, perr := domain.OTPRequestedPayload{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		}.ToJSON()
		if perr == nil {
			event := domain.NewEvent(domain.EventPasswordReset, "user", user.ID, user.ID, payload)
			if derr := s.dispatcher.Dispatch(ctx, event); derr != nil {
				logger.Warn("Password reset event dispatch failed", zap.Error(derr))
			}
		}
	}
	return user, nil
}

// UpdateProfilePicture stores a new profile picture and replaces the
// previous one. The old file is removed on the worker pool so the
// request does not wait on disk cleanup.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID, fileName, contentType string, r io.Reader) (string, error) {
	if !slices.Contains(profilePictureTypes, contentType) {
		return "", apperrors.ErrBadRequest.WithMessage(
			"invalid file type, only JPEG, PNG, GIF, and WEBP are allowed")
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	storedName, err := s.media.SavePublic(fileName, r)
	if err != nil {
		return "", fmt.Errorf("store profile picture: %w", err)
	}

	if err := s.client.User.UpdateOneID(userID).
		SetProfilePicture("/media/" + storedName).
		Exec(ctx); err != nil {
		if cleanupErr := s.media.DeletePublic(storedName); cleanupErr != nil {
			logger.Warn("Failed to remove orphaned profile picture",
				zap.String("stored_name", storedName), zap.Error(cleanupErr))
		}
		return "", fmt.Errorf("update profile picture: %w", err)
	}

	if old := user.ProfilePicture; old != "" {
		s.cleanupOldPicture(old)
	}

	return "/media/" + storedName, nil
}

func (s *UserService) cleanupOldPicture(oldURL string) {
	parts := strings.Split(oldURL, "/")
	oldName := parts[len(parts)-1]
	task := func() {
		if err := s.media.DeletePublic(oldName); err != nil {
			logger.Warn("Failed to delete old profile picture",
				zap.String("stored_name", oldName), zap.Error(err))
		}
	}
	if s.pool == nil {
		task()
		return
	}
	if err := s.pool.Submit(task); err != nil {
		logger.Warn("Profile picture cleanup submission failed", zap.Error(err))
		task()
	}
}

func (s *UserService) dispatchUserCreated(ctx context.Context, user *ent.User, roleName, password string) {
	if s.dispatcher == nil {
		return
	}
	payload, err := domain.UserCreatedPayload{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		RoleName: roleName,
		Password: password,
	}.ToJSON()
	if err != nil {
		return
	}
	event := domain.NewEvent(domain.EventUserCreated, "user", user.ID, user.ID, payload)
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		logger.Warn("User created event dispatch failed",
			zap.String("user_id", user.ID), zap.Error(err))
	}
}
