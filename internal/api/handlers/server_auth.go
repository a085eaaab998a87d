package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"etree.io/etree/internal/api/middleware"
	apperrors "etree.io/etree/internal/pkg/errors"
	"etree.io/etree/internal/pkg/logger"
	"etree.io/etree/internal/service"
)

// SignupRequest is the self-registration payload.
type SignupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int    `json:"role_id" binding:"required"`
}

// Signup handles POST /auth/signup. Only roles flagged as open for
// registration accept self-signup.
func (s *Server) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	role, err := s.roles.Get(c.Request.Context(), req.RoleID)
	if err != nil {
		Fail(c, err)
		return
	}
	if !role.RegistrationAllowed {
		Fail(c, apperrors.ErrRoleNotOpen.WithMessage("Given role does not have permission to signup"))
		return
	}

	user, err := s.users.Create(c.Request.Context(), service.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	Created(c, "User registered successfully", userToDTO(user))
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login. On success the session token is set
// as an HTTP-only cookie; the body also carries it for non-browser
// clients.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	roleName := ""
	if user.Edges.Role != nil {
		roleName = user.Edges.Role.Name
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Email, roleName, user.RoleID)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err), zap.String("user_id", user.ID))
		Fail(c, apperrors.ErrInternal.WithErr(err))
		return
	}

	s.setSessionCookie(c, token, int(s.jwtCfg.ExpiresIn.Seconds()))

	OK(c, "Login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_at":   expiresAt,
		"user":         userToDTO(user),
	})
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (s *Server) Logout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	OK(c, "Logged out successfully", nil)
}

// Me handles GET /auth/me.
func (s *Server) Me(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	user, err := s.users.GetWithRole(c.Request.Context(), userID)
	if err != nil {
		Fail(c, err)
		return
	}

	roleName := ""
	if user.Edges.Role != nil {
		roleName = user.Edges.Role.Name
	}
	OK(c, "Current user", gin.H{
		"user_id":         user.ID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"role":            roleName,
		"role_id":         user.RoleID,
		"profile_picture": user.ProfilePicture,
	})
}

// UpdateProfilePicture handles POST /auth/me/profile-picture. Accepts
// a multipart image upload and replaces the previous picture.
func (s *Server) UpdateProfilePicture(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		Fail(c, apperrors.ErrBadRequest.WithMessage("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}
	defer file.Close()

	userID := middleware.GetUserID(c.Request.Context())
	url, err := s.users.UpdateProfilePicture(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		Fail(c, err)
		return
	}

	OK(c, "Profile picture updated", gin.H{"profile_picture": url})
}

// OTPGenerateRequest asks for a password-reset code.
type OTPGenerateRequest struct {
	Email string `json:"email" binding:"required"`
}

// GenerateOTP handles POST /auth/otp/generate. The response is the
// same whether or not the account exists, so the endpoint cannot be
// used to probe for registered addresses.
func (s *Server) GenerateOTP(c *gin.Context) {
	var req OTPGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	if err := s.users.GenerateOTP(c.Request.Context(), req.Email); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPStatus == http.StatusNotFound {
			logger.Warn("otp requested for unknown email")
			OK(c, "If the email is registered, an OTP has been sent", nil)
			return
		}
		Fail(c, err)
		return
	}

	OK(c, "If the email is registered, an OTP has been sent", nil)
}

// OTPVerifyRequest carries a code and the replacement password.
type OTPVerifyRequest struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// VerifyOTP handles POST /auth/otp/verify. A valid, unexpired, unused
// code resets the password and consumes the code.
func (s *Server) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apperrors.ErrBadRequest.WithErr(err))
		return
	}

	if _, err := s.users.VerifyOTP(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		Fail(c, err)
		return
	}

	OK(c, "Password reset successfully", nil)
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.jwtCfg.Cookie, token, maxAge, "/", s.cookieDomain, s.cookieSecure, true)
}
