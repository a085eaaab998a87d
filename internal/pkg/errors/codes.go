package errors

import "net/http"

// Predefined application errors. Handlers and services return these
// (optionally via WithErr / WithMessage) and the error-handler
// middleware renders the envelope.
var (
	// Generic.
	ErrInternal       = New("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	ErrBadRequest     = New("BAD_REQUEST", "invalid request", http.StatusBadRequest)
	ErrNotFound       = New("NOT_FOUND", "resource not found", http.StatusNotFound)
	ErrValidation     = New("VALIDATION_ERROR", "validation failed", http.StatusUnprocessableEntity)
	ErrConflict       = New("CONFLICT", "resource already exists", http.StatusConflict)
	ErrTooManyRequest = New("TOO_MANY_REQUESTS", "too many requests", http.StatusTooManyRequests)

	// Auth.
	ErrUnauthorized       = New("UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
	ErrForbidden          = New("FORBIDDEN", "insufficient permissions", http.StatusForbidden)
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized)
	ErrInvalidToken       = New("INVALID_TOKEN", "invalid or expired token", http.StatusUnauthorized)
	ErrWeakPassword       = New("WEAK_PASSWORD", "password does not meet requirements", http.StatusBadRequest)
	ErrInvalidOTP         = New("INVALID_OTP", "invalid or expired OTP", http.StatusBadRequest)

	// Users.
	ErrUserNotFound  = New("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	ErrEmailTaken    = New("EMAIL_TAKEN", "email already registered", http.StatusConflict)
	ErrUserInactive  = New("USER_INACTIVE", "user account is inactive", http.StatusForbidden)
	ErrSignupClosed  = New("SIGNUP_CLOSED", "registration is not allowed for this role", http.StatusForbidden)
	ErrRoleNotOpen   = New("ROLE_NOT_CREATABLE", "you cannot create users with this role", http.StatusForbidden)
	ErrMediaNotFound = New("MEDIA_NOT_FOUND", "file not found", http.StatusNotFound)

	// Roles and permissions.
	ErrRoleNotFound       = New("ROLE_NOT_FOUND", "role not found", http.StatusNotFound)
	ErrRoleNameTaken      = New("ROLE_NAME_TAKEN", "role name already exists", http.StatusConflict)
	ErrRoleProtected      = New("ROLE_PROTECTED", "built-in roles cannot be modified", http.StatusForbidden)
	ErrPermissionNotFound = New("PERMISSION_NOT_FOUND", "permission not found", http.StatusNotFound)

	// Required fields.
	ErrFieldNotFound   = New("FIELD_NOT_FOUND", "required field not found", http.StatusNotFound)
	ErrFieldNameTaken  = New("FIELD_NAME_TAKEN", "a field with this name already exists for the role", http.StatusConflict)
	ErrInvalidFieldDef = New("INVALID_FIELD_DEFINITION", "invalid field definition", http.StatusUnprocessableEntity)

	// Field values.
	ErrValueNotAllowed = New("VALUE_NOT_ALLOWED", "you are not allowed to fill this field", http.StatusForbidden)
	ErrValueLocked     = New("VALUE_LOCKED", "this field is not editable", http.StatusForbidden)
	ErrInvalidValue    = New("INVALID_VALUE", "value does not satisfy field constraints", http.StatusUnprocessableEntity)
	ErrFileTooLarge    = New("FILE_TOO_LARGE", "file exceeds the maximum allowed size", http.StatusRequestEntityTooLarge)
	ErrBadFileType     = New("BAD_FILE_TYPE", "file extension is not allowed", http.StatusUnsupportedMediaType)
)
