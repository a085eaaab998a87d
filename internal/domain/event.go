package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Account lifecycle
	EventUserCreated     EventType = "USER_CREATED"
	EventUserDeactivated EventType = "USER_DEACTIVATED"
	EventPasswordReset   EventType = "PASSWORD_RESET"
	EventOTPRequested    EventType = "OTP_REQUESTED"

	// Field data
	EventFieldValueSet     EventType = "FIELD_VALUE_SET"
	EventDocumentUploaded  EventType = "DOCUMENT_UPLOADED"
	EventDocumentDeleted   EventType = "DOCUMENT_DELETED"
	EventProfilePictureSet EventType = "PROFILE_PICTURE_SET"
)

// DomainEvent represents an immutable domain event.
type DomainEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserCreatedPayload is the payload for USER_CREATED events.
type UserCreatedPayload struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	RoleName string `json:"role_name"`
	// Password is the initial plaintext password, included so the
	// welcome-mail handler can relay it. Never persisted.
	Password string `json:"password"`
}

// ToJSON converts payload to JSON bytes.
func (p UserCreatedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// OTPRequestedPayload is the payload for OTP_REQUESTED events.
type OTPRequestedPayload struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Code      string `json:"code"`
	ExpiresIn string `json:"expires_in"`
}

// ToJSON converts payload to JSON bytes.
func (p OTPRequestedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FieldValuePayload is the payload for field data events.
type FieldValuePayload struct {
	TargetUserID string `json:"target_user_id"`
	FieldID      int    `json:"field_id"`
	FieldName    string `json:"field_name"`
	FieldType    string `json:"field_type"`
}

// ToJSON converts payload to JSON bytes.
func (p FieldValuePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
