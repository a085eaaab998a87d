// Package notification bridges domain events to email delivery.
// Handlers registered on the event dispatcher enqueue River send_email
// jobs, so request handlers never block on the mail bridge.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"etree.io/etree/internal/domain"
	"etree.io/etree/internal/jobs"
)

// Triggers enqueues transactional mail in response to identity events:
// a welcome mail when an account is created and a reset-code mail when
// an OTP is requested.
type Triggers struct {
	riverClient *river.Client[pgx.Tx]
}

// NewTriggers creates the trigger service.
func NewTriggers(riverClient *river.Client[pgx.Tx]) *Triggers {
	return &Triggers{riverClient: riverClient}
}

// Register subscribes all email triggers on the dispatcher.
func (t *Triggers) Register(dispatcher *domain.EventDispatcher) {
	if t == nil || dispatcher == nil {
		return
	}
	dispatcher.Register(domain.EventUserCreated, t.onUserCreated)
	dispatcher.Register(domain.EventOTPRequested, t.onOTPRequested)
	dispatcher.Register(domain.EventPasswordReset, t.onPasswordReset)
}

func (t *Triggers) onUserCreated(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.UserCreatedPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		return fmt.Errorf("decode user created payload: %w", err)
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour account has been created with the role %s.\n\n"+
			"Email: %s\nPassword: %s\n\nPlease log in and change your password.\n",
		p.FullName, p.RoleName, p.Email, p.Password,
	)
	return t.enqueue(ctx, jobs.SendEmailArgs{
		To:      p.Email,
		Subject: "Welcome to Etree",
		Body:    body,
	})
}

func (t *Triggers) onOTPRequested(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.OTPRequestedPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		return fmt.Errorf("decode otp payload: %w", err)
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour password reset code is: %s\n\n"+
			"It expires in %s and can be used once.\n",
		p.FullName, p.Code, p.ExpiresIn,
	)
	return t.enqueue(ctx, jobs.SendEmailArgs{
		To:      p.Email,
		Subject: "Your password reset code",
		Body:    body,
	})
}

func (t *Triggers) onPasswordReset(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.OTPRequestedPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		return fmt.Errorf("decode password reset payload: %w", err)
	}

	return t.enqueue(ctx, jobs.SendEmailArgs{
		To:      p.Email,
		Subject: "Your password was changed",
		Body:    "Hello,\n\nYour password has just been reset. If this was not you, contact an administrator immediately.\n",
	})
}

func (t *Triggers) enqueue(ctx context.Context, args jobs.SendEmailArgs) error {
	if t.riverClient == nil {
		return nil
	}
	if _, err := t.riverClient.Insert(ctx, args, nil); err != nil {
		return fmt.Errorf("enqueue %s: %w", args.Kind(), err)
	}
	return nil
}
