// Package jobs defines River background jobs for the Etree admin
// service.
package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"etree.io/etree/internal/mailer"
	"etree.io/etree/internal/pkg/logger"
)

// SendEmailArgs delivers one transactional email through the mail
// bridge. Enqueued by the domain event handlers (welcome mail, OTP
// codes) so request handlers never block on SMTP.
type SendEmailArgs struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Kind returns the job kind identifier for email delivery.
func (SendEmailArgs) Kind() string { return "send_email" }

// InsertOpts limits delivery attempts; stale OTP mail is useless.
func (SendEmailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
	}
}

// SendEmailWorker posts queued messages to the configured mailer.
type SendEmailWorker struct {
	river.WorkerDefaults[SendEmailArgs]
	mailer mailer.Mailer
}

// NewSendEmailWorker creates an email delivery worker.
func NewSendEmailWorker(m mailer.Mailer) *SendEmailWorker {
	return &SendEmailWorker{mailer: m}
}

// Work delivers one email.
func (w *SendEmailWorker) Work(ctx context.Context, job *river.Job[SendEmailArgs]) error {
	if w == nil || w.mailer == nil {
		return fmt.Errorf("send email worker is not initialized")
	}

	if err := w.mailer.Send(ctx, job.Args.To, job.Args.Subject, job.Args.Body); err != nil {
		return fmt.Errorf("send email to %s: %w", job.Args.To, err)
	}

	logger.Info("email delivered",
		zap.String("to", job.Args.To),
		zap.String("subject", job.Args.Subject),
	)
	return nil
}
