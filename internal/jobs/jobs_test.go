package jobs

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

type fakeMailer struct {
	to, subject, body string
	err               error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func TestSendEmailArgs(t *testing.T) {
	args := SendEmailArgs{}
	assert.Equal(t, "send_email", args.Kind())

	opts := args.InsertOpts()
	assert.Equal(t, river.QueueDefault, opts.Queue)
	assert.Equal(t, 3, opts.MaxAttempts)
}

func TestSendEmailWorker_Work(t *testing.T) {
	m := &fakeMailer{}
	w := NewSendEmailWorker(m)

	job := &river.Job[SendEmailArgs]{
		Args: SendEmailArgs{To: "a@b.c", Subject: "Welcome to Etree", Body: "Hello"},
	}
	require.NoError(t, w.Work(context.Background(), job))
	assert.Equal(t, "a@b.c", m.to)
	assert.Equal(t, "Welcome to Etree", m.subject)
	assert.Equal(t, "Hello", m.body)
}

func TestSendEmailWorker_Work_MailerFailure(t *testing.T) {
	m := &fakeMailer{err: errors.New("bridge down")}
	w := NewSendEmailWorker(m)

	job := &river.Job[SendEmailArgs]{Args: SendEmailArgs{To: "a@b.c"}}
	err := w.Work(context.Background(), job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a@b.c")
}

func TestSendEmailWorker_Work_Uninitialized(t *testing.T) {
	w := &SendEmailWorker{}
	assert.Error(t, w.Work(context.Background(), &river.Job[SendEmailArgs]{}))
}

func TestOTPCleanupArgs(t *testing.T) {
	args := OTPCleanupArgs{}
	assert.Equal(t, "otp_cleanup", args.Kind())

	opts := args.InsertOpts()
	assert.Equal(t, river.QueueDefault, opts.Queue)
	assert.Equal(t, 1, opts.MaxAttempts)
	assert.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
	assert.True(t, opts.UniqueOpts.ByQueue)
	assert.True(t, opts.UniqueOpts.ByArgs)
}

func TestNewOTPCleanupWorker_RetentionFloor(t *testing.T) {
	w := NewOTPCleanupWorker(nil, 0)
	assert.Equal(t, DefaultOTPRetention, w.retention)

	w = NewOTPCleanupWorker(nil, -time.Hour)
	assert.Equal(t, DefaultOTPRetention, w.retention)

	w = NewOTPCleanupWorker(nil, 48*time.Hour)
	assert.Equal(t, 48*time.Hour, w.retention)
}

func TestOTPCleanupWorker_Work_Uninitialized(t *testing.T) {
	w := NewOTPCleanupWorker(nil, time.Hour)
	assert.Error(t, w.Work(context.Background(), &river.Job[OTPCleanupArgs]{}))
}
