package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"etree.io/etree/ent"
	entotp "etree.io/etree/ent/otp"
	"etree.io/etree/internal/pkg/logger"
)

// DefaultOTPRetention keeps used and expired OTP rows around briefly
// for audit before they are purged.
const DefaultOTPRetention = 24 * time.Hour

// OTPCleanupArgs is a periodic maintenance job that removes expired and
// consumed one-time codes.
type OTPCleanupArgs struct{}

// Kind returns the job kind identifier for periodic OTP cleanup.
func (OTPCleanupArgs) Kind() string { return "otp_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued per hour.
func (OTPCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// OTPCleanupWorker deletes OTP rows past the retention window.
type OTPCleanupWorker struct {
	river.WorkerDefaults[OTPCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewOTPCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the one-day default.
func NewOTPCleanupWorker(entClient *ent.Client, retention time.Duration) *OTPCleanupWorker {
	if retention <= 0 {
		retention = DefaultOTPRetention
	}
	return &OTPCleanupWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work removes used codes and codes whose expiry is past the retention
// window.
func (w *OTPCleanupWorker) Work(ctx context.Context, _ *river.Job[OTPCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("otp cleanup worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.entClient.Otp.Delete().
		Where(
			entotp.Or(
				entotp.IsUsedEQ(true),
				entotp.ExpiresAtLT(cutoff),
			),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete stale otps before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("otp cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
	)
	return nil
}
