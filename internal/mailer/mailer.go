// Package mailer delivers transactional email through an HTTP SMTP bridge.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"etree.io/etree/internal/config"
	"etree.io/etree/internal/pkg/logger"
)

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// BridgeMailer posts messages to an SMTP bridge service as JSON.
type BridgeMailer struct {
	url    string
	from   string
	client *http.Client
}

// NewBridgeMailer creates a mailer for the configured bridge.
func NewBridgeMailer(cfg config.MailConfig) *BridgeMailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BridgeMailer{
		url:    cfg.BridgeURL,
		from:   cfg.From,
		client: &http.Client{Timeout: timeout},
	}
}

type sendEmailReq struct {
	To      []string `json:"to"`
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	Content string   `json:"content"`
}

// Send posts the message to the bridge's /send-email endpoint.
func (m *BridgeMailer) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(sendEmailReq{
		To:      []string{to},
		From:    m.from,
		Subject: subject,
		Content: body,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url+"/send-email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to smtp bridge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("smtp bridge returned status %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil {
		if errMsg, ok := result["error"].(string); ok && errMsg != "" {
			return fmt.Errorf("smtp bridge error: %s", errMsg)
		}
	}
	return nil
}

// LogMailer logs messages instead of delivering them. Used when no
// bridge URL is configured (development).
type LogMailer struct{}

// Send logs the message at info level.
func (LogMailer) Send(_ context.Context, to, subject, body string) error {
	logger.Info("Email delivery skipped (no mail bridge configured)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_length", len(body)),
	)
	return nil
}

// FromConfig picks the bridge mailer when a URL is configured, the log
// mailer otherwise.
func FromConfig(cfg config.MailConfig) Mailer {
	if cfg.BridgeURL == "" {
		return LogMailer{}
	}
	return NewBridgeMailer(cfg)
}
