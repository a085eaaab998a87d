package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/config"
	"etree.io/etree/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

func TestBridgeMailer_Send(t *testing.T) {
	var got sendEmailReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-email", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "sent"})
	}))
	defer srv.Close()

	m := NewBridgeMailer(config.MailConfig{BridgeURL: srv.URL, From: "no-reply@etree.local"})
	err := m.Send(context.Background(), "user@example.com", "Welcome to Etree", "Hello!")
	require.NoError(t, err)

	assert.Equal(t, []string{"user@example.com"}, got.To)
	assert.Equal(t, "no-reply@etree.local", got.From)
	assert.Equal(t, "Welcome to Etree", got.Subject)
	assert.Equal(t, "Hello!", got.Content)
}

func TestBridgeMailer_Send_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewBridgeMailer(config.MailConfig{BridgeURL: srv.URL, From: "x@y.z"})
	err := m.Send(context.Background(), "user@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestBridgeMailer_Send_BridgeError(t *testing.T) {
	// 200 OK but the bridge reports a delivery failure in the body
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "mailbox unavailable"})
	}))
	defer srv.Close()

	m := NewBridgeMailer(config.MailConfig{BridgeURL: srv.URL, From: "x@y.z"})
	err := m.Send(context.Background(), "user@example.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox unavailable")
}

func TestBridgeMailer_Send_NonJSONBodyOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	m := NewBridgeMailer(config.MailConfig{BridgeURL: srv.URL, From: "x@y.z"})
	assert.NoError(t, m.Send(context.Background(), "user@example.com", "s", "b"))
}

func TestFromConfig(t *testing.T) {
	assert.IsType(t, LogMailer{}, FromConfig(config.MailConfig{}))
	assert.IsType(t, &BridgeMailer{}, FromConfig(config.MailConfig{BridgeURL: "http://bridge:8025"}))
}

func TestLogMailer_Send(t *testing.T) {
	assert.NoError(t, LogMailer{}.Send(context.Background(), "a@b.c", "s", "b"))
}
