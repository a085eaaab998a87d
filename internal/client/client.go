// Package client is a Go client for the Etree admin REST API. It keeps
// the session cookie in a jar, decodes the {status, message, data}
// envelope, and reports progress through injected Notifier and
// BusyController capabilities.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
)

// Notifier receives user-facing notifications. Kind is one of
// KindSuccess or KindError.
type Notifier interface {
	Notify(kind, message string)
}

// Notification kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// nopNotifier drops notifications when none is injected.
type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

// BusyController tracks in-flight requests with a reference count, so
// overlapping calls cannot flicker or prematurely clear a busy
// indicator. OnChange fires on edge transitions only.
type BusyController struct {
	mu       sync.Mutex
	count    int
	OnChange func(busy bool)
}

// Acquire marks one request in flight.
func (b *BusyController) Acquire() {
	b.mu.Lock()
	b.count++
	first := b.count == 1
	onChange := b.OnChange
	b.mu.Unlock()
	if first && onChange != nil {
		onChange(true)
	}
}

// Release marks one request finished.
func (b *BusyController) Release() {
	b.mu.Lock()
	if b.count > 0 {
		b.count--
	}
	last := b.count == 0
	onChange := b.OnChange
	b.mu.Unlock()
	if last && onChange != nil {
		onChange(false)
	}
}

// Busy reports whether any request is in flight.
func (b *BusyController) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count > 0
}

// APIError is a request that completed but carried a non-success
// envelope (or a failure HTTP status without one).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// envelope mirrors the server response body. Any status other than
// "success" is a failure regardless of the HTTP code.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to one Etree server. Safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	notifier Notifier
	busy     *BusyController

	Auth        *AuthClient
	Users       *UsersClient
	Roles       *RolesClient
	Permissions *PermissionsClient
	Fields      *FieldsClient
}

// Option configures a Client.
type Option func(*Client)

// WithNotifier injects the notification sink.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithBusyController injects the busy-state tracker.
func WithBusyController(b *BusyController) Option {
	return func(c *Client) { c.busy = b }
}

// WithHTTPClient replaces the underlying HTTP client. The cookie jar
// is still installed if the client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the given base URL (e.g.
// "http://localhost:8080/api").
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		notifier: nopNotifier{},
		busy:     &BusyController{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	c.Auth = &AuthClient{c: c}
	c.Users = &UsersClient{c: c}
	c.Roles = &RolesClient{c: c}
	c.Permissions = &PermissionsClient{c: c}
	c.Fields = &FieldsClient{c: c, validators: make(map[string]map[string]string)}
	return c, nil
}

// do performs one JSON request. The response envelope message is
// returned through the APIError on failure and notified; out, when
// non-nil, receives the decoded data.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	c.busy.Acquire()
	defer c.busy.Release()

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Notify(KindError, err.Error())
		return err
	}
	defer resp.Body.Close()

	return c.decodeEnvelope(resp, out)
}

// doMultipart performs one multipart upload with a single file part
// named "file".
func (c *Client) doMultipart(ctx context.Context, method, path, fileName string, file io.Reader, out any) error {
	c.busy.Acquire()
	defer c.busy.Release()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Notify(KindError, err.Error())
		return err
	}
	defer resp.Body.Close()

	return c.decodeEnvelope(resp, out)
}

func (c *Client) decodeEnvelope(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notifier.Notify(KindError, err.Error())
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		c.notifier.Notify(KindError, apiErr.Message)
		return apiErr
	}
	if env.Status != "success" {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		c.notifier.Notify(KindError, env.Message)
		return apiErr
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// download performs a raw (non-envelope) GET and returns the body
// bytes plus the filename suggested by Content-Disposition.
func (c *Client) download(ctx context.Context, path string) ([]byte, string, error) {
	c.busy.Acquire()
	defer c.busy.Release()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Notify(KindError, err.Error())
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		var env envelope
		message := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			message = env.Message
		}
		c.notifier.Notify(KindError, message)
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read download: %w", err)
	}
	return data, filenameFromDisposition(resp.Header.Get("Content-Disposition")), nil
}

func filenameFromDisposition(header string) string {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, "filename="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}
