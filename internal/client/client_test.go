package client

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []string
	msgs  []string
}

func (r *recordingNotifier) Notify(kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, kind)
	r.msgs = append(r.msgs, message)
}

func respond(w http.ResponseWriter, code int, status, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": status, "message": message, "data": data,
	})
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roles/", r.URL.Path)
		respond(w, http.StatusOK, "success", "ok", []map[string]any{
			{"id": 1, "name": "Admin"},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	roles, err := c.Roles.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Admin", roles[0].Name)
}

func TestClient_NonSuccessStatusIsError(t *testing.T) {
	// 200 OK with a non-success envelope must still fail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, "error", "role not found", nil)
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	c, err := New(srv.URL, WithNotifier(notifier))
	require.NoError(t, err)

	_, err = c.Roles.GetRole(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, "role not found", apiErr.Message)

	assert.Equal(t, []string{KindError}, notifier.kinds)
	assert.Equal(t, []string{"role not found"}, notifier.msgs)
}

func TestClient_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Roles.ListRoles(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_CookiePersistsAcrossRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "tok-1", Path: "/"})
			respond(w, http.StatusOK, "success", "logged in", map[string]any{
				"access_token": "tok-1", "token_type": "bearer",
			})
		case "/auth/me":
			cookie, err := r.Cookie("access_token")
			if err != nil || cookie.Value != "tok-1" {
				respond(w, http.StatusUnauthorized, "error", "authentication required", nil)
				return
			}
			respond(w, http.StatusOK, "success", "ok", map[string]any{
				"user_id": "u1", "email": "a@b.c",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	require.NoError(t, c.Auth.Login(context.Background(), "a@b.c", "pw"))

	me, err := c.Auth.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.UserID)
}

func TestBusyController(t *testing.T) {
	var transitions []bool
	b := &BusyController{OnChange: func(busy bool) {
		transitions = append(transitions, busy)
	}}

	assert.False(t, b.Busy())

	// overlapping acquires fire OnChange on the edges only
	b.Acquire()
	b.Acquire()
	assert.True(t, b.Busy())
	b.Release()
	assert.True(t, b.Busy())
	b.Release()
	assert.False(t, b.Busy())

	assert.Equal(t, []bool{true, false}, transitions)

	// extra release must not underflow
	b.Release()
	assert.False(t, b.Busy())
}

func TestClient_BusyDuringRequest(t *testing.T) {
	b := &BusyController{}
	var busyDuring bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		busyDuring = b.Busy()
		respond(w, http.StatusOK, "success", "ok", []any{})
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithBusyController(b))
	require.NoError(t, err)

	_, err = c.Roles.ListRoles(context.Background())
	require.NoError(t, err)
	assert.True(t, busyDuring)
	assert.False(t, b.Busy())
}

func TestFieldsClient_ValidatorsCached(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/user-required-fields/validators-by-type/text", r.URL.Path)
		respond(w, http.StatusOK, "success", "ok", map[string]string{
			"min_length": "number", "max_length": "number",
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	first, err := c.Fields.GetValidatorsByType(context.Background(), "text")
	require.NoError(t, err)
	second, err := c.Fields.GetValidatorsByType(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

func TestClient_MultipartUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "cv.pdf", header.Filename)
		assert.Equal(t, "pdf-bytes", string(body))

		respond(w, http.StatusOK, "success", "uploaded", map[string]any{
			"field_id": 7, "value": map[string]any{"name": "x.pdf", "size_mb": 0.001},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	err = c.doMultipart(context.Background(), http.MethodPost, "/upload", "cv.pdf",
		strings.NewReader("pdf-bytes"), nil)
	require.NoError(t, err)
}

func TestClient_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	data, name, err := c.download(context.Background(), "/file")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Equal(t, "report.pdf", name)
}

func TestClient_DownloadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusForbidden, "error", "you do not have permission to access this file", nil)
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	c, err := New(srv.URL, WithNotifier(notifier))
	require.NoError(t, err)

	_, _, err = c.download(context.Background(), "/file")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "you do not have permission to access this file", apiErr.Message)
	assert.Equal(t, []string{KindError}, notifier.kinds)
}

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"quoted", `attachment; filename="cv.pdf"`, "cv.pdf"},
		{"unquoted", `attachment; filename=cv.pdf`, "cv.pdf"},
		{"no filename", `inline`, ""},
		{"empty", ``, ""},
		{"extra spacing", `attachment;  filename="a b.png"`, "a b.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromDisposition(tt.header))
		})
	}
}
