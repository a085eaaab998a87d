package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MediaStore {
	t.Helper()
	base := t.TempDir()
	store, err := NewMediaStore(filepath.Join(base, "media"), filepath.Join(base, "media", "protected"))
	require.NoError(t, err)
	return store
}

func TestNewMediaStore_CreatesDirs(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "a", "b")
	protected := filepath.Join(base, "a", "b", "p")

	_, err := NewMediaStore(dir, protected)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.DirExists(t, protected)
}

func TestSavePublic(t *testing.T) {
	store := newTestStore(t)

	name, err := store.SavePublic("Avatar.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	// randomized name, lowercased extension preserved
	assert.True(t, strings.HasSuffix(name, ".png"), "got %q", name)
	assert.NotContains(t, name, "Avatar")

	path, err := store.PublicPath(name)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// two saves of the same original never collide
	other, err := store.SavePublic("Avatar.PNG", strings.NewReader("more"))
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestSaveOpenDeleteProtected(t *testing.T) {
	store := newTestStore(t)

	name, err := store.SaveProtected("cv.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	f, err := store.OpenProtected(name)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.DeleteProtected(name))
	_, err = store.OpenProtected(name)
	assert.Error(t, err)

	// deleting again is not an error
	assert.NoError(t, store.DeleteProtected(name))
}

func TestDeletePublic_Missing(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.DeletePublic("nope.png"))
}

func TestSafeJoin_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	bad := []string{
		"",
		"../secret",
		"../../etc/passwd",
		"a/b.pdf",
		"/etc/passwd",
	}
	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := store.OpenProtected(name)
			assert.Error(t, err)
			assert.Error(t, store.DeleteProtected(name))
			_, err = store.PublicPath(name)
			assert.Error(t, err)
		})
	}
}

func TestSave_NoExtension(t *testing.T) {
	store := newTestStore(t)
	name, err := store.SavePublic("README", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, name, ".")
}
