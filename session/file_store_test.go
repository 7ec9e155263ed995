package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-hr-console/session"
)

func newFileStore(t *testing.T) *session.FileStore {
	t.Helper()
	store, err := session.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newFileStore(t)

	user := &session.User{ID: "u-1", Username: "hr_admin", Role: session.RoleAdmin}
	require.NoError(t, store.Save("access-1", "refresh-1", user))

	require.Equal(t, "access-1", store.AccessToken())
	require.Equal(t, "refresh-1", store.RefreshToken())
	got := store.User()
	require.NotNil(t, got)
	require.Equal(t, "hr_admin", got.Username)
	require.True(t, got.IsAdmin())
}

func TestFileStoreSetAccessTokenKeepsRest(t *testing.T) {
	store := newFileStore(t)
	require.NoError(t, store.Save("access-1", "refresh-1", &session.User{Username: "hr_admin"}))

	require.NoError(t, store.SetAccessToken("access-2"))

	require.Equal(t, "access-2", store.AccessToken())
	require.Equal(t, "refresh-1", store.RefreshToken())
	require.NotNil(t, store.User())
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := newFileStore(t)
	require.NoError(t, store.Save("access-1", "refresh-1", nil))

	require.NoError(t, store.Clear())
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	require.Nil(t, store.User())

	// Clearing an already-empty store is a no-op, not an error.
	require.NoError(t, store.Clear())
}

func TestFileStoreCorruptFileReadsAsAnonymous(t *testing.T) {
	dir := t.TempDir()
	store, err := session.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("access-1", "refresh-1", nil))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("{not json"), 0o600))

	require.Empty(t, store.AccessToken())
	require.True(t, session.Session{AccessToken: store.AccessToken()}.Anonymous())
}

func TestAnonymousIgnoresLeftoverFields(t *testing.T) {
	s := session.Session{RefreshToken: "still-here", User: &session.User{Username: "ghost"}}
	require.True(t, s.Anonymous())

	s.AccessToken = "tok"
	require.False(t, s.Anonymous())
}
