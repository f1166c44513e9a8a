package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/adapter/localstore"
	"rentdesk/internal/domain"
)

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(filepath.Join(t.TempDir(), "state", "rentdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEmptyStoreDefaults(t *testing.T) {
	s := openStore(t)

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := s.SavedUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	dark, err := s.DarkMode()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestSessionRoundTrip(t *testing.T) {
	s := openStore(t)
	u := &domain.User{ID: "u1", Name: "Ana Souza", Email: "ana@test", Role: domain.RoleAdmin, Active: true}

	require.NoError(t, s.SaveSession("tok-123", u))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	saved, err := s.SavedUser()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, *u, *saved)

	// Saving again overwrites in place.
	require.NoError(t, s.SaveSession("tok-456", u))
	token, err = s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)
}

func TestClearSessionKeepsTheme(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.SetDarkMode(true))
	require.NoError(t, s.SaveSession("tok", &domain.User{ID: "u1"}))

	require.NoError(t, s.ClearSession())

	token, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := s.SavedUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	dark, err := s.DarkMode()
	require.NoError(t, err)
	assert.True(t, dark, "theme must survive logout")
}

func TestSaveSessionWithoutUserDropsStaleRecord(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.SaveSession("tok", &domain.User{ID: "u1"}))
	require.NoError(t, s.SaveSession("tok-2", nil))

	user, err := s.SavedUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetDarkMode(true))
	require.NoError(t, s.Close())

	s, err = localstore.Open(path)
	require.NoError(t, err)
	defer s.Close()

	dark, err := s.DarkMode()
	require.NoError(t, err)
	assert.True(t, dark)
}
