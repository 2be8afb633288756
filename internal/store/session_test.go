package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/storage"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, ok := s.Session.CurrentUser(ctx)
	assert.False(t, ok, "no user before sign-in")

	u := models.User{
		ID:         "2",
		Name:       "HR Manager",
		Email:      "hr@richezzamegavalue.com",
		Role:       models.RoleManager,
		Department: "Human Resources",
	}
	s.Session.SetCurrentUser(ctx, u)

	got, ok := s.Session.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, u, got)

	s.Session.Logout(ctx)
	_, ok = s.Session.CurrentUser(ctx)
	assert.False(t, ok, "no user after logout")

	s.Session.Logout(ctx)
}

func TestSessionIsIndependentOfCollections(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Session.SetCurrentUser(ctx, models.User{ID: "1", Name: "Admin User", Role: models.RoleAdmin})
	s.Clients.Create(ctx, acme("c1"))
	s.Clients.Clear(ctx)

	_, ok := s.Session.CurrentUser(ctx)
	assert.True(t, ok)

	s.Session.Logout(ctx)
	s.Clients.Create(ctx, acme("c2"))
	assert.Len(t, s.Clients.GetAll(ctx), 1)
}

func TestMalformedSessionReadsAsSignedOut(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)
	require.NoError(t, m.SetItem(ctx, storage.KeyCurrentUser, "{broken"))

	_, ok := s.Session.CurrentUser(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(1), s.Metrics().GetDecodeFailures())
}
