package store

import (
	"context"
	"encoding/json"

	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/storage"
)

// Session is the singleton slot holding the signed-in user. It is
// independent of the entity collections.
type Session struct {
	s *Store
}

// CurrentUser returns the stored user. An empty, unreadable or malformed slot
// reads as signed out.
func (ss *Session) CurrentUser(ctx context.Context) (models.User, bool) {
	value, ok := ss.s.read(ctx, storage.KeyCurrentUser)
	if !ok {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		ss.s.metrics.IncDecodeFailures()
		ss.s.logger.Warn("discarding malformed session user", "error", err)
		return models.User{}, false
	}
	return u, true
}

// SetCurrentUser replaces the stored user
func (ss *Session) SetCurrentUser(ctx context.Context, u models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		ss.s.metrics.IncWriteFailures()
		ss.s.logger.Error("error encoding session user", "error", err)
		return
	}
	ss.s.write(ctx, storage.KeyCurrentUser, string(data))
}

// Logout empties the slot
func (ss *Session) Logout(ctx context.Context) {
	ss.s.remove(ctx, storage.KeyCurrentUser)
}
