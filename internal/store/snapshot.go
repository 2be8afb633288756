package store

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/richezza/rmv/internal/storage"
)

// Snapshot is the serialised form of every application key, keyed by
// storage key. Values are kept as the raw stored JSON.
type Snapshot struct {
	ExportedAt time.Time                  `json:"exportedAt"`
	Entries    map[string]json.RawMessage `json:"entries"`
}

// Export captures every present application key. Values that are not valid
// JSON are left out.
func (s *Store) Export(ctx context.Context) Snapshot {
	snap := Snapshot{
		ExportedAt: time.Now().UTC(),
		Entries:    make(map[string]json.RawMessage),
	}
	for _, key := range storage.AppKeys() {
		value, ok := s.read(ctx, key)
		if !ok {
			continue
		}
		if !json.Valid([]byte(value)) {
			s.metrics.IncDecodeFailures()
			s.logger.Warn("leaving malformed value out of snapshot", "key", key)
			continue
		}
		snap.Entries[key] = json.RawMessage(value)
	}
	return snap
}

// Import writes every entry of snap back to the medium. Keys that are not
// application keys are skipped; application keys missing from snap are left
// as they are.
func (s *Store) Import(ctx context.Context, snap Snapshot) {
	known := storage.AppKeys()
	for key, value := range snap.Entries {
		if !slices.Contains(known, key) {
			s.logger.Warn("skipping unknown snapshot key", "key", key)
			continue
		}
		s.write(ctx, key, string(value))
	}
}
