// Package ids generates record identifiers
package ids

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New returns an identifier for a record created now
func New() string {
	return NewAt(time.Now())
}

// NewAt returns base-36 Unix milliseconds of t followed by a base-36 random
// suffix. Collisions are unlikely but not ruled out.
func NewAt(t time.Time) string {
	u := uuid.New()
	// bytes 8..15 of a v4 UUID are random apart from the variant bits
	suffix := binary.BigEndian.Uint64(u[8:16])
	return strconv.FormatInt(t.UnixMilli(), 36) + strconv.FormatUint(suffix, 36)
}
