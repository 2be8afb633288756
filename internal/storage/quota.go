package storage

import (
	"context"
	"fmt"
)

// quotaMedium rejects writes once the stored size would exceed limit bytes.
// Size is the sum of len(key)+len(value) over every key, which is roughly
// how browsers account localStorage.
type quotaMedium struct {
	Medium
	limit int
}

// WithQuota wraps m so that SetItem fails with ErrQuotaExceeded when the
// write would grow the total stored size past limit. A limit <= 0 returns m
// unchanged.
func WithQuota(m Medium, limit int) Medium {
	if limit <= 0 {
		return m
	}
	return &quotaMedium{Medium: m, limit: limit}
}

func (q *quotaMedium) SetItem(ctx context.Context, key, value string) error {
	used, err := q.usedExcluding(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to measure storage usage: %w", err)
	}
	if used+len(key)+len(value) > q.limit {
		return fmt.Errorf("writing %s (%d bytes, %d of %d in use): %w",
			key, len(value), used, q.limit, ErrQuotaExceeded)
	}
	return q.Medium.SetItem(ctx, key, value)
}

// usedExcluding sums the stored size of every key other than skip
func (q *quotaMedium) usedExcluding(ctx context.Context, skip string) (int, error) {
	keys, err := q.Keys(ctx)
	if err != nil {
		return 0, err
	}
	used := 0
	for _, k := range keys {
		if k == skip {
			continue
		}
		v, ok, err := q.GetItem(ctx, k)
		if err != nil {
			return 0, err
		}
		if ok {
			used += len(k) + len(v)
		}
	}
	return used, nil
}

// Close closes the wrapped medium when it supports closing
func (q *quotaMedium) Close() error {
	if c, ok := q.Medium.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
