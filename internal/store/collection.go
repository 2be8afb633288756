package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/richezza/rmv/internal/models"
)

// Collection is the CRUD surface over one stored sequence of T.
//
// Reads decode the full sequence each time; there is no cache. Writes work
// on the raw JSON elements, so fields unknown to T survive an Update or a
// Delete of some other record.
type Collection[T models.Record] struct {
	s   *Store
	key string
}

func newCollection[T models.Record](s *Store, key string) *Collection[T] {
	return &Collection[T]{s: s, key: key}
}

// Key returns the storage key backing the collection
func (c *Collection[T]) Key() string {
	return c.key
}

// GetAll returns every record in insertion order. A collection that is not a
// JSON array reads as empty; inside an array only the elements that fail to
// decode as T are skipped.
func (c *Collection[T]) GetAll(ctx context.Context) []T {
	elems := c.s.readElements(ctx, c.key)
	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			c.s.metrics.IncDecodeFailures()
			c.s.logger.Warn("skipping malformed record",
				"key", c.key, "index", i, "id", elementID(elem), "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// GetByID returns the first record with the given id
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, bool) {
	for _, item := range c.GetAll(ctx) {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the records matching keep, in insertion order
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) []T {
	all := c.GetAll(ctx)
	out := make([]T, 0, len(all))
	for _, item := range all {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns the number of stored records
func (c *Collection[T]) Count(ctx context.Context) int {
	return len(c.GetAll(ctx))
}

// Create appends record. Duplicate ids are not detected; a later duplicate is
// shadowed by the first match in GetByID and Update.
func (c *Collection[T]) Create(ctx context.Context, record T) {
	data, err := json.Marshal(record)
	if err != nil {
		c.s.metrics.IncWriteFailures()
		c.s.logger.Error("error encoding record", "key", c.key, "id", record.RecordID(), "error", err)
		return
	}
	elems := c.s.readElements(ctx, c.key)
	elems = append(elems, data)
	c.s.writeElements(ctx, c.key, elems)
}

// Update shallow-merges patch over the first record with the given id.
// patch must encode to a JSON object (a typed *Patch struct or a
// map[string]any); its top-level fields replace the stored ones and nested
// objects are replaced whole. An unknown id is a silent no-op.
func (c *Collection[T]) Update(ctx context.Context, id string, patch any) {
	fields, err := patchFields(patch)
	if err != nil {
		c.s.logger.Warn("ignoring update with invalid patch", "key", c.key, "id", id, "error", err)
		return
	}

	elems := c.s.readElements(ctx, c.key)
	for i, elem := range elems {
		if elementID(elem) != id {
			continue
		}

		var stored map[string]json.RawMessage
		if err := json.Unmarshal(elem, &stored); err != nil || stored == nil {
			c.s.metrics.IncDecodeFailures()
			c.s.logger.Warn("skipping update of malformed record", "key", c.key, "id", id, "error", err)
			return
		}
		for k, v := range fields {
			stored[k] = v
		}
		merged, err := json.Marshal(stored)
		if err != nil {
			c.s.metrics.IncWriteFailures()
			c.s.logger.Error("error encoding merged record", "key", c.key, "id", id, "error", err)
			return
		}
		elems[i] = merged
		c.s.writeElements(ctx, c.key, elems)
		return
	}
}

// Delete removes every record with the given id. Deleting an unknown id is
// harmless.
func (c *Collection[T]) Delete(ctx context.Context, id string) {
	elems := c.s.readElements(ctx, c.key)
	kept := elems[:0]
	for _, elem := range elems {
		if elementID(elem) != id {
			kept = append(kept, elem)
		}
	}
	c.s.writeElements(ctx, c.key, kept)
}

// Clear removes the whole collection
func (c *Collection[T]) Clear(ctx context.Context) {
	c.s.remove(ctx, c.key)
}

// elementID extracts the "id" field of a raw record. Elements that are not
// objects have no id.
func elementID(elem json.RawMessage) string {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(elem, &head); err != nil {
		return ""
	}
	return head.ID
}

// patchFields encodes patch and splits it into top-level fields
func patchFields(patch any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("patch is not an object: %w", err)
	}
	return fields, nil
}
