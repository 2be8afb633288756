package store

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richezza/rmv/internal/metrics"
	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/storage"
)

func TestMalformedCollectionReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	require.NoError(t, m.SetItem(ctx, storage.KeyInvoices, `[{"id":"i1",`))

	assert.Empty(t, s.Invoices.GetAll(ctx))
	_, ok := s.Invoices.GetByID(ctx, "i1")
	assert.False(t, ok)
	assert.Empty(t, s.Invoices.ByStatus(ctx, models.InvoicePaid))
	assert.GreaterOrEqual(t, s.Metrics().GetDecodeFailures(), int64(3))
}

func TestWrongShapeReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	require.NoError(t, m.SetItem(ctx, storage.KeyClients, `{"id":"c1"}`))
	assert.Empty(t, s.Clients.GetAll(ctx))

	require.NoError(t, m.SetItem(ctx, storage.KeyClients, `null`))
	assert.Empty(t, s.Clients.GetAll(ctx))
}

func TestMalformedRecordIsSkipped(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	require.NoError(t, m.SetItem(ctx, storage.KeyClients,
		`[{"id":"c1","name":"Acme Co"},{"id":"c2","createdAt":"yesterday"},{"id":"c3","name":"Initech"}]`))

	all := s.Clients.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, "c3", all[1].ID)
	assert.Equal(t, int64(1), s.Metrics().GetDecodeFailures())

	_, ok := s.Clients.GetByID(ctx, "c2")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Clients.Count(ctx))
}

func TestCreateAfterMalformedRecord(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)
	require.NoError(t, m.SetItem(ctx, storage.KeyEmployees, `[{"id":"old","salary":"4000"}]`))

	s.Employees.Create(ctx, models.Employee{ID: "e1", Name: "Maria Santos"})
	s.Employees.Create(ctx, models.Employee{ID: "e2", Name: "David Chen"})

	got, ok := s.Employees.GetByID(ctx, "e2")
	require.True(t, ok, "a create is readable even when an older record is malformed")
	assert.Equal(t, "David Chen", got.Name)
	assert.Len(t, s.Employees.GetAll(ctx), 2)

	// an untyped patch can store a value T cannot decode; only that record drops out
	s.Clients.Create(ctx, acme("c1"))
	s.Clients.Create(ctx, acme("c2"))
	s.Clients.Update(ctx, "c1", map[string]any{"zipCode": 62701})

	_, ok = s.Clients.GetByID(ctx, "c2")
	assert.True(t, ok)
	s.Clients.Create(ctx, acme("c3"))
	_, ok = s.Clients.GetByID(ctx, "c3")
	assert.True(t, ok)
	assert.Len(t, s.Clients.GetAll(ctx), 2)

	raw, _, err := m.GetItem(ctx, storage.KeyEmployees)
	require.NoError(t, err)
	assert.Contains(t, raw, `"salary":"4000"`, "the malformed record is kept in storage")
}

func TestCreateOverMalformedCollectionStartsFresh(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)
	require.NoError(t, m.SetItem(ctx, storage.KeyClients, `not json`))

	s.Clients.Create(ctx, acme("c1"))

	all := s.Clients.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "c1", all[0].ID)
}

func TestUnavailableMediumNeverFails(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	s := New(brokenMedium{err: errUnavailable}, WithLogger(slog.New(slog.DiscardHandler)), WithMetrics(m))

	// none of these may panic or surface the error
	s.Clients.Create(ctx, acme("c1"))
	name := "x"
	s.Clients.Update(ctx, "c1", models.ClientPatch{Name: &name})
	s.Clients.Delete(ctx, "c1")
	s.Clients.Clear(ctx)
	s.Session.SetCurrentUser(ctx, models.User{ID: "u1"})
	s.Session.Logout(ctx)
	s.ClearAll(ctx)
	s.Import(ctx, s.Export(ctx))

	assert.Empty(t, s.Clients.GetAll(ctx))
	_, ok := s.Clients.GetByID(ctx, "c1")
	assert.False(t, ok)
	_, ok = s.Session.CurrentUser(ctx)
	assert.False(t, ok)

	assert.Positive(t, m.GetReadFailures())
	assert.Positive(t, m.GetWriteFailures())
	assert.Zero(t, m.GetWrites())
}

func TestQuotaExceededDropsWrite(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemory()
	s := New(storage.WithQuota(inner, 300), WithLogger(slog.New(slog.DiscardHandler)))

	s.Clients.Create(ctx, acme("c1"))
	require.Len(t, s.Clients.GetAll(ctx), 1)

	for i := 0; i < 5; i++ {
		s.Clients.Create(ctx, acme("more"))
	}

	assert.Len(t, s.Clients.GetAll(ctx), 1, "writes past the quota are dropped, earlier data stays")
	assert.Positive(t, s.Metrics().GetWriteFailures())
}

func TestCanceledContextDropsWrite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Clients.Create(ctx, acme("c1"))

	assert.Empty(t, s.Clients.GetAll(context.Background()))
	assert.Positive(t, s.Metrics().GetWriteFailures())
}
