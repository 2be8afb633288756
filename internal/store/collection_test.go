package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/storage"
)

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	client := acme("c1")
	s.Clients.Create(ctx, client)
	require.Len(t, s.Clients.GetAll(ctx), 1)

	newEmail := "b@acme.com"
	s.Clients.Update(ctx, "c1", models.ClientPatch{Email: &newEmail})

	got, ok := s.Clients.GetByID(ctx, "c1")
	require.True(t, ok)
	assert.Equal(t, "b@acme.com", got.Email)
	assert.Equal(t, "Acme Co", got.Name, "unpatched fields must be unchanged")

	s.Clients.Delete(ctx, "c1")
	assert.Empty(t, s.Clients.GetAll(ctx))
}

func TestCreateThenGetByIDIsDeepEqual(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	emp := employee("e1", "Accounts", models.EmployeeActive)
	s.Employees.Create(ctx, emp)

	got, ok := s.Employees.GetByID(ctx, "e1")
	require.True(t, ok)
	assert.Equal(t, emp, got)

	inv := invoice("i1", "c1", models.InvoiceDraft, 120)
	inv.Notes = "net 30"
	s.Invoices.Create(ctx, inv)

	gotInv, ok := s.Invoices.GetByID(ctx, "i1")
	require.True(t, ok)
	assert.Equal(t, inv, gotInv)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	const n = 12
	for i := 0; i < n; i++ {
		s.Clients.Create(ctx, acme(fmt.Sprintf("c%02d", i)))
	}

	all := s.Clients.GetAll(ctx)
	require.Len(t, all, n)
	for i, c := range all {
		assert.Equal(t, fmt.Sprintf("c%02d", i), c.ID)
	}
	assert.Equal(t, n, s.Clients.Count(ctx))
}

func TestGetByIDMissing(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, ok := s.Clients.GetByID(ctx, "nope")
	assert.False(t, ok)

	s.Clients.Create(ctx, acme("c1"))
	_, ok = s.Clients.GetByID(ctx, "nope")
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("typed patch merges set fields only", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.Employees.Create(ctx, employee("e1", "Accounts", models.EmployeeActive))

		salary := 4200.0
		status := models.EmployeeInactive
		s.Employees.Update(ctx, "e1", models.EmployeePatch{Salary: &salary, Status: &status})

		want := employee("e1", "Accounts", models.EmployeeActive)
		want.Salary = 4200
		want.Status = models.EmployeeInactive

		got, ok := s.Employees.GetByID(ctx, "e1")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("map patch merges", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.Clients.Create(ctx, acme("c1"))

		s.Clients.Update(ctx, "c1", map[string]any{"city": "Shelbyville", "taxId": "TX-9"})

		got, _ := s.Clients.GetByID(ctx, "c1")
		assert.Equal(t, "Shelbyville", got.City)
		assert.Equal(t, "TX-9", got.TaxID)
		assert.Equal(t, "a@acme.com", got.Email)
	})

	t.Run("nested objects are replaced whole", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.Employees.Create(ctx, employee("e1", "Accounts", models.EmployeeActive))

		s.Employees.Update(ctx, "e1", map[string]any{"allowances": map[string]any{"medical": 75}})

		got, _ := s.Employees.GetByID(ctx, "e1")
		assert.Equal(t, models.Allowances{Medical: 75}, got.Allowances)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		s, m := newTestStore(t)
		s.Clients.Create(ctx, acme("c1"))
		before, _, _ := m.GetItem(ctx, storage.KeyClients)
		writes := s.Metrics().GetWrites()

		name := "Ghost"
		s.Clients.Update(ctx, "missing", models.ClientPatch{Name: &name})

		after, _, _ := m.GetItem(ctx, storage.KeyClients)
		assert.Equal(t, before, after)
		assert.Equal(t, writes, s.Metrics().GetWrites(), "no write should happen for an unknown id")
	})

	t.Run("patch that is not an object is ignored", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.Clients.Create(ctx, acme("c1"))

		s.Clients.Update(ctx, "c1", []string{"nope"})

		got, _ := s.Clients.GetByID(ctx, "c1")
		assert.Equal(t, acme("c1"), got)
	})

	t.Run("fields unknown to the type survive", func(t *testing.T) {
		s, m := newTestStore(t)
		require.NoError(t, m.SetItem(ctx, storage.KeyClients,
			`[{"id":"c1","name":"Acme Co","legacyCode":"X1"}]`))

		s.Clients.Update(ctx, "c1", map[string]any{"name": "Acme Ltd"})

		raw, _, _ := m.GetItem(ctx, storage.KeyClients)
		assert.Contains(t, raw, `"legacyCode":"X1"`)
		assert.Contains(t, raw, `"name":"Acme Ltd"`)
	})
}

func TestDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	first := acme("dup")
	second := acme("dup")
	second.Name = "Second Co"
	s.Clients.Create(ctx, first)
	s.Clients.Create(ctx, second)
	s.Clients.Create(ctx, acme("other"))
	require.Len(t, s.Clients.GetAll(ctx), 3, "duplicates coexist")

	got, _ := s.Clients.GetByID(ctx, "dup")
	assert.Equal(t, "Acme Co", got.Name, "GetByID returns the first match")

	city := "Capital City"
	s.Clients.Update(ctx, "dup", models.ClientPatch{City: &city})
	all := s.Clients.GetAll(ctx)
	assert.Equal(t, "Capital City", all[0].City, "Update touches the first match")
	assert.Equal(t, "Springfield", all[1].City, "later duplicates are left alone")

	s.Clients.Delete(ctx, "dup")
	all = s.Clients.GetAll(ctx)
	require.Len(t, all, 1, "Delete removes every record sharing the id")
	assert.Equal(t, "other", all[0].ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.Clients.Create(ctx, acme("c1"))
	s.Clients.Create(ctx, acme("c2"))

	s.Clients.Delete(ctx, "c1")
	s.Clients.Delete(ctx, "c1")

	all := s.Clients.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "c2", all[0].ID)

	_, ok := s.Clients.GetByID(ctx, "c1")
	assert.False(t, ok)

	// deleting from a collection that was never written is also fine
	s.Leave.Delete(ctx, "anything")
	assert.Empty(t, s.Leave.GetAll(ctx))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)
	s.Clients.Create(ctx, acme("c1"))
	s.Employees.Create(ctx, employee("e1", "Accounts", models.EmployeeActive))
	s.Session.SetCurrentUser(ctx, models.User{ID: "u1", Name: "Admin", Role: models.RoleAdmin})
	require.NoError(t, m.SetItem(ctx, storage.KeySettings, `{"currency":"USD"}`))
	require.NoError(t, m.SetItem(ctx, "unrelated", "keep"))

	s.Clients.Clear(ctx)
	assert.Empty(t, s.Clients.GetAll(ctx))
	assert.Len(t, s.Employees.GetAll(ctx), 1, "Clear only affects its own collection")

	s.ClearAll(ctx)
	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"unrelated"}, keys, "ClearAll removes only application keys")

	_, ok := s.Session.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestGetAllReturnsNonNilSlice(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	assert.NotNil(t, s.Payroll.GetAll(ctx))

	require.NoError(t, m.SetItem(ctx, storage.KeyPayroll, "null"))
	assert.NotNil(t, s.Payroll.GetAll(ctx))
	assert.Empty(t, s.Payroll.GetAll(ctx))
}

func TestUpdateInvoiceItems(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.Invoices.Create(ctx, invoice("i1", "c1", models.InvoiceDraft, 100))

	total := 0.0
	s.Invoices.Update(ctx, "i1", models.InvoicePatch{Items: &[]models.InvoiceItem{}, Total: &total})

	got, ok := s.Invoices.GetByID(ctx, "i1")
	require.True(t, ok)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items, "an explicit empty list clears the items")
	assert.Zero(t, got.Total)

	// a patch without items leaves them alone
	s.Invoices.Create(ctx, invoice("i2", "c1", models.InvoiceDraft, 50))
	sent := models.InvoiceSent
	s.Invoices.Update(ctx, "i2", models.InvoicePatch{Status: &sent})
	got, _ = s.Invoices.GetByID(ctx, "i2")
	assert.Len(t, got.Items, 1)
}
