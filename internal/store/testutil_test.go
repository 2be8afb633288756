package store

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/richezza/rmv/internal/metrics"
	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/storage"
)

// ============================================================================
// STORE SETUP HELPERS
// ============================================================================

// newTestStore builds a store over a fresh in-memory medium
func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	m := storage.NewMemory()
	return New(m, WithLogger(slog.New(slog.DiscardHandler)), WithMetrics(metrics.New())), m
}

// brokenMedium fails every call with err
type brokenMedium struct {
	err error
}

func (b brokenMedium) GetItem(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenMedium) SetItem(context.Context, string, string) error        { return b.err }
func (b brokenMedium) RemoveItem(context.Context, string) error             { return b.err }
func (b brokenMedium) Keys(context.Context) ([]string, error)               { return nil, b.err }

var errUnavailable = errors.New("storage unavailable")

// ============================================================================
// FIXTURES
// ============================================================================

var (
	day1 = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)
)

func acme(id string) models.Client {
	return models.Client{
		ID:        id,
		Name:      "Acme Co",
		Email:     "a@acme.com",
		Phone:     "555-0100",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
		CreatedAt: day1,
		UpdatedAt: day1,
	}
}

func employee(id, dept string, status models.EmployeeStatus) models.Employee {
	return models.Employee{
		ID:         id,
		EmployeeID: "EMP-" + id,
		Name:       "Employee " + id,
		Email:      id + "@rmv.test",
		Position:   "Clerk",
		Department: dept,
		HireDate:   day1,
		Salary:     3000,
		Allowances: models.Allowances{Housing: 300, Transport: 100},
		Deductions: models.Deductions{Tax: 250, Insurance: 50},
		BankAccount: models.BankAccount{
			AccountNumber: "000123",
			BankName:      "First Bank",
			RoutingNumber: "110000",
		},
		Status:    status,
		CreatedAt: day1,
		UpdatedAt: day1,
	}
}

func invoice(id, clientID string, status models.InvoiceStatus, total float64) models.Invoice {
	client := acme(clientID)
	return models.Invoice{
		ID:            id,
		InvoiceNumber: "INV-" + id,
		ClientID:      clientID,
		Client:        client,
		Date:          day1,
		DueDate:       day1.AddDate(0, 0, 30),
		Items: []models.InvoiceItem{
			{ID: id + "-1", Description: "Consulting", Quantity: 1, Rate: total, Amount: total},
		},
		Subtotal:  total,
		Total:     total,
		Status:    status,
		CreatedAt: day1,
		UpdatedAt: day1,
	}
}
