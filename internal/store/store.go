// Package store is the record store: typed collections over a storage.Medium.
//
// Every operation is fail-soft. Medium failures and malformed stored data are
// logged and counted, then degrade to an empty result or a dropped write.
// No method returns an error.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/richezza/rmv/internal/metrics"
	"github.com/richezza/rmv/internal/models"
	"github.com/richezza/rmv/internal/storage"
)

// Store holds one facade per collection plus the session slot
type Store struct {
	medium  storage.Medium
	logger  *slog.Logger
	metrics *metrics.Metrics

	Clients    *Clients
	Employees  *Employees
	Invoices   *Invoices
	Payroll    *Payroll
	Attendance *Attendance
	Leave      *Leave
	Session    *Session
}

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithLogger sets the logger failures are reported to
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics sets the counters the store records traffic in
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New builds a Store over medium
func New(medium storage.Medium, opts ...Option) *Store {
	s := &Store{
		medium:  medium,
		logger:  slog.Default(),
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Clients = &Clients{newCollection[models.Client](s, storage.KeyClients)}
	s.Employees = &Employees{newCollection[models.Employee](s, storage.KeyEmployees)}
	s.Invoices = &Invoices{newCollection[models.Invoice](s, storage.KeyInvoices)}
	s.Payroll = &Payroll{newCollection[models.PayrollEntry](s, storage.KeyPayroll)}
	s.Attendance = &Attendance{newCollection[models.AttendanceRecord](s, storage.KeyAttendance)}
	s.Leave = &Leave{newCollection[models.LeaveRequest](s, storage.KeyLeaveRequests)}
	s.Session = &Session{s: s}

	return s
}

// Metrics returns the store's counters
func (s *Store) Metrics() *metrics.Metrics {
	return s.metrics
}

// ClearAll removes every application key: collections, session and settings
func (s *Store) ClearAll(ctx context.Context) {
	for _, key := range storage.AppKeys() {
		s.remove(ctx, key)
	}
}

// ============================================================================
// MEDIUM ACCESS
// Every medium call goes through these helpers so failures are handled in
// one place.
// ============================================================================

// read returns the raw value under key. ok is false when the key is absent or
// the medium failed.
func (s *Store) read(ctx context.Context, key string) (string, bool) {
	s.metrics.IncReads()
	value, ok, err := s.medium.GetItem(ctx, key)
	if err != nil {
		s.metrics.IncReadFailures()
		s.logger.Error("error reading from storage", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

// write stores value under key, dropping the write on failure
func (s *Store) write(ctx context.Context, key, value string) {
	if err := s.medium.SetItem(ctx, key, value); err != nil {
		s.metrics.IncWriteFailures()
		s.logger.Error("error writing to storage", "key", key, "bytes", len(value), "error", err)
		return
	}
	s.metrics.IncWrites()
}

func (s *Store) remove(ctx context.Context, key string) {
	if err := s.medium.RemoveItem(ctx, key); err != nil {
		s.metrics.IncWriteFailures()
		s.logger.Error("error removing from storage", "key", key, "error", err)
		return
	}
	s.metrics.IncWrites()
}

// readElements returns the stored sequence under key as raw JSON elements.
// Absent, unreadable and malformed values all come back empty.
func (s *Store) readElements(ctx context.Context, key string) []json.RawMessage {
	value, ok := s.read(ctx, key)
	if !ok {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(value), &elems); err != nil {
		s.metrics.IncDecodeFailures()
		s.logger.Warn("discarding malformed collection", "key", key, "error", err)
		return nil
	}
	return elems
}

// writeElements re-serialises the whole sequence under key
func (s *Store) writeElements(ctx context.Context, key string, elems []json.RawMessage) {
	if elems == nil {
		elems = []json.RawMessage{}
	}
	data, err := json.Marshal(elems)
	if err != nil {
		s.metrics.IncWriteFailures()
		s.logger.Error("error encoding collection", "key", key, "error", err)
		return
	}
	s.write(ctx, key, string(data))
}
