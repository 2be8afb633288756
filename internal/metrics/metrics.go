// Package metrics counts record store traffic, including the failures the
// store absorbs instead of returning
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks store statistics using atomic operations for thread-safety
type Metrics struct {
	Reads          atomic.Int64
	Writes         atomic.Int64
	ReadFailures   atomic.Int64
	WriteFailures  atomic.Int64
	DecodeFailures atomic.Int64
	StartTime      time.Time
}

// New creates a new Metrics instance
func New() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncReads increments the medium reads counter
func (m *Metrics) IncReads() {
	m.Reads.Add(1)
}

// IncWrites increments the successful writes counter
func (m *Metrics) IncWrites() {
	m.Writes.Add(1)
}

// IncReadFailures increments the counter of reads the medium failed
func (m *Metrics) IncReadFailures() {
	m.ReadFailures.Add(1)
}

// IncWriteFailures increments the counter of dropped writes
func (m *Metrics) IncWriteFailures() {
	m.WriteFailures.Add(1)
}

// IncDecodeFailures increments the counter of stored values that failed to parse
func (m *Metrics) IncDecodeFailures() {
	m.DecodeFailures.Add(1)
}

func (m *Metrics) GetReads() int64          { return m.Reads.Load() }
func (m *Metrics) GetWrites() int64         { return m.Writes.Load() }
func (m *Metrics) GetReadFailures() int64   { return m.ReadFailures.Load() }
func (m *Metrics) GetWriteFailures() int64  { return m.WriteFailures.Load() }
func (m *Metrics) GetDecodeFailures() int64 { return m.DecodeFailures.Load() }

// Snapshot represents a point-in-time snapshot of metrics
type Snapshot struct {
	Reads          int64     `json:"reads"`
	Writes         int64     `json:"writes"`
	ReadFailures   int64     `json:"read_failures"`
	WriteFailures  int64     `json:"write_failures"`
	DecodeFailures int64     `json:"decode_failures"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		Reads:          m.GetReads(),
		Writes:         m.GetWrites(),
		ReadFailures:   m.GetReadFailures(),
		WriteFailures:  m.GetWriteFailures(),
		DecodeFailures: m.GetDecodeFailures(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).String(),
	}
}
