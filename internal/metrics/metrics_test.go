package metrics

import (
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	m := New()

	if m == nil {
		t.Fatal("Expected New to return non-nil")
	}

	if m.GetReads() != 0 || m.GetWrites() != 0 {
		t.Errorf("Expected counters to start at 0, got reads=%d writes=%d", m.GetReads(), m.GetWrites())
	}
	if m.GetReadFailures() != 0 || m.GetWriteFailures() != 0 || m.GetDecodeFailures() != 0 {
		t.Errorf("Expected failure counters to start at 0, got %+v", m.GetSnapshot())
	}

	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestIncrements(t *testing.T) {
	tests := []struct {
		name string
		inc  func(*Metrics)
		get  func(*Metrics) int64
	}{
		{"reads", (*Metrics).IncReads, (*Metrics).GetReads},
		{"writes", (*Metrics).IncWrites, (*Metrics).GetWrites},
		{"read failures", (*Metrics).IncReadFailures, (*Metrics).GetReadFailures},
		{"write failures", (*Metrics).IncWriteFailures, (*Metrics).GetWriteFailures},
		{"decode failures", (*Metrics).IncDecodeFailures, (*Metrics).GetDecodeFailures},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			for i := 0; i < 7; i++ {
				tt.inc(m)
			}
			if got := tt.get(m); got != 7 {
				t.Errorf("Expected 7, got %d", got)
			}
		})
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncWrites()
			}
		}()
	}
	wg.Wait()

	if m.GetWrites() != 5000 {
		t.Errorf("Expected 5000 writes, got %d", m.GetWrites())
	}
}

func TestSnapshotJSON(t *testing.T) {
	m := New()
	m.IncReads()
	m.IncWriteFailures()

	data, err := json.Marshal(m.GetSnapshot())
	if err != nil {
		t.Fatalf("Failed to marshal snapshot: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}

	for _, field := range []string{"reads", "writes", "read_failures", "write_failures", "decode_failures", "start_time", "uptime"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("Expected field %q in snapshot JSON", field)
		}
	}
	if decoded["write_failures"].(float64) != 1 {
		t.Errorf("Expected write_failures 1, got %v", decoded["write_failures"])
	}
}
