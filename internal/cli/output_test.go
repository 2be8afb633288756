package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type humanResult struct {
	Count int `json:"count"`
}

func (h humanResult) Human() string     { return "counted things\n" }
func (h humanResult) QuietLine() string { return "7" }

type plainResult struct {
	Name string
}

// capture swaps out the named stream while fn runs
func capture(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()
	old := *stream
	r, w, err := os.Pipe()
	require.NoError(t, err)
	*stream = w

	fn()

	_ = w.Close()
	*stream = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name string
		data any
		want any
	}{
		{"struct", humanResult{Count: 3}, map[string]any{"count": float64(3)}},
		{"string", "simple string", "simple string"},
		{"integer", 42, float64(42)},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{JSON: true}
			out := capture(t, &os.Stdout, func() {
				require.NoError(t, f.Success(tt.data))
			})

			var result map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
			assert.Equal(t, true, result["success"])
			assert.Equal(t, tt.want, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f := &OutputFormatter{Quiet: true}

	out := capture(t, &os.Stdout, func() {
		require.NoError(t, f.Success(humanResult{}))
	})
	assert.Equal(t, "7\n", out)

	out = capture(t, &os.Stdout, func() {
		require.NoError(t, f.Success(plainResult{Name: "x"}))
	})
	assert.Empty(t, out, "results without a quiet form print nothing")
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"humanizer", humanResult{}, "counted things\n"},
		{"string", "human readable text", "human readable text\n"},
		{"struct", plainResult{Name: "Acme"}, "{Name:Acme}\n"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{}
			out := capture(t, &os.Stdout, func() {
				require.NoError(t, f.Success(tt.data))
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := capture(t, &os.Stdout, func() {
		require.NoError(t, f.ErrorWithSuggestion("DATA_ERROR", `bad "input"`, "run rmv export first"))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, map[string]any{
		"code":       "DATA_ERROR",
		"message":    `bad "input"`,
		"suggestion": "run rmv export first",
	}, result["error"])

	out = capture(t, &os.Stdout, func() {
		require.NoError(t, f.Error("X", "no suggestion"))
	})
	var plain map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &plain))
	assert.NotContains(t, plain["error"], "suggestion")
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f := &OutputFormatter{}
	out := capture(t, &os.Stderr, func() {
		require.NoError(t, f.ErrorWithSuggestion("X", "it broke", "try again"))
	})
	assert.True(t, strings.HasPrefix(out, "Error: it broke\n"))
	assert.Contains(t, out, "Suggestion: try again")

	quiet := &OutputFormatter{Quiet: true}
	out = capture(t, &os.Stderr, func() {
		require.NoError(t, quiet.Error("X", "it broke"))
	})
	assert.Empty(t, out)
}
