package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-paradox/internal/export"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

var fixedClock = MockClock{CurrentTime: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

func TestWrite_EmptyTrial_ValidStub(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, nil, fixedClock))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.NotContains(t, out, "VEVENT", "Empty trial must not produce events")
}

func TestWrite_SampledTrial(t *testing.T) {
	// Day 10 = January 10 (shared by 2), Day 200 = July 19 (unique).
	days := []simulation.Day{10, 200, 10}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, days, fixedClock))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:-//Go Paradox//Engine//EN")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"), "One event per distinct day")
	assert.Contains(t, out, "SUMMARY:Birthday x2")
	assert.Contains(t, out, "SUMMARY:Birthday x1")
	assert.Contains(t, out, "20010110", "Day 10 anchors to January 10 of the reference year")
	assert.Contains(t, out, "20010719", "Day 200 anchors to July 19 of the reference year")
}

// TestWrite_DeterministicUIDs ensures re-exporting the same trial yields the
// same UIDs, so calendar clients update events instead of duplicating them.
func TestWrite_DeterministicUIDs(t *testing.T) {
	days := []simulation.Day{42, 42, 300}

	var first, second bytes.Buffer
	require.NoError(t, export.Write(&first, days, fixedClock))
	require.NoError(t, export.Write(&second, days, fixedClock))

	assert.Equal(t, first.String(), second.String())
}

func TestWriteFile(t *testing.T) {
	days := []simulation.Day{1, 1}
	path := filepath.Join(t.TempDir(), "sample.ics")

	require.NoError(t, export.WriteFile(path, days, fixedClock))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:Birthday x2")
	assert.Contains(t, string(data), "20010101")
}
