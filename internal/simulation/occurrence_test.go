package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

func TestHasDuplicate(t *testing.T) {
	tests := []struct {
		name string
		days []simulation.Day
		want bool
	}{
		{"Empty trial", nil, false},
		{"Single person", []simulation.Day{42}, false},
		{"All distinct", []simulation.Day{1, 2, 3, 364, 365}, false},
		{"One pair", []simulation.Day{10, 200, 10}, true},
		{"Adjacent duplicates", []simulation.Day{7, 7}, true},
		{"Triple", []simulation.Day{100, 100, 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, simulation.HasDuplicate(tt.days))
		})
	}
}

func TestCountOccurrences(t *testing.T) {
	days := []simulation.Day{10, 200, 10}
	counts := simulation.CountOccurrences(days)

	assert.Equal(t, simulation.OccurrenceMap{10: 2, 200: 1}, counts)
}

// TestCountOccurrences_SumInvariant checks that the tallies always add up to
// the trial size, whatever the input order.
func TestCountOccurrences_SumInvariant(t *testing.T) {
	gen := simulation.NewGenerator(99)
	days, err := gen.Birthdays(500)
	assert.NoError(t, err)

	total := 0
	for _, count := range simulation.CountOccurrences(days) {
		assert.Positive(t, count)
		total += count
	}
	assert.Equal(t, len(days), total)
}

// TestHasDuplicate_AgreesWithCounts cross-checks the detector against the
// aggregator: a duplicate exists exactly when some tally reaches 2.
func TestHasDuplicate_AgreesWithCounts(t *testing.T) {
	gen := simulation.NewGenerator(7)
	for i := 0; i < 50; i++ {
		days, err := gen.Birthdays(23)
		assert.NoError(t, err)

		anyShared := false
		for _, count := range simulation.CountOccurrences(days) {
			if count >= 2 {
				anyShared = true
			}
		}
		assert.Equal(t, anyShared, simulation.HasDuplicate(days))
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		occurrences simulation.OccurrenceMap
		want        simulation.MatchSummary
	}{
		{"No matches", simulation.OccurrenceMap{5: 1, 120: 1}, simulation.MatchSummary{}},
		{"One pair", simulation.OccurrenceMap{10: 2, 200: 1}, simulation.MatchSummary{2: 1}},
		{"Two pairs and a triple", simulation.OccurrenceMap{1: 2, 2: 2, 3: 3, 4: 1}, simulation.MatchSummary{2: 2, 3: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := simulation.Summarize(tt.occurrences)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, 1, "Singletons are not matches")
		})
	}
}

// TestSorted_Ordering pins the deterministic display orders: occurrences
// ascending by day, match groups ascending by count.
func TestSorted_Ordering(t *testing.T) {
	counts := simulation.OccurrenceMap{300: 1, 10: 2, 150: 3}
	entries := counts.Sorted()
	assert.Equal(t, []simulation.Occurrence{
		{Day: 10, Count: 2},
		{Day: 150, Count: 3},
		{Day: 300, Count: 1},
	}, entries)

	summary := simulation.MatchSummary{4: 1, 2: 5, 3: 2}
	groups := summary.Sorted()
	assert.Equal(t, []simulation.MatchGroup{
		{Count: 2, Days: 5},
		{Count: 3, Days: 2},
		{Count: 4, Days: 1},
	}, groups)
}
