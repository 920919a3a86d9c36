package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

func TestRunner_Run_Validation(t *testing.T) {
	runner := &simulation.Runner{Gen: simulation.NewGenerator(1)}

	tests := []struct {
		name        string
		groupSize   int
		simulations int
		wantErr     error
	}{
		{"Zero group size", 0, 100, simulation.ErrInvalidGroupSize},
		{"Negative group size", -5, 100, simulation.ErrInvalidGroupSize},
		{"Group size above cap", 1001, 100, simulation.ErrInvalidGroupSize},
		{"Zero simulations", 23, 0, simulation.ErrInvalidSimulations},
		{"Negative simulations", 23, -1, simulation.ErrInvalidSimulations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.Run(tt.groupSize, tt.simulations)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, result, "No partial result on invalid arguments")
		})
	}
}

// TestRunner_Run_ResultInvariants checks the arithmetic contract: matches
// stay within [0, simulations] and the probability is exactly the match
// ratio scaled to a percentage.
func TestRunner_Run_ResultInvariants(t *testing.T) {
	runner := &simulation.Runner{Gen: simulation.NewGenerator(5)}

	result, err := runner.Run(23, 2000)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.TotalMatches, 0)
	assert.LessOrEqual(t, result.TotalMatches, 2000)
	assert.Equal(t, float64(result.TotalMatches)/2000*100, result.Probability)
	assert.Len(t, result.LastTrial, 23, "Last trial is retained for the sample report")
}

// TestRunner_Run_Pigeonhole: with more people than days, every trial must
// contain a shared birthday.
func TestRunner_Run_Pigeonhole(t *testing.T) {
	runner := &simulation.Runner{Gen: simulation.NewGenerator(9)}

	result, err := runner.Run(366, 200)
	require.NoError(t, err)

	assert.Equal(t, 200, result.TotalMatches)
	assert.Equal(t, float64(100), result.Probability)
}

// TestRunner_Run_ClassicBenchmarks reproduces the textbook figures: ~50.7%
// for 23 people and ~99.9% for 70. Fixed seeds keep the assertions stable,
// the bands still leave room for a different source implementation.
func TestRunner_Run_ClassicBenchmarks(t *testing.T) {
	tests := []struct {
		name      string
		groupSize int
		min       float64
		max       float64
	}{
		{"23 people is a near coin flip", 23, 48.0, 53.5},
		{"70 people is near certainty", 70, 99.5, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &simulation.Runner{Gen: simulation.NewGenerator(2024)}
			result, err := runner.Run(tt.groupSize, 20000)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.Probability, tt.min)
			assert.LessOrEqual(t, result.Probability, tt.max)
		})
	}
}

// TestRunner_Run_Progress verifies the periodic progress callback fires on
// every ProgressInterval boundary with the 0-based trial index.
func TestRunner_Run_Progress(t *testing.T) {
	var reported []int
	runner := &simulation.Runner{
		Gen:      simulation.NewGenerator(3),
		Progress: func(trial int) { reported = append(reported, trial) },
	}

	_, err := runner.Run(10, 30000)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 10000, 20000}, reported)
}

func TestRunner_Run_NilGeneratorGetsSeeded(t *testing.T) {
	runner := &simulation.Runner{}

	result, err := runner.Run(50, 100)
	require.NoError(t, err)

	assert.NotNil(t, runner.Gen)
	assert.NotZero(t, runner.Gen.Seed())
	assert.Len(t, result.LastTrial, 50)
}
