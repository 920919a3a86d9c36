package simulation

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-paradox/internal/config"
)

// Result is the outcome of a full simulation run.
type Result struct {
	// Probability is the empirical chance of at least one shared birthday,
	// as a percentage in [0, 100].
	Probability float64

	// TotalMatches counts the trials that contained a shared birthday.
	TotalMatches int

	// LastTrial holds the final trial's birthdays. It is a representative
	// sample for the detailed report, not an aggregate over all trials.
	LastTrial []Day
}

// Runner drives repeated trials of a fixed group size.
type Runner struct {
	// Gen supplies random birthdays. A nil Gen gets a freshly seeded
	// Generator on the first Run.
	Gen *Generator

	// Progress, when non-nil, receives the 0-based trial index every
	// config.ProgressInterval trials.
	Progress func(trial int)
}

// Run executes numSimulations independent trials of groupSize people each
// and estimates the probability of a shared birthday.
//
// Arguments are validated before any trial runs; on error no partial result
// is returned. The loop is sequential and runs to completion. All state is
// call-local, so a Runner may be reused for consecutive runs.
func (r *Runner) Run(groupSize, numSimulations int) (Result, error) {
	if groupSize < config.MinGroupSize || groupSize > config.MaxGroupSize {
		return Result{}, ErrInvalidGroupSize
	}
	if numSimulations <= 0 {
		return Result{}, ErrInvalidSimulations
	}
	if r.Gen == nil {
		r.Gen = NewGenerator(0)
	}

	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompSimulation,
		config.LogKeyPeople, groupSize,
		config.LogKeySimulations, numSimulations,
	)
	log.Debug(config.MsgSimStarted, config.LogKeySeed, r.Gen.Seed())

	totalMatches := 0
	trial := make([]Day, groupSize)

	for i := 0; i < numSimulations; i++ {
		if r.Progress != nil && i%config.ProgressInterval == 0 {
			r.Progress(i)
		}

		r.Gen.fill(trial)
		if HasDuplicate(trial) {
			totalMatches++
		}
	}

	result := Result{
		Probability:  float64(totalMatches) / float64(numSimulations) * config.PercentScale,
		TotalMatches: totalMatches,
		LastTrial:    append([]Day(nil), trial...),
	}

	log.Debug(config.MsgSimFinished,
		config.LogKeyMatches, result.TotalMatches,
		config.LogKeyProbability, result.Probability,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return result, nil
}
