// Package simulation implements the birthday paradox Monte Carlo engine:
// random birthday generation, duplicate detection, frequency aggregation,
// and probability estimation over repeated trials.
package simulation

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/tartampluch/go-paradox/internal/config"
)

// Generator produces random birthdays from an explicitly owned random
// source. Each Generator owns its own *rand.Rand, so independent callers
// can run simulations concurrently as long as they do not share a Generator.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a Generator seeded with the given value.
// A zero seed requests a fresh one, drawn from crypto/rand so production
// runs differ, while tests pin a non-zero seed for determinism.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = newSeed()
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the effective seed, so a run can be reproduced.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Birthdays draws count independent birthdays, each uniform over the 365
// possible days. Duplicates are expected; they are the entire point of the
// simulation.
func (g *Generator) Birthdays(count int) ([]Day, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	days := make([]Day, count)
	for i := range days {
		days[i] = Day(g.rng.Intn(config.DaysInYear) + 1)
	}
	return days, nil
}

// fill regenerates birthdays into an existing slice, avoiding a fresh
// allocation per trial on the driver's hot loop.
func (g *Generator) fill(days []Day) {
	for i := range days {
		days[i] = Day(g.rng.Intn(config.DaysInYear) + 1)
	}
}

// newSeed draws a seed from crypto/rand, falling back to the wall clock
// if the system entropy source is unavailable.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
