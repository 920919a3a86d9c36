package simulation

import "errors"

// ErrInvalidCount indicates a non-positive number of birthdays was requested.
var ErrInvalidCount = errors.New("birthday count must be positive")

// ErrInvalidGroupSize indicates the group size is outside the supported range.
var ErrInvalidGroupSize = errors.New("group size must be between 1 and 1000")

// ErrInvalidSimulations indicates a non-positive trial count was requested.
var ErrInvalidSimulations = errors.New("simulation count must be positive")
