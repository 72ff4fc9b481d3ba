package assign

import "errors"

var (
	// ErrExchangeLocked is returned when generation is requested for a locked
	// exchange without an explicit override.
	ErrExchangeLocked = errors.New("assign: assignments are locked for this exchange")

	// ErrInsufficientParticipants is returned when fewer than two distinct
	// participants are eligible.
	ErrInsufficientParticipants = errors.New("assign: at least two active participants are required")

	// ErrAssignmentGeneration is returned when no valid cycle was produced
	// within the attempt ceiling.
	ErrAssignmentGeneration = errors.New("assign: could not generate a closed assignment cycle")

	// ErrBrokenCycle reports stored pairs that are not one full cycle.
	ErrBrokenCycle = errors.New("assign: assignments do not form a single cycle")
)
