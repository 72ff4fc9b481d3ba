package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/assign"
	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/metrics"
	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/pkg/idx"
	"github.com/astromitts/gifterator3000/pkg/slogx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/astromitts/gifterator3000/internal/exchange/service")

// AssignmentService owns the assignment set of each exchange. Generation and
// lock changes of one exchange are serialized; different exchanges proceed
// independently up to the store's own write serialization.
type AssignmentService struct {
	Store     store.Store
	Generator *assign.Generator

	locks exchangeLocks
}

// GenerateAssignments replaces the assignment set of an exchange with a fresh
// single cycle over its active participants.
//
// The lock flag, participant list, delete and inserts all run in one
// transaction while the exchange lock is held, so a failure leaves the
// previous set untouched and two concurrent calls never interleave.
func (s *AssignmentService) GenerateAssignments(
	ctx context.Context,
	exchangeID string,
	overrideLock bool,
) ([]domain.Assignment, error) {
	ctx, span := tracer.Start(ctx, "AssignmentService.GenerateAssignments",
		trace.WithAttributes(
			attribute.String("exchange.id", exchangeID),
			attribute.Bool("override_lock", overrideLock),
		),
	)
	defer span.End()

	ctx = slogx.WithExchange(ctx, exchangeID)
	log := slogx.FromContext(ctx)
	started := time.Now()

	release, err := s.locks.acquire(ctx, exchangeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exchange lock not acquired")
		return nil, err
	}
	defer release()

	var (
		result   assign.Result
		created  []domain.Assignment
		replaced int64
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		exchange, err := tx.Exchanges().GetExchange(ctx, exchangeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExchangeNotFound
			}
			return fmt.Errorf("read exchange: %w", err)
		}

		ids, err := tx.Participants().ListActiveParticipantIDs(ctx, exchangeID)
		if err != nil {
			return fmt.Errorf("list active participants: %w", err)
		}

		result, err = s.Generator.Run(ids, exchange.AssignmentsLocked, overrideLock)
		if err != nil {
			return err
		}

		replaced, err = tx.Assignments().CountAssignments(ctx, exchangeID)
		if err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if err := tx.Assignments().DeleteAssignments(ctx, exchangeID); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}

		// Pairs come out in chain order from result.Start and ids are
		// monotonic, so the lowest id is the start giver's edge.
		now := time.Now().UTC().Truncate(time.Millisecond)
		created = make([]domain.Assignment, 0, len(result.Pairs))
		for _, p := range result.Pairs {
			a := domain.Assignment{
				ID:         idx.NewString(),
				ExchangeID: exchangeID,
				GiverID:    p.Giver,
				ReceiverID: p.Receiver,
				CreatedAt:  now,
			}
			if err := tx.Assignments().CreateAssignment(ctx, a); err != nil {
				return fmt.Errorf("create assignment: %w", err)
			}
			created = append(created, a)
		}
		return nil
	})

	metrics.ObserveGeneration(err, result.Attempts, len(created), time.Since(started))
	span.SetAttributes(attribute.String("outcome", metrics.Outcome(err)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		switch {
		case errors.Is(err, assign.ErrExchangeLocked),
			errors.Is(err, assign.ErrInsufficientParticipants),
			errors.Is(err, ErrExchangeNotFound):
			log.Warn("assignments not generated", slog.String("reason", err.Error()))
		default:
			log.Error("failed to generate assignments", slog.Any("error", err))
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("assign.pairs", len(created)),
		attribute.Int("assign.attempts", result.Attempts),
	)
	log.Info("assignments generated",
		slog.Int("pairs", len(created)),
		slog.Int("attempts", result.Attempts),
		slog.Int64("replaced", replaced),
		slog.Bool("override_lock", overrideLock),
	)
	return created, nil
}

// OrderedAssignments returns the stored set in chain order, starting from the
// assignment with the lowest id. An exchange without assignments yields an
// empty slice; a stored set that is not one cycle yields assign.ErrBrokenCycle.
func (s *AssignmentService) OrderedAssignments(ctx context.Context, exchangeID string) ([]domain.Assignment, error) {
	ctx, span := tracer.Start(ctx, "AssignmentService.OrderedAssignments",
		trace.WithAttributes(attribute.String("exchange.id", exchangeID)),
	)
	defer span.End()

	log := slogx.FromContext(ctx)

	if _, err := s.Store.Exchanges().GetExchange(ctx, exchangeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, err
	}

	stored, err := s.Store.Assignments().ListAssignments(ctx, exchangeID)
	if err != nil {
		log.Error("failed to list assignments",
			slog.String("exchange_id", exchangeID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(stored) == 0 {
		return []domain.Assignment{}, nil
	}

	byGiver := make(map[string]domain.Assignment, len(stored))
	pairs := make([]assign.Pair, len(stored))
	for i, a := range stored {
		byGiver[a.GiverID] = a
		pairs[i] = assign.Pair{Giver: a.GiverID, Receiver: a.ReceiverID}
	}

	chain, err := assign.OrderCycle(pairs, stored[0].GiverID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("stored assignments are not a single cycle",
			slog.String("exchange_id", exchangeID),
			slog.Int("pairs", len(stored)),
		)
		return nil, err
	}

	ordered := make([]domain.Assignment, len(chain))
	for i, p := range chain {
		ordered[i] = byGiver[p.Giver]
	}
	return ordered, nil
}

// RecipientFor returns the participant the given giver buys for.
func (s *AssignmentService) RecipientFor(
	ctx context.Context,
	exchangeID, giverID string,
) (domain.Participant, error) {
	if _, err := s.Store.Participants().GetParticipant(ctx, exchangeID, giverID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}
		return domain.Participant{}, err
	}

	a, err := s.Store.Assignments().GetAssignmentByGiver(ctx, exchangeID, giverID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Participant{}, ErrAssignmentNotFound
		}
		return domain.Participant{}, err
	}

	recipient, err := s.Store.Participants().GetParticipant(ctx, exchangeID, a.ReceiverID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}
		return domain.Participant{}, err
	}
	return recipient, nil
}

// RemoveParticipant takes a participant out of an exchange. A participant
// who is part of the current assignment set leaves a gap in the cycle, so the
// whole set is cleared with them; while the set is locked such a removal is
// refused with ErrParticipantAssigned.
func (s *AssignmentService) RemoveParticipant(ctx context.Context, exchangeID, participantID string) error {
	ctx = slogx.WithExchange(ctx, exchangeID)
	log := slogx.FromContext(ctx)

	release, err := s.locks.acquire(ctx, exchangeID)
	if err != nil {
		return err
	}
	defer release()

	var cleared int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		exchange, err := tx.Exchanges().GetExchange(ctx, exchangeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExchangeNotFound
			}
			return fmt.Errorf("read exchange: %w", err)
		}

		if _, err := tx.Participants().GetParticipant(ctx, exchangeID, participantID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrParticipantNotFound
			}
			return fmt.Errorf("read participant: %w", err)
		}

		// In a single cycle every member gives exactly once.
		_, err = tx.Assignments().GetAssignmentByGiver(ctx, exchangeID, participantID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// Not part of the current set.
		case err != nil:
			return fmt.Errorf("read assignment: %w", err)
		case exchange.AssignmentsLocked:
			return ErrParticipantAssigned
		default:
			if cleared, err = tx.Assignments().CountAssignments(ctx, exchangeID); err != nil {
				return fmt.Errorf("count assignments: %w", err)
			}
			if err := tx.Assignments().DeleteAssignments(ctx, exchangeID); err != nil {
				return fmt.Errorf("delete assignments: %w", err)
			}
		}

		if err := tx.Participants().DeleteParticipant(ctx, exchangeID, participantID); err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrExchangeNotFound),
			errors.Is(err, ErrParticipantNotFound),
			errors.Is(err, ErrParticipantAssigned):
			log.Warn("participant not removed",
				slog.String("participant_id", participantID),
				slog.String("reason", err.Error()),
			)
		default:
			log.Error("failed to remove participant",
				slog.String("participant_id", participantID),
				slog.Any("error", err),
			)
		}
		return err
	}

	log.Info("participant removed",
		slog.String("participant_id", participantID),
		slog.Int64("assignments_cleared", cleared),
	)
	return nil
}

// Lock freezes the current assignment set against regeneration.
func (s *AssignmentService) Lock(ctx context.Context, exchangeID string) (domain.Exchange, error) {
	return s.setLocked(ctx, exchangeID, func(bool) bool { return true })
}

// Unlock allows the assignment set to be regenerated again.
func (s *AssignmentService) Unlock(ctx context.Context, exchangeID string) (domain.Exchange, error) {
	return s.setLocked(ctx, exchangeID, func(bool) bool { return false })
}

// ToggleLock flips the lock flag and returns the updated exchange.
func (s *AssignmentService) ToggleLock(ctx context.Context, exchangeID string) (domain.Exchange, error) {
	return s.setLocked(ctx, exchangeID, func(locked bool) bool { return !locked })
}

func (s *AssignmentService) setLocked(
	ctx context.Context,
	exchangeID string,
	next func(locked bool) bool,
) (domain.Exchange, error) {
	log := slogx.FromContext(ctx)

	release, err := s.locks.acquire(ctx, exchangeID)
	if err != nil {
		return domain.Exchange{}, err
	}
	defer release()

	var exchange domain.Exchange
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Exchanges().GetExchange(ctx, exchangeID)
		if err != nil {
			return err
		}

		locked := next(current.AssignmentsLocked)
		if locked != current.AssignmentsLocked {
			if err := tx.Exchanges().SetAssignmentsLocked(ctx, exchangeID, locked); err != nil {
				return err
			}
		}

		exchange, err = tx.Exchanges().GetExchange(ctx, exchangeID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Exchange{}, ErrExchangeNotFound
		}
		log.Error("failed to change assignment lock",
			slog.String("exchange_id", exchangeID),
			slog.Any("error", err),
		)
		return domain.Exchange{}, err
	}

	metrics.ObserveLockChange(exchange.AssignmentsLocked)
	log.Info("assignment lock changed",
		slog.String("exchange_id", exchangeID),
		slog.Bool("locked", exchange.AssignmentsLocked),
	)
	return exchange, nil
}
