package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/pkg/idx"
	"github.com/astromitts/gifterator3000/pkg/slogx"
)

type ParticipantService struct {
	Store store.Store
}

// AddParticipant enrols a participant in an exchange. The status defaults to
// invited; only active participants are drawn into assignments.
func (s *ParticipantService) AddParticipant(
	ctx context.Context,
	exchangeID string,
	p domain.Participant,
) (domain.Participant, error) {
	log := slogx.FromContext(ctx)

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Name == "" || p.Email == "" {
		log.Warn("rejected participant without name or email",
			slog.String("exchange_id", exchangeID),
		)
		return domain.Participant{}, ErrInvalidParticipant
	}

	if p.Status == "" {
		p.Status = domain.StatusInvited
	}
	if !p.Status.Valid() {
		return domain.Participant{}, ErrInvalidStatus
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	p.ID = idx.NewString()
	p.ExchangeID = exchangeID
	p.CreatedAt = now
	p.UpdatedAt = now

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Exchanges().GetExchange(ctx, exchangeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExchangeNotFound
			}
			return err
		}

		if err := tx.Participants().CreateParticipant(ctx, p); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrExchangeNotFound) || errors.Is(err, ErrEmailTaken) {
			log.Warn("participant not added",
				slog.String("exchange_id", exchangeID),
				slog.String("reason", err.Error()),
			)
			return domain.Participant{}, err
		}
		log.Error("failed to add participant",
			slog.String("exchange_id", exchangeID),
			slog.Any("error", err),
		)
		return domain.Participant{}, err
	}

	log.Info("participant added",
		slog.String("exchange_id", exchangeID),
		slog.String("participant_id", p.ID),
		slog.String("status", string(p.Status)),
	)
	return p, nil
}

// ListParticipants returns every participant of an exchange in enrolment
// order, whatever their status.
func (s *ParticipantService) ListParticipants(ctx context.Context, exchangeID string) ([]domain.Participant, error) {
	if _, err := s.Store.Exchanges().GetExchange(ctx, exchangeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, err
	}

	participants, err := s.Store.Participants().ListParticipants(ctx, exchangeID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list participants",
			slog.String("exchange_id", exchangeID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return participants, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, exchangeID, id string) (domain.Participant, error) {
	p, err := s.Store.Participants().GetParticipant(ctx, exchangeID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}
		return domain.Participant{}, err
	}
	return p, nil
}

// UpdateParticipant applies the non-nil fields of u. Changing status does not
// touch existing assignments; they are replaced on the next generation.
func (s *ParticipantService) UpdateParticipant(
	ctx context.Context,
	exchangeID, id string,
	u domain.ParticipantUpdate,
) (domain.Participant, error) {
	log := slogx.FromContext(ctx)

	if u.Status != nil && !u.Status.Valid() {
		log.Warn("rejected unknown participant status",
			slog.String("participant_id", id),
			slog.String("status", string(*u.Status)),
		)
		return domain.Participant{}, ErrInvalidStatus
	}

	if err := s.Store.Participants().UpdateParticipant(ctx, exchangeID, id, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Participant{}, ErrParticipantNotFound
		}
		log.Error("failed to update participant",
			slog.String("participant_id", id),
			slog.Any("error", err),
		)
		return domain.Participant{}, err
	}

	log.Debug("participant updated",
		slog.String("exchange_id", exchangeID),
		slog.String("participant_id", id),
	)
	return s.GetParticipant(ctx, exchangeID, id)
}

// SetStatus moves a participant between invited, declined and active.
func (s *ParticipantService) SetStatus(
	ctx context.Context,
	exchangeID, id string,
	status domain.ParticipantStatus,
) (domain.Participant, error) {
	return s.UpdateParticipant(ctx, exchangeID, id, domain.ParticipantUpdate{Status: &status})
}
