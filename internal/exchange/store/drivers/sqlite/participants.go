package sqlite

import (
	"context"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite/gen"
)

type participantsRepo struct {
	q *gen.Queries
}

func (r *participantsRepo) CreateParticipant(ctx context.Context, p domain.Participant) error {
	status := p.Status
	if status == "" {
		status = domain.StatusInvited
	}

	err := r.q.CreateParticipant(ctx, gen.CreateParticipantParams{
		ID:                     p.ID,
		ExchangeID:             p.ExchangeID,
		Name:                   p.Name,
		Email:                  p.Email,
		Status:                 string(status),
		Likes:                  p.Likes,
		Dislikes:               p.Dislikes,
		AllergiesSensitivities: p.AllergiesSensitivities,
		CreatedAt:              toMillis(p.CreatedAt),
		UpdatedAt:              toMillis(p.UpdatedAt),
	})
	return mapConflict(err)
}

func (r *participantsRepo) GetParticipant(
	ctx context.Context,
	exchangeID, id string,
) (domain.Participant, error) {
	row, err := r.q.GetParticipant(ctx, gen.GetParticipantParams{ExchangeID: exchangeID, ID: id})
	if err != nil {
		return domain.Participant{}, mapNotFound(err)
	}
	return mapParticipant(row), nil
}

func (r *participantsRepo) ListParticipants(
	ctx context.Context,
	exchangeID string,
) ([]domain.Participant, error) {
	rows, err := r.q.ListParticipants(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	participants := make([]domain.Participant, len(rows))
	for i, row := range rows {
		participants[i] = mapParticipant(row)
	}
	return participants, nil
}

func (r *participantsRepo) ListActiveParticipantIDs(
	ctx context.Context,
	exchangeID string,
) ([]string, error) {
	return r.q.ListActiveParticipantIDs(ctx, exchangeID)
}

func (r *participantsRepo) UpdateParticipant(
	ctx context.Context,
	exchangeID, id string,
	u domain.ParticipantUpdate,
) error {
	var status *string
	if u.Status != nil {
		s := string(*u.Status)
		status = &s
	}

	return requireAffected(r.q.UpdateParticipant(ctx, gen.UpdateParticipantParams{
		Status:                 mapOptionalString(status),
		Likes:                  mapOptionalString(u.Likes),
		Dislikes:               mapOptionalString(u.Dislikes),
		AllergiesSensitivities: mapOptionalString(u.AllergiesSensitivities),
		UpdatedAt:              toMillis(time.Now()),
		ExchangeID:             exchangeID,
		ID:                     id,
	}))
}

func (r *participantsRepo) DeleteParticipant(ctx context.Context, exchangeID, id string) error {
	return requireAffected(r.q.DeleteParticipant(ctx, gen.DeleteParticipantParams{
		ExchangeID: exchangeID,
		ID:         id,
	}))
}
