package sqlite

import (
	"context"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite/gen"
)

type assignmentsRepo struct {
	q *gen.Queries
}

func (r *assignmentsRepo) CreateAssignment(ctx context.Context, a domain.Assignment) error {
	err := r.q.CreateAssignment(ctx, gen.CreateAssignmentParams{
		ID:         a.ID,
		ExchangeID: a.ExchangeID,
		GiverID:    a.GiverID,
		ReceiverID: a.ReceiverID,
		CreatedAt:  toMillis(a.CreatedAt),
	})
	return mapConflict(err)
}

func (r *assignmentsRepo) ListAssignments(
	ctx context.Context,
	exchangeID string,
) ([]domain.Assignment, error) {
	rows, err := r.q.ListAssignments(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	assignments := make([]domain.Assignment, len(rows))
	for i, row := range rows {
		assignments[i] = mapAssignment(row)
	}
	return assignments, nil
}

func (r *assignmentsRepo) GetAssignmentByGiver(
	ctx context.Context,
	exchangeID, giverID string,
) (domain.Assignment, error) {
	row, err := r.q.GetAssignmentByGiver(ctx, gen.GetAssignmentByGiverParams{
		ExchangeID: exchangeID,
		GiverID:    giverID,
	})
	if err != nil {
		return domain.Assignment{}, mapNotFound(err)
	}
	return mapAssignment(row), nil
}

func (r *assignmentsRepo) DeleteAssignments(ctx context.Context, exchangeID string) error {
	return r.q.DeleteAssignments(ctx, exchangeID)
}

func (r *assignmentsRepo) CountAssignments(ctx context.Context, exchangeID string) (int64, error) {
	return r.q.CountAssignments(ctx, exchangeID)
}
