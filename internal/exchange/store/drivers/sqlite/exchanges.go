package sqlite

import (
	"context"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite/gen"
)

type exchangesRepo struct {
	q *gen.Queries
}

func (r *exchangesRepo) CreateExchange(ctx context.Context, e domain.Exchange) error {
	err := r.q.CreateExchange(ctx, gen.CreateExchangeParams{
		ID:                e.ID,
		Title:             e.Title,
		Date:              mapDateNull(e.Date),
		Location:          e.Location,
		Description:       e.Description,
		SpendingLimit:     int64(e.SpendingLimit),
		AssignmentsLocked: e.AssignmentsLocked,
		CreatedAt:         toMillis(e.CreatedAt),
		UpdatedAt:         toMillis(e.UpdatedAt),
	})
	return mapConflict(err)
}

func (r *exchangesRepo) GetExchange(ctx context.Context, id string) (domain.Exchange, error) {
	row, err := r.q.GetExchange(ctx, id)
	if err != nil {
		return domain.Exchange{}, mapNotFound(err)
	}
	return mapExchange(row), nil
}

func (r *exchangesRepo) GetExchangeByTitle(ctx context.Context, title string) (domain.Exchange, error) {
	row, err := r.q.GetExchangeByTitle(ctx, title)
	if err != nil {
		return domain.Exchange{}, mapNotFound(err)
	}
	return mapExchange(row), nil
}

func (r *exchangesRepo) ListExchanges(ctx context.Context) ([]domain.Exchange, error) {
	rows, err := r.q.ListExchanges(ctx)
	if err != nil {
		return nil, err
	}

	exchanges := make([]domain.Exchange, len(rows))
	for i, row := range rows {
		exchanges[i] = mapExchange(row)
	}
	return exchanges, nil
}

func (r *exchangesRepo) UpdateExchangeDetails(
	ctx context.Context,
	id string,
	d domain.ExchangeDetails,
) error {
	return requireAffected(r.q.UpdateExchangeDetails(ctx, gen.UpdateExchangeDetailsParams{
		Date:          mapDateNull(d.Date),
		Location:      d.Location,
		Description:   d.Description,
		SpendingLimit: int64(d.SpendingLimit),
		UpdatedAt:     toMillis(time.Now()),
		ID:            id,
	}))
}

func (r *exchangesRepo) SetAssignmentsLocked(ctx context.Context, id string, locked bool) error {
	return requireAffected(r.q.SetAssignmentsLocked(ctx, gen.SetAssignmentsLockedParams{
		AssignmentsLocked: locked,
		UpdatedAt:         toMillis(time.Now()),
		ID:                id,
	}))
}
