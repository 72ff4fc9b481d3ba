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

type ExchangeService struct {
	Store store.Store
}

// CreateExchange registers a new, unlocked exchange with a unique title.
func (s *ExchangeService) CreateExchange(
	ctx context.Context,
	title string,
	details domain.ExchangeDetails,
) (domain.Exchange, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" || details.SpendingLimit < 0 {
		log.Warn("rejected exchange with invalid details",
			slog.String("title", title),
			slog.Int("spending_limit", details.SpendingLimit),
		)
		return domain.Exchange{}, ErrInvalidExchange
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	exchange := domain.Exchange{
		ID:            idx.NewString(),
		Title:         title,
		Date:          details.Date,
		Location:      details.Location,
		Description:   details.Description,
		SpendingLimit: details.SpendingLimit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Exchanges().CreateExchange(ctx, exchange); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("exchange title already taken", slog.String("title", title))
			return domain.Exchange{}, ErrTitleTaken
		}
		log.Error("failed to create exchange", slog.Any("error", err))
		return domain.Exchange{}, err
	}

	log.Info("exchange created",
		slog.String("exchange_id", exchange.ID),
		slog.String("title", exchange.Title),
	)
	return exchange, nil
}

func (s *ExchangeService) GetExchange(ctx context.Context, id string) (domain.Exchange, error) {
	exchange, err := s.Store.Exchanges().GetExchange(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Exchange{}, ErrExchangeNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch exchange",
			slog.String("exchange_id", id),
			slog.Any("error", err),
		)
		return domain.Exchange{}, err
	}
	return exchange, nil
}

// ListExchanges returns every exchange in creation order.
func (s *ExchangeService) ListExchanges(ctx context.Context) ([]domain.Exchange, error) {
	exchanges, err := s.Store.Exchanges().ListExchanges(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list exchanges", slog.Any("error", err))
		return nil, err
	}
	return exchanges, nil
}

// FindExchangeByTitle looks an exchange up by its unique title.
func (s *ExchangeService) FindExchangeByTitle(ctx context.Context, title string) (domain.Exchange, error) {
	exchange, err := s.Store.Exchanges().GetExchangeByTitle(ctx, strings.TrimSpace(title))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Exchange{}, ErrExchangeNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch exchange by title",
			slog.String("title", title),
			slog.Any("error", err),
		)
		return domain.Exchange{}, err
	}
	return exchange, nil
}

// UpdateExchangeDetails merges u into the organizer-editable fields and
// returns the stored exchange. The read, merge and write share one
// transaction so concurrent patches of different fields both land.
func (s *ExchangeService) UpdateExchangeDetails(
	ctx context.Context,
	id string,
	u domain.ExchangeUpdate,
) (domain.Exchange, error) {
	log := slogx.FromContext(ctx)

	if u.SpendingLimit != nil && *u.SpendingLimit < 0 {
		log.Warn("rejected negative spending limit",
			slog.String("exchange_id", id),
			slog.Int("spending_limit", *u.SpendingLimit),
		)
		return domain.Exchange{}, ErrInvalidExchange
	}

	var updated domain.Exchange
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Exchanges().GetExchange(ctx, id)
		if err != nil {
			return err
		}

		if err := tx.Exchanges().UpdateExchangeDetails(ctx, id, u.Apply(current.Details())); err != nil {
			return err
		}

		updated, err = tx.Exchanges().GetExchange(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Exchange{}, ErrExchangeNotFound
		}
		log.Error("failed to update exchange",
			slog.String("exchange_id", id),
			slog.Any("error", err),
		)
		return domain.Exchange{}, err
	}

	log.Debug("exchange details updated", slog.String("exchange_id", id))
	return updated, nil
}
