package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const dateLayout = time.DateOnly

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer. One connection serializes write
	// transactions and keeps ":memory:" databases on a single handle.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Exchanges() store.Exchanges       { return &exchangesRepo{q: s.q} }
func (s *Store) Participants() store.Participants { return &participantsRepo{q: s.q} }
func (s *Store) Assignments() store.Assignments   { return &assignmentsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict turns unique and primary key violations into store.ErrAlreadyExists.
func mapConflict(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// requireAffected reports store.ErrNotFound when an update touched no rows.
func requireAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func mapDateNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

func mapNullDate(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil
	}
	return &t
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapExchange(row gen.Exchange) domain.Exchange {
	return domain.Exchange{
		ID:                row.ID,
		Title:             row.Title,
		Date:              mapNullDate(row.Date),
		Location:          row.Location,
		Description:       row.Description,
		SpendingLimit:     int(row.SpendingLimit),
		AssignmentsLocked: row.AssignmentsLocked,
		CreatedAt:         fromMillis(row.CreatedAt),
		UpdatedAt:         fromMillis(row.UpdatedAt),
	}
}

func mapParticipant(row gen.Participant) domain.Participant {
	return domain.Participant{
		ID:                     row.ID,
		ExchangeID:             row.ExchangeID,
		Name:                   row.Name,
		Email:                  row.Email,
		Status:                 domain.ParticipantStatus(row.Status),
		Likes:                  row.Likes,
		Dislikes:               row.Dislikes,
		AllergiesSensitivities: row.AllergiesSensitivities,
		CreatedAt:              fromMillis(row.CreatedAt),
		UpdatedAt:              fromMillis(row.UpdatedAt),
	}
}

func mapAssignment(row gen.Assignment) domain.Assignment {
	return domain.Assignment{
		ID:         row.ID,
		ExchangeID: row.ExchangeID,
		GiverID:    row.GiverID,
		ReceiverID: row.ReceiverID,
		CreatedAt:  fromMillis(row.CreatedAt),
	}
}
