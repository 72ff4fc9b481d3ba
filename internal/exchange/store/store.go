package store

import (
	"context"
	"errors"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. Sub-repositories are exposed as methods so a Tx-scoped Store hands out
// repositories bound to the same transaction.
type Store interface {
	Exchanges() Exchanges
	Participants() Participants
	Assignments() Assignments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Repositories used
	// inside fn must come from the tx argument.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Exchanges interface {
	// CreateExchange inserts a new exchange (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the title is taken.
	CreateExchange(ctx context.Context, e domain.Exchange) error

	// GetExchange returns an exchange by id.
	GetExchange(ctx context.Context, id string) (domain.Exchange, error)

	// GetExchangeByTitle returns an exchange by its unique title.
	GetExchangeByTitle(ctx context.Context, title string) (domain.Exchange, error)

	// ListExchanges returns all exchanges ordered by id (creation order).
	ListExchanges(ctx context.Context) ([]domain.Exchange, error)

	// UpdateExchangeDetails mutates the organizer-editable fields and bumps updated_at.
	UpdateExchangeDetails(ctx context.Context, id string, d domain.ExchangeDetails) error

	// SetAssignmentsLocked flips the assignments_locked flag.
	SetAssignmentsLocked(ctx context.Context, id string, locked bool) error
}

type Participants interface {
	// CreateParticipant inserts a participant. Returns ErrAlreadyExists when
	// the email is already enrolled in the exchange.
	CreateParticipant(ctx context.Context, p domain.Participant) error

	// GetParticipant returns a participant of the given exchange.
	GetParticipant(ctx context.Context, exchangeID, id string) (domain.Participant, error)

	// ListParticipants returns every participant of an exchange ordered by id.
	ListParticipants(ctx context.Context, exchangeID string) ([]domain.Participant, error)

	// ListActiveParticipantIDs returns the ids of participants eligible for
	// assignment generation, ordered by id.
	ListActiveParticipantIDs(ctx context.Context, exchangeID string) ([]string, error)

	// UpdateParticipant applies the non-nil fields of u and bumps updated_at.
	UpdateParticipant(ctx context.Context, exchangeID, id string, u domain.ParticipantUpdate) error

	// DeleteParticipant removes a participant. Edges naming them are removed
	// by the schema's cascade, so callers clear the assignment set first.
	DeleteParticipant(ctx context.Context, exchangeID, id string) error
}

type Assignments interface {
	// CreateAssignment inserts one giver -> receiver edge.
	CreateAssignment(ctx context.Context, a domain.Assignment) error

	// ListAssignments returns the current assignment set ordered by id.
	ListAssignments(ctx context.Context, exchangeID string) ([]domain.Assignment, error)

	// GetAssignmentByGiver returns the edge whose giver is giverID.
	GetAssignmentByGiver(ctx context.Context, exchangeID, giverID string) (domain.Assignment, error)

	// DeleteAssignments removes the whole assignment set of an exchange.
	DeleteAssignments(ctx context.Context, exchangeID string) error

	// CountAssignments returns the size of the current assignment set.
	CountAssignments(ctx context.Context, exchangeID string) (int64, error)
}
