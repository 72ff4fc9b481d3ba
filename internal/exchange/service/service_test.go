package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/assign"
	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite"
	"github.com/astromitts/gifterator3000/pkg/idx"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	exchanges    *ExchangeService
	participants *ParticipantService
	assignments  *AssignmentService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return fixture{
		exchanges:    &ExchangeService{Store: st},
		participants: &ParticipantService{Store: st},
		assignments:  &AssignmentService{Store: st, Generator: assign.NewGenerator(11, 0)},
	}
}

// seed creates an exchange with n active participants and returns the
// exchange and the participant ids.
func (f fixture) seed(t *testing.T, title string, n int) (domain.Exchange, []string) {
	t.Helper()
	ctx := context.Background()

	e, err := f.exchanges.CreateExchange(ctx, title, domain.ExchangeDetails{SpendingLimit: 30})
	require.NoError(t, err)

	ids := make([]string, n)
	for i := range n {
		p, err := f.participants.AddParticipant(ctx, e.ID, domain.Participant{
			Name:   fmt.Sprintf("Participant %d", i),
			Email:  fmt.Sprintf("p%d@example.com", i),
			Status: domain.StatusActive,
		})
		require.NoError(t, err)
		ids[i] = p.ID
	}
	return e, ids
}

func requireCycle(t *testing.T, ids []string, set []domain.Assignment) {
	t.Helper()

	require.Len(t, set, len(ids))
	next := make(map[string]string, len(set))
	for _, a := range set {
		require.NotEqual(t, a.GiverID, a.ReceiverID)
		_, dup := next[a.GiverID]
		require.False(t, dup, "giver %s appears twice", a.GiverID)
		next[a.GiverID] = a.ReceiverID
	}

	seen := map[string]struct{}{}
	cur := ids[0]
	for range ids {
		cur = next[cur]
		seen[cur] = struct{}{}
	}
	require.Equal(t, ids[0], cur)
	require.Len(t, seen, len(ids))
}

func edges(set []domain.Assignment) []assign.Pair {
	out := make([]assign.Pair, len(set))
	for i, a := range set {
		out[i] = assign.Pair{Giver: a.GiverID, Receiver: a.ReceiverID}
	}
	return out
}

func TestCreateExchange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	e, err := f.exchanges.CreateExchange(ctx, "  Holiday 2026  ", domain.ExchangeDetails{Location: "Office"})
	require.NoError(t, err)
	require.Equal(t, "Holiday 2026", e.Title)
	require.False(t, e.AssignmentsLocked)

	t.Run("title taken", func(t *testing.T) {
		_, err := f.exchanges.CreateExchange(ctx, "Holiday 2026", domain.ExchangeDetails{})
		require.ErrorIs(t, err, ErrTitleTaken)
	})

	t.Run("invalid details", func(t *testing.T) {
		_, err := f.exchanges.CreateExchange(ctx, " ", domain.ExchangeDetails{})
		require.ErrorIs(t, err, ErrInvalidExchange)

		_, err = f.exchanges.CreateExchange(ctx, "Negative", domain.ExchangeDetails{SpendingLimit: -1})
		require.ErrorIs(t, err, ErrInvalidExchange)
	})

	t.Run("update details", func(t *testing.T) {
		date := time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC)
		location := "Cafe"
		limit := 50
		got, err := f.exchanges.UpdateExchangeDetails(ctx, e.ID, domain.ExchangeUpdate{
			Date:          &date,
			Location:      &location,
			SpendingLimit: &limit,
		})
		require.NoError(t, err)
		require.Equal(t, "Cafe", got.Location)
		require.Equal(t, 50, got.SpendingLimit)
		require.True(t, date.Equal(*got.Date))

		description := "Bring a card"
		got, err = f.exchanges.UpdateExchangeDetails(ctx, e.ID, domain.ExchangeUpdate{Description: &description})
		require.NoError(t, err)
		require.Equal(t, "Bring a card", got.Description)
		require.Equal(t, "Cafe", got.Location)
		require.NotNil(t, got.Date)

		got, err = f.exchanges.UpdateExchangeDetails(ctx, e.ID, domain.ExchangeUpdate{ClearDate: true})
		require.NoError(t, err)
		require.Nil(t, got.Date)
		require.Equal(t, 50, got.SpendingLimit)

		negative := -1
		_, err = f.exchanges.UpdateExchangeDetails(ctx, e.ID, domain.ExchangeUpdate{SpendingLimit: &negative})
		require.ErrorIs(t, err, ErrInvalidExchange)

		_, err = f.exchanges.UpdateExchangeDetails(ctx, idx.NewString(), domain.ExchangeUpdate{})
		require.ErrorIs(t, err, ErrExchangeNotFound)
	})

	t.Run("find by title", func(t *testing.T) {
		got, err := f.exchanges.FindExchangeByTitle(ctx, " Holiday 2026 ")
		require.NoError(t, err)
		require.Equal(t, e.ID, got.ID)

		_, err = f.exchanges.FindExchangeByTitle(ctx, "Nope")
		require.ErrorIs(t, err, ErrExchangeNotFound)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := f.exchanges.GetExchange(ctx, idx.NewString())
		require.ErrorIs(t, err, ErrExchangeNotFound)
	})
}

func TestConcurrentDetailUpdatesKeepEveryField(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e, _ := f.seed(t, "Concurrent patches", 0)

	const rounds = 20
	for i := range rounds {
		location := fmt.Sprintf("Room %d", i)
		description := fmt.Sprintf("Round %d", i)
		limit := 10 + i

		patches := []domain.ExchangeUpdate{
			{Location: &location},
			{Description: &description},
			{SpendingLimit: &limit},
		}

		var wg sync.WaitGroup
		errs := make(chan error, len(patches))
		for _, u := range patches {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.exchanges.UpdateExchangeDetails(ctx, e.ID, u)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := f.exchanges.GetExchange(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, location, got.Location)
		require.Equal(t, description, got.Description)
		require.Equal(t, limit, got.SpendingLimit)
	}
}

func TestParticipants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e, _ := f.seed(t, "Participants", 0)

	p, err := f.participants.AddParticipant(ctx, e.ID, domain.Participant{Name: "Ann", Email: " Ann@Example.com "})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInvited, p.Status)
	require.Equal(t, "ann@example.com", p.Email)

	t.Run("email taken", func(t *testing.T) {
		_, err := f.participants.AddParticipant(ctx, e.ID, domain.Participant{Name: "Ann 2", Email: "ann@example.com"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown exchange", func(t *testing.T) {
		_, err := f.participants.AddParticipant(ctx, idx.NewString(), domain.Participant{Name: "X", Email: "x@example.com"})
		require.ErrorIs(t, err, ErrExchangeNotFound)

		_, err = f.participants.ListParticipants(ctx, idx.NewString())
		require.ErrorIs(t, err, ErrExchangeNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := f.participants.AddParticipant(ctx, e.ID, domain.Participant{Email: "nobody@example.com"})
		require.ErrorIs(t, err, ErrInvalidParticipant)
	})

	t.Run("status transitions", func(t *testing.T) {
		got, err := f.participants.SetStatus(ctx, e.ID, p.ID, domain.StatusActive)
		require.NoError(t, err)
		require.Equal(t, domain.StatusActive, got.Status)

		_, err = f.participants.SetStatus(ctx, e.ID, p.ID, "maybe")
		require.ErrorIs(t, err, ErrInvalidStatus)

		_, err = f.participants.SetStatus(ctx, e.ID, idx.NewString(), domain.StatusDeclined)
		require.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("preferences", func(t *testing.T) {
		allergies := "peanuts"
		got, err := f.participants.UpdateParticipant(ctx, e.ID, p.ID, domain.ParticipantUpdate{
			AllergiesSensitivities: &allergies,
		})
		require.NoError(t, err)
		require.Equal(t, "peanuts", got.AllergiesSensitivities)
		require.Equal(t, domain.StatusActive, got.Status)
	})
}

func TestGenerateAssignments(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a single cycle over active participants", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Cycle", 7)

		declined, err := f.participants.AddParticipant(ctx, e.ID, domain.Participant{
			Name: "Declined", Email: "declined@example.com", Status: domain.StatusDeclined,
		})
		require.NoError(t, err)

		set, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		requireCycle(t, ids, set)

		for _, a := range set {
			require.NotEqual(t, declined.ID, a.GiverID)
			require.NotEqual(t, declined.ID, a.ReceiverID)
		}
	})

	t.Run("regeneration replaces the set", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Replace", 5)

		_, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		_, err = f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)

		stored, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		requireCycle(t, ids, stored)
	})

	t.Run("locked exchange is left untouched", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Locked", 4)

		first, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)

		_, err = f.assignments.Lock(ctx, e.ID)
		require.NoError(t, err)

		for range 3 {
			_, err = f.assignments.GenerateAssignments(ctx, e.ID, false)
			require.ErrorIs(t, err, assign.ErrExchangeLocked)
		}

		stored, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, edges(first), edges(stored))

		overridden, err := f.assignments.GenerateAssignments(ctx, e.ID, true)
		require.NoError(t, err)
		requireCycle(t, ids, overridden)

		got, err := f.exchanges.GetExchange(ctx, e.ID)
		require.NoError(t, err)
		require.True(t, got.AssignmentsLocked)
	})

	t.Run("too few active participants keeps the previous set", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Shrinking", 3)

		first, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)

		for _, id := range ids[1:] {
			_, err := f.participants.SetStatus(ctx, e.ID, id, domain.StatusDeclined)
			require.NoError(t, err)
		}

		_, err = f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.ErrorIs(t, err, assign.ErrInsufficientParticipants)

		stored, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, edges(first), edges(stored))
	})

	t.Run("unknown exchange", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.assignments.GenerateAssignments(ctx, idx.NewString(), false)
		require.ErrorIs(t, err, ErrExchangeNotFound)
	})

	t.Run("concurrent calls never interleave", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Concurrent", 12)

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		stored, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		requireCycle(t, ids, stored)
		require.Zero(t, f.assignments.locks.size())
	})
}

func TestOrderedAssignments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e, ids := f.seed(t, "Ordered", 6)

	empty, err := f.assignments.OrderedAssignments(ctx, e.ID)
	require.NoError(t, err)
	require.Empty(t, empty)

	generated, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
	require.NoError(t, err)

	ordered, err := f.assignments.OrderedAssignments(ctx, e.ID)
	require.NoError(t, err)
	requireCycle(t, ids, ordered)
	require.Equal(t, generated[0].GiverID, ordered[0].GiverID)
	for i := 1; i < len(ordered); i++ {
		require.Equal(t, ordered[i-1].ReceiverID, ordered[i].GiverID)
	}
	require.Equal(t, ordered[0].GiverID, ordered[len(ordered)-1].ReceiverID)

	_, err = f.assignments.OrderedAssignments(ctx, idx.NewString())
	require.ErrorIs(t, err, ErrExchangeNotFound)
}

func TestRecipientFor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e, ids := f.seed(t, "Recipient", 3)

	_, err := f.assignments.RecipientFor(ctx, e.ID, ids[0])
	require.ErrorIs(t, err, ErrAssignmentNotFound)

	set, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
	require.NoError(t, err)

	for _, a := range set {
		recipient, err := f.assignments.RecipientFor(ctx, e.ID, a.GiverID)
		require.NoError(t, err)
		require.Equal(t, a.ReceiverID, recipient.ID)
	}

	_, err = f.assignments.RecipientFor(ctx, e.ID, idx.NewString())
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestRemoveParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned participant clears the set", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Remove assigned", 4)

		_, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)

		require.NoError(t, f.assignments.RemoveParticipant(ctx, e.ID, ids[1]))

		ordered, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.Empty(t, ordered)

		_, err = f.participants.GetParticipant(ctx, e.ID, ids[1])
		require.ErrorIs(t, err, ErrParticipantNotFound)

		remaining := []string{ids[0], ids[2], ids[3]}
		set, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		requireCycle(t, remaining, set)
	})

	t.Run("unassigned participant keeps the set", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Remove unassigned", 3)

		invited, err := f.participants.AddParticipant(ctx, e.ID, domain.Participant{
			Name:  "Late",
			Email: "late@example.com",
		})
		require.NoError(t, err)

		_, err = f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		_, err = f.assignments.Lock(ctx, e.ID)
		require.NoError(t, err)

		require.NoError(t, f.assignments.RemoveParticipant(ctx, e.ID, invited.ID))

		ordered, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		requireCycle(t, ids, ordered)
	})

	t.Run("locked set is not broken", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Remove locked", 4)

		set, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		_, err = f.assignments.Lock(ctx, e.ID)
		require.NoError(t, err)

		err = f.assignments.RemoveParticipant(ctx, e.ID, ids[2])
		require.ErrorIs(t, err, ErrParticipantAssigned)

		ordered, err := f.assignments.OrderedAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, edges(set), edges(ordered))

		_, err = f.participants.GetParticipant(ctx, e.ID, ids[2])
		require.NoError(t, err)
	})

	t.Run("ordering never reports a broken cycle", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Remove repeatedly", 6)

		for len(ids) > 0 {
			if len(ids) >= 2 {
				_, err := f.assignments.GenerateAssignments(ctx, e.ID, false)
				require.NoError(t, err)
			}

			require.NoError(t, f.assignments.RemoveParticipant(ctx, e.ID, ids[len(ids)/2]))
			ids = append(ids[:len(ids)/2], ids[len(ids)/2+1:]...)

			ordered, err := f.assignments.OrderedAssignments(ctx, e.ID)
			require.NoError(t, err)
			require.Empty(t, ordered)
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		f := newFixture(t)
		e, _ := f.seed(t, "Remove unknown", 2)

		err := f.assignments.RemoveParticipant(ctx, idx.NewString(), idx.NewString())
		require.ErrorIs(t, err, ErrExchangeNotFound)

		err = f.assignments.RemoveParticipant(ctx, e.ID, idx.NewString())
		require.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("releases the exchange lock", func(t *testing.T) {
		f := newFixture(t)
		e, ids := f.seed(t, "Remove lock entry", 2)

		require.NoError(t, f.assignments.RemoveParticipant(ctx, e.ID, ids[0]))
		require.Zero(t, f.assignments.locks.size())
	})
}

func TestLockToggle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e, _ := f.seed(t, "Toggle", 2)

	got, err := f.assignments.ToggleLock(ctx, e.ID)
	require.NoError(t, err)
	require.True(t, got.AssignmentsLocked)

	got, err = f.assignments.Lock(ctx, e.ID)
	require.NoError(t, err)
	require.True(t, got.AssignmentsLocked)

	got, err = f.assignments.ToggleLock(ctx, e.ID)
	require.NoError(t, err)
	require.False(t, got.AssignmentsLocked)

	got, err = f.assignments.Unlock(ctx, e.ID)
	require.NoError(t, err)
	require.False(t, got.AssignmentsLocked)

	_, err = f.assignments.Lock(ctx, idx.NewString())
	require.ErrorIs(t, err, ErrExchangeNotFound)
}

func TestExchangeLocksCancel(t *testing.T) {
	var locks exchangeLocks

	release, err := locks.acquire(context.Background(), "x")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locks.acquire(ctx, "x")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, 1, locks.size())

	release()
	require.Zero(t, locks.size())
}
