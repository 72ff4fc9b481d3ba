package giftexchange_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/stretchr/testify/require"
)

// TestGenerateAssignments covers the full organizer flow: enrol, generate,
// read back in chain order, look up a recipient.
func TestGenerateAssignments(t *testing.T) {
	client := setupContainer(t)
	ctx := t.Context()

	e, ids := seedExchange(t, client, "E2E Office", "alice", "bob", "carol", "dave", "erin")

	_, err := client.AddParticipant(ctx, e.ID, exchangesdk.AddParticipantRequest{
		Name:   "frank",
		Email:  "frank@example.com",
		Status: exchangesdk.StatusDeclined,
	})
	require.NoError(t, err)

	generated, err := client.GenerateAssignments(ctx, e.ID, false)
	require.NoError(t, err)
	assertSingleCycle(t, ids, generated.Assignments)

	stored, err := client.GetAssignments(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, generated.Assignments, stored.Assignments)

	for _, a := range stored.Assignments {
		recipient, err := client.GetRecipient(ctx, e.ID, a.GiverID)
		require.NoError(t, err)
		require.Equal(t, a.ReceiverID, recipient.Recipient.ID)
	}
}

// TestLockedExchange verifies a locked exchange keeps its assignments until
// the lock is overridden or released.
func TestLockedExchange(t *testing.T) {
	client := setupContainer(t)
	ctx := t.Context()

	e, ids := seedExchange(t, client, "E2E Locked", "alice", "bob", "carol")

	first, err := client.GenerateAssignments(ctx, e.ID, false)
	require.NoError(t, err)

	_, err = client.LockAssignments(ctx, e.ID)
	require.NoError(t, err)

	_, err = client.GenerateAssignments(ctx, e.ID, false)
	assertAPIError(t, err, http.StatusConflict, exchangesdk.ErrorCodeExchangeLocked)

	kept, err := client.GetAssignments(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, first.Assignments, kept.Assignments)

	forced, err := client.GenerateAssignments(ctx, e.ID, true)
	require.NoError(t, err)
	assertSingleCycle(t, ids, forced.Assignments)

	toggled, err := client.ToggleLock(ctx, e.ID)
	require.NoError(t, err)
	require.False(t, toggled.AssignmentsLocked)

	_, err = client.GenerateAssignments(ctx, e.ID, false)
	require.NoError(t, err)
}

// TestInsufficientParticipants verifies generation needs two active participants.
func TestInsufficientParticipants(t *testing.T) {
	client := setupContainer(t)

	e, _ := seedExchange(t, client, "E2E Lonely", "alice")

	_, err := client.GenerateAssignments(t.Context(), e.ID, false)
	assertAPIError(t, err, http.StatusUnprocessableEntity, exchangesdk.ErrorCodeInsufficientParticipants)
}

// TestConcurrentGeneration fires overlapping generations at one exchange and
// checks the stored set is still a single cycle.
func TestConcurrentGeneration(t *testing.T) {
	client := setupContainer(t)
	ctx := t.Context()

	e, ids := seedExchange(t, client, "E2E Busy", "a", "b", "c", "d", "e", "f", "g", "h")

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GenerateAssignments(ctx, e.ID, false)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := client.GetAssignments(ctx, e.ID)
	require.NoError(t, err)
	assertSingleCycle(t, ids, stored.Assignments)
}

// TestRateLimitGeneration verifies generation is limited per exchange with
// production settings.
func TestRateLimitGeneration(t *testing.T) {
	client := setupContainerWithDefaultRateLimits(t)
	ctx := t.Context()

	e, _ := seedExchange(t, client, "E2E Limited", "alice", "bob")

	var lastErr error
	for i := range 6 {
		_, err := client.GenerateAssignments(ctx, e.ID, false)
		if i < 5 {
			require.NoError(t, err, "request %d should not be rate limited", i+1)
		} else {
			lastErr = err
		}
	}
	assertAPIError(t, lastErr, http.StatusTooManyRequests, exchangesdk.ErrorCodeRateLimitExceeded)
}
