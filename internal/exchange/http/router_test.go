package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/astromitts/gifterator3000/internal/exchange/assign"
	exchangehttp "github.com/astromitts/gifterator3000/internal/exchange/http"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/astromitts/gifterator3000/pkg/httpx"
	"github.com/astromitts/gifterator3000/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*httptest.Server, *exchangesdk.Client) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	router := exchangehttp.NewRouter("test", st, slogx.Discard())
	router.ExchangeService = &service.ExchangeService{Store: st}
	router.ParticipantService = &service.ParticipantService{Store: st}
	router.AssignmentService = &service.AssignmentService{Store: st, Generator: assign.NewGenerator(3, 0)}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := exchangesdk.NewClient(srv.URL)
	client.ValidateRequests = false
	return srv, client
}

func addActive(t *testing.T, c *exchangesdk.Client, exchangeID, name string) exchangesdk.ParticipantResponse {
	t.Helper()

	p, err := c.AddParticipant(context.Background(), exchangeID, exchangesdk.AddParticipantRequest{
		Name:   name,
		Email:  strings.ToLower(name) + "@example.com",
		Status: exchangesdk.StatusActive,
	})
	require.NoError(t, err)
	return *p
}

func requireAPIError(t *testing.T, err error, status int, code string) *exchangesdk.APIError {
	t.Helper()

	require.Error(t, err)
	var apiErr *exchangesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func requireChain(t *testing.T, ids []string, set []exchangesdk.AssignmentResponse) {
	t.Helper()

	require.Len(t, set, len(ids))
	givers := map[string]bool{}
	receivers := map[string]bool{}
	for i, a := range set {
		require.NotEqual(t, a.GiverID, a.ReceiverID)
		require.NotEmpty(t, a.GiverName)
		require.NotEmpty(t, a.ReceiverName)
		givers[a.GiverID] = true
		receivers[a.ReceiverID] = true
		require.Equal(t, set[(i+1)%len(set)].GiverID, a.ReceiverID, "chain broken at %d", i)
	}
	for _, id := range ids {
		require.True(t, givers[id], "%s never gives", id)
		require.True(t, receivers[id], "%s never receives", id)
	}
}

func TestExchangeLifecycle(t *testing.T) {
	ctx := context.Background()
	_, c := newServer(t)

	e, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{
		Title:         "Office 2026",
		Date:          "2026-12-18",
		Location:      "Kitchen",
		SpendingLimit: 25,
	})
	require.NoError(t, err)
	require.Equal(t, "2026-12-18", e.Date)
	require.False(t, e.AssignmentsLocked)

	location := "Google Hangout"
	updated, err := c.UpdateExchange(ctx, e.ID, exchangesdk.UpdateExchangeRequest{Location: &location})
	require.NoError(t, err)
	require.Equal(t, "Google Hangout", updated.Location)
	require.Equal(t, "2026-12-18", updated.Date)
	require.Equal(t, 25, updated.SpendingLimit)

	list, err := c.ListExchanges(ctx)
	require.NoError(t, err)
	require.Len(t, list.Exchanges, 1)

	ids := []string{
		addActive(t, c, e.ID, "Alice").ID,
		addActive(t, c, e.ID, "Bob").ID,
		addActive(t, c, e.ID, "Carol").ID,
	}
	invited, err := c.AddParticipant(ctx, e.ID, exchangesdk.AddParticipantRequest{Name: "Dave", Email: "dave@example.com"})
	require.NoError(t, err)
	require.Equal(t, exchangesdk.StatusInvited, invited.Status)

	t.Run("generate covers active participants only", func(t *testing.T) {
		set, err := c.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		require.Equal(t, e.ID, set.ExchangeID)
		requireChain(t, ids, set.Assignments)

		stored, err := c.GetAssignments(ctx, e.ID)
		require.NoError(t, err)
		requireChain(t, ids, stored.Assignments)
		require.Equal(t, set.Assignments[0].GiverID, stored.Assignments[0].GiverID)

		recipient, err := c.GetRecipient(ctx, e.ID, stored.Assignments[0].GiverID)
		require.NoError(t, err)
		require.Equal(t, stored.Assignments[0].ReceiverID, recipient.Recipient.ID)
	})

	t.Run("invited participant has no recipient", func(t *testing.T) {
		_, err := c.GetRecipient(ctx, e.ID, invited.ID)
		requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeAssignmentNotFound)
	})

	t.Run("lock blocks regeneration until overridden", func(t *testing.T) {
		before, err := c.GetAssignments(ctx, e.ID)
		require.NoError(t, err)

		locked, err := c.LockAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.True(t, locked.AssignmentsLocked)

		_, err = c.GenerateAssignments(ctx, e.ID, false)
		requireAPIError(t, err, http.StatusConflict, exchangesdk.ErrorCodeExchangeLocked)

		after, err := c.GetAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.True(t, after.AssignmentsLocked)
		require.Equal(t, before.Assignments, after.Assignments)

		forced, err := c.GenerateAssignments(ctx, e.ID, true)
		require.NoError(t, err)
		requireChain(t, ids, forced.Assignments)
		require.True(t, forced.AssignmentsLocked)
	})

	t.Run("toggle and unlock", func(t *testing.T) {
		toggled, err := c.ToggleLock(ctx, e.ID)
		require.NoError(t, err)
		require.False(t, toggled.AssignmentsLocked)

		toggled, err = c.ToggleLock(ctx, e.ID)
		require.NoError(t, err)
		require.True(t, toggled.AssignmentsLocked)

		unlocked, err := c.UnlockAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.False(t, unlocked.AssignmentsLocked)
	})

	t.Run("declining shrinks the next cycle", func(t *testing.T) {
		_, err := c.SetParticipantStatus(ctx, e.ID, ids[2], exchangesdk.StatusDeclined)
		require.NoError(t, err)

		set, err := c.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		requireChain(t, ids[:2], set.Assignments)
	})
}

func TestRemoveParticipant(t *testing.T) {
	ctx := context.Background()
	_, c := newServer(t)

	e, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Title: "Leavers"})
	require.NoError(t, err)
	ids := []string{
		addActive(t, c, e.ID, "Ann").ID,
		addActive(t, c, e.ID, "Ben").ID,
		addActive(t, c, e.ID, "Cat").ID,
		addActive(t, c, e.ID, "Dan").ID,
	}

	_, err = c.GenerateAssignments(ctx, e.ID, false)
	require.NoError(t, err)
	_, err = c.LockAssignments(ctx, e.ID)
	require.NoError(t, err)

	t.Run("refused while locked", func(t *testing.T) {
		err := c.RemoveParticipant(ctx, e.ID, ids[1])
		requireAPIError(t, err, http.StatusConflict, exchangesdk.ErrorCodeExchangeLocked)

		stored, err := c.GetAssignments(ctx, e.ID)
		require.NoError(t, err)
		requireChain(t, ids, stored.Assignments)
	})

	t.Run("clears the set once unlocked", func(t *testing.T) {
		_, err := c.UnlockAssignments(ctx, e.ID)
		require.NoError(t, err)

		require.NoError(t, c.RemoveParticipant(ctx, e.ID, ids[1]))

		stored, err := c.GetAssignments(ctx, e.ID)
		require.NoError(t, err)
		require.Empty(t, stored.Assignments)

		participants, err := c.ListParticipants(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, participants.Participants, 3)

		set, err := c.GenerateAssignments(ctx, e.ID, false)
		require.NoError(t, err)
		requireChain(t, []string{ids[0], ids[2], ids[3]}, set.Assignments)
	})

	t.Run("unknown participant", func(t *testing.T) {
		err := c.RemoveParticipant(ctx, e.ID, ids[1])
		requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeParticipantNotFound)

		err = c.RemoveParticipant(ctx, "01JUNKNOWNEXCHANGE00000000", ids[0])
		requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeExchangeNotFound)
	})
}

func TestFindAndPatchExchange(t *testing.T) {
	ctx := context.Background()
	_, c := newServer(t)

	e, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{
		Title:       "Book Club 2026",
		Date:        "2026-12-05",
		Description: "Paperbacks only",
	})
	require.NoError(t, err)
	_, err = c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Title: "Book Club 2025"})
	require.NoError(t, err)

	found, ok, err := c.FindExchangeByTitle(ctx, "Book Club 2026")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, e.ID, found.ID)

	_, ok, err = c.FindExchangeByTitle(ctx, "Book Club")
	require.NoError(t, err)
	require.False(t, ok)

	limit := 15
	patched, err := c.UpdateExchange(ctx, e.ID, exchangesdk.UpdateExchangeRequest{SpendingLimit: &limit})
	require.NoError(t, err)
	require.Equal(t, 15, patched.SpendingLimit)
	require.Equal(t, "Paperbacks only", patched.Description)
	require.Equal(t, "2026-12-05", patched.Date)

	unset := ""
	patched, err = c.UpdateExchange(ctx, e.ID, exchangesdk.UpdateExchangeRequest{Date: &unset})
	require.NoError(t, err)
	require.Empty(t, patched.Date)
	require.Equal(t, 15, patched.SpendingLimit)

	_, err = c.UpdateExchange(ctx, "01JUNKNOWNEXCHANGE00000000", exchangesdk.UpdateExchangeRequest{SpendingLimit: &limit})
	requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeExchangeNotFound)
}

func TestErrorMapping(t *testing.T) {
	ctx := context.Background()
	srv, c := newServer(t)

	e, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Title: "Errors"})
	require.NoError(t, err)
	solo := addActive(t, c, e.ID, "Solo")

	t.Run("unknown exchange", func(t *testing.T) {
		_, err := c.GetExchange(ctx, "01JUNKNOWNEXCHANGE00000000")
		requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeExchangeNotFound)

		_, err = c.GenerateAssignments(ctx, "01JUNKNOWNEXCHANGE00000000", false)
		requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeExchangeNotFound)
	})

	t.Run("insufficient participants", func(t *testing.T) {
		_, err := c.GenerateAssignments(ctx, e.ID, false)
		requireAPIError(t, err, http.StatusUnprocessableEntity, exchangesdk.ErrorCodeInsufficientParticipants)
	})

	t.Run("unknown participant", func(t *testing.T) {
		_, err := c.GetRecipient(ctx, e.ID, "01JUNKNOWNPARTICIPANT00000")
		requireAPIError(t, err, http.StatusNotFound, exchangesdk.ErrorCodeParticipantNotFound)
	})

	t.Run("duplicates", func(t *testing.T) {
		_, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Title: "Errors"})
		requireAPIError(t, err, http.StatusConflict, exchangesdk.ErrorCodeTitleTaken)

		_, err = c.AddParticipant(ctx, e.ID, exchangesdk.AddParticipantRequest{Name: "Solo", Email: solo.Email})
		requireAPIError(t, err, http.StatusConflict, exchangesdk.ErrorCodeEmailTaken)
	})

	t.Run("validation fields", func(t *testing.T) {
		_, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Date: "18/12/2026", SpendingLimit: -1})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, exchangesdk.ErrorCodeValidation)
		require.Contains(t, apiErr.Fields, "title")
		require.Contains(t, apiErr.Fields, "date")
		require.Contains(t, apiErr.Fields, "spending_limit")
	})

	t.Run("malformed override flag", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/exchanges/"+e.ID+"/assignments?override_lock=maybe", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown body field", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/exchanges", "application/json", strings.NewReader(`{"title":"x","owner":"me"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), exchangesdk.ErrorCodeInvalidRequest)
	})
}

func TestSystemEndpoints(t *testing.T) {
	ctx := context.Background()
	srv, c := newServer(t)

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NotEmpty(t, resp.Header.Get(slogx.RequestIDHeader))
}

func TestGenerateRateLimitedPerExchange(t *testing.T) {
	ctx := context.Background()
	_, c := newServer(t)

	e, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Title: "Busy"})
	require.NoError(t, err)
	addActive(t, c, e.ID, "Ann")
	addActive(t, c, e.ID, "Ben")

	other, err := c.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{Title: "Quiet"})
	require.NoError(t, err)

	var limited bool
	for range httpx.StrictLimit.Burst + 1 {
		if _, err := c.GenerateAssignments(ctx, e.ID, false); err != nil {
			requireAPIError(t, err, http.StatusTooManyRequests, exchangesdk.ErrorCodeRateLimitExceeded)
			limited = true
			break
		}
	}
	require.True(t, limited)

	// A different exchange has its own budget.
	_, err = c.GenerateAssignments(ctx, other.ID, false)
	requireAPIError(t, err, http.StatusUnprocessableEntity, exchangesdk.ErrorCodeInsufficientParticipants)
}
