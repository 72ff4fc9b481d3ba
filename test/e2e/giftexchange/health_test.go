package giftexchange_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProbes verifies the liveness and readiness endpoints.
func TestProbes(t *testing.T) {
	client := setupContainer(t)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
