package idx_test

import (
	"testing"
	"time"

	"github.com/astromitts/gifterator3000/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())
	require.True(t, idx.Valid(id.String()))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "alice@example.com"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
		require.False(t, idx.Valid(s))
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

func TestMonotonicWithinMillisecond(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()

	prev := idx.NewAt(tm)
	for range 100 {
		next := idx.NewAt(tm)
		require.Equal(t, -1, idx.Compare(prev, next))
		prev = next
	}
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)

	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
	require.True(t, idx.Zero.Time().IsZero())
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { idx.MustParse("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV") })
	require.Panics(t, func() { idx.MustParse("nope") })
}
