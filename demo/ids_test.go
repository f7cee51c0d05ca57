package demo

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errmodel/chain"
	"github.com/jmgilman/go/errmodel/idnum"
	"github.com/jmgilman/go/errmodel/marker"
	"github.com/jmgilman/go/errmodel/propagate"
	"github.com/jmgilman/go/errmodel/table"
)

func TestAccessMap_Scenario(t *testing.T) {
	ids := table.Default()

	t.Run("valid id", func(t *testing.T) {
		n, err := AccessMap1(ids, 42)
		require.NoError(t, err)
		require.Equal(t, uint32(77), n)

		n, lf := AccessMap2(ids, 42)
		require.Nil(t, lf)
		require.Equal(t, uint32(77), n)

		n, err = AccessMap3(ids, 42)
		require.NoError(t, err)
		require.Equal(t, uint32(77), n)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := AccessMap1(ids, 41)
		require.EqualError(t, err, "not divisible by 7")

		_, err = AccessMap3(ids, 41)
		require.Equal(t, idnum.KindInvalidNumber, idnum.KindOf(err))
		v, ok := idnum.ValueOf(err)
		require.True(t, ok)
		require.Equal(t, uint32(76), v)
		require.EqualError(t, err, "invalid id number (76)")
	})

	t.Run("missing id", func(t *testing.T) {
		n, err := AccessMap1(ids, 99)
		require.EqualError(t, err, "key lookup failure")
		require.Zero(t, n)

		n, lf := AccessMap2(ids, 99)
		require.NotNil(t, lf)
		require.Zero(t, n)

		n, err = AccessMap3(ids, 99)
		require.True(t, stderrors.Is(err, idnum.ErrLookupFailure))
		require.Zero(t, n)
	})
}

func TestAccessMap_AbsentKeys(t *testing.T) {
	ids := table.Default()

	for _, key := range []uint32{0, 1, 40, 43, 99, 1 << 31} {
		_, err := AccessMap1(ids, key)
		require.EqualError(t, err, "key lookup failure", "key %d", key)

		_, lf := AccessMap2(ids, key)
		require.NotNil(t, lf, "key %d", key)

		_, err = AccessMap3(ids, key)
		require.Equal(t, idnum.KindLookupFailure, idnum.KindOf(err), "key %d", key)
	}
}

func TestAccessMap_Validation(t *testing.T) {
	entries := make(map[uint32]uint32)
	for v := uint32(0); v < 100; v++ {
		entries[v] = v
	}
	ids := table.New(entries)

	for v := uint32(0); v < 100; v++ {
		n1, err1 := AccessMap1(ids, v)
		n3, err3 := AccessMap3(ids, v)

		if v%7 == 0 {
			require.NoError(t, err1)
			require.NoError(t, err3)
			require.Equal(t, v, n1)
			require.Equal(t, v, n3)
			continue
		}

		require.EqualError(t, err1, "not divisible by 7")
		got, ok := idnum.ValueOf(err3)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

// TestAccessMap2_DoesNotValidate documents that the zero-cost path cannot
// represent an invalid value: an id that the other strategies reject is
// returned as a success.
func TestAccessMap2_DoesNotValidate(t *testing.T) {
	ids := table.Default()

	n, lf := AccessMap2(ids, 41)
	require.Nil(t, lf)
	require.Equal(t, uint32(76), n)

	_, err := AccessMap3(ids, 41)
	require.Error(t, err)
}

func TestAccessMap2_NoAllocations(t *testing.T) {
	ids := table.Default()

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = AccessMap2(ids, 99)
		_, _ = AccessMap2(ids, 42)
	})
	require.Zero(t, allocs)
}

func TestAccessMap_WideningIsExplicit(t *testing.T) {
	ids := table.Default()

	_, lf := AccessMap2(ids, 99)
	err := chain.Context(chain.From(lf.Err()), "failed to resolve id 99")
	require.Equal(t, "failed to resolve id 99\n\nCaused by:\n    key lookup failure", chain.Render(err))
	require.True(t, stderrors.Is(err, marker.New()))

	_, err = AccessMap3(ids, 41)
	err = chain.Context(chain.From(err), "failed to resolve id 41")
	require.Equal(t, idnum.KindInvalidNumber, idnum.KindOf(err))
}

func TestAccessMap_WideningOnSuccess(t *testing.T) {
	ids := table.Default()

	n, lf := AccessMap2(ids, 42)
	require.Equal(t, uint32(77), n)
	require.Nil(t, lf.Err())
	require.Nil(t, chain.From(lf))
	require.Nil(t, chain.WithContext(lf, func() string {
		panic("context built for a successful lookup")
	}))

	_, e := propagate.Require(IDTable(ids), 42, idnum.NewLookupFailure)
	require.Nil(t, chain.From(e))
	require.Equal(t, "", chain.Render(e))
}
