package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatJoinsMixedFragments(t *testing.T) {
	got := Concat([]byte("a/"), byte('b'), "c")
	require.Equal(t, []byte("a/bc"), got)
}

func TestAssertPanicsOnFalse(t *testing.T) {
	require.Panics(t, func() { Assert(false, "boom %d", 42) })
}

func TestAssertNoopOnTrue(t *testing.T) {
	require.NotPanics(t, func() { Assert(true, "unreachable") })
}
