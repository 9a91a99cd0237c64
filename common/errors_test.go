package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapIoErrorNilPassthrough(t *testing.T) {
	require.NoError(t, WrapIoError("read x", nil))
}

func TestWrapIoErrorWrapsUnderlying(t *testing.T) {
	underlying := errors.New("permission denied")
	wrapped := WrapIoError("read x", underlying)
	require.Error(t, wrapped)
	require.True(t, errors.Is(wrapped, underlying))
}

func TestWrapMalformedIsMatchableViaErrorsIs(t *testing.T) {
	err := WrapMalformed("missing root entry")
	require.True(t, errors.Is(err, ErrMalformedEncoding))
}
