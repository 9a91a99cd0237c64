package outliner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	require.Equal(t, ModeReading, ParseMode("read"))
	require.Equal(t, ModeReading, ParseMode("READ"))
	require.Equal(t, ModeWriting, ParseMode("write"))
	require.Equal(t, ModeNone, ParseMode(""))
	require.Equal(t, ModeNone, ParseMode("bogus"))
}

func TestSetGetMode(t *testing.T) {
	defer resetForTest()
	SetMode(ModeWriting)
	require.Equal(t, ModeWriting, GetMode())
	SetMode(ModeReading)
	require.Equal(t, ModeReading, GetMode())
}

func TestEnableSingletonHashTreeLazilyAllocatesAndReuses(t *testing.T) {
	defer resetForTest()
	require.False(t, SingletonHashTreeEnabled())

	EnableSingletonHashTree(true)
	require.True(t, SingletonHashTreeEnabled())

	shared := Singleton()
	require.NotNil(t, shared)
	RecordLocalOutlining(shared, seq(1, 2))

	// Re-enabling must reuse the same instance, not reset accumulated state.
	EnableSingletonHashTree(true)
	require.True(t, Singleton().Find(seq(1, 2)))
}

func TestOptionsApplyInstallsModeAndSingleton(t *testing.T) {
	defer resetForTest()
	opts := Options{HashTreeMode: "read", UseSingletonHashTree: true}
	opts.Apply()

	require.Equal(t, ModeReading, GetMode())
	require.True(t, SingletonHashTreeEnabled())
}
