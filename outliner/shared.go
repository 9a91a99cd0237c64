package outliner

import (
	deadlock "github.com/sasha-s/go-deadlock"

	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/stablehash"
)

// SharedTrie is the process-wide singleton HashTree described in spec.md
// §4.5 and §5: writes (InsertMany, used exclusively during round one) take a
// deadlock-detecting mutex once per call and release on completion; reads
// (Find, and Walk through Tree(), used during round two) are performed after round-one
// quiescence and take no lock at all, per spec.md §4.5's documented
// discipline. go-deadlock rather than a plain sync.Mutex is used here
// specifically because this lock sits on the one genuinely concurrent
// write path in the whole module (spec.md §5: "multiple compilation worker
// threads may invoke record_local_outlining concurrently") — a silent
// self-deadlock there would stall an entire ThinLTO link with no other
// signal. go-deadlock was a transitive dependency of the teacher's
// badger-backed store; this module requires it directly.
type SharedTrie struct {
	mu   deadlock.Mutex
	tree *hashtree.HashTree
}

// NewSharedTrie returns an empty SharedTrie.
func NewSharedTrie() *SharedTrie {
	return &SharedTrie{tree: hashtree.New()}
}

// InsertMany acquires the mutex once, delegates to the underlying
// HashTree.InsertMany, and releases on completion (spec.md §4.5).
func (s *SharedTrie) InsertMany(sequences []stablehash.Sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.InsertMany(sequences)
}

// Find performs an unlocked read, relying on the caller to have established
// round-one quiescence first (spec.md §4.5, §5: "the Matcher assumes the
// trie is frozen while it runs; concurrent mutation during matching is
// undefined").
func (s *SharedTrie) Find(sequence stablehash.Sequence) bool {
	return s.tree.Find(sequence)
}

// Tree returns the underlying HashTree for read-only use (e.g. by a
// matcher.Matcher) once round one has quiesced. Callers must not mutate it
// directly; use InsertMany.
func (s *SharedTrie) Tree() *hashtree.HashTree {
	return s.tree
}
