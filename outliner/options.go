package outliner

// Options gathers the runtime knobs spec.md §6 exposes to the embedding
// compiler driver. Unlike the teacher's RPC-facing configuration structs,
// these are plain booleans/strings set directly by a driver's flag-parsing
// layer — there is no wire encoding of Options itself, so no struct tags
// are needed here.
type Options struct {
	// HashTreeMode selects cross-module participation: "" (none), "write"
	// (round one, accumulate locally profitable sequences), or "read"
	// (round two, consult a previously written trie). Parsed with
	// ParseMode.
	HashTreeMode string

	// UseSingletonHashTree enables the process-wide SharedTrie instead of
	// a caller-owned *hashtree.HashTree, for drivers that run round-one
	// outlining across multiple concurrent compilation worker threads
	// sharing one process (spec.md §4.5, §5).
	UseSingletonHashTree bool

	// OutlineDeadCodeOnly and OutlineColdCodeOnly restrict candidate
	// discovery to dead or cold regions of the module respectively; both
	// are advisory flags consumed by the caller's target-independent
	// outliner before candidates ever reach this package; this package
	// has no means of inspecting liveness or profile data itself, so it
	// only stores and forwards these flags as part of the options record.
	OutlineDeadCodeOnly bool
	OutlineColdCodeOnly bool
}

// Apply installs the mode and singleton-trie settings described by o as the
// process-wide state this package consults via GetMode/Singleton.
func (o Options) Apply() {
	SetMode(ParseMode(o.HashTreeMode))
	EnableSingletonHashTree(o.UseSingletonHashTree)
}
