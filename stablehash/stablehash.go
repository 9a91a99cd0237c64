// Package stablehash defines the vocabulary this module uses to talk about
// the (out-of-scope, externally supplied) stable hashing oracle: a pure,
// deterministic function from a single machine instruction to a 64-bit
// fingerprint. The real oracle — hashing actual target instructions and
// operands — lives outside this module; only its determinism and its
// reserved zero value matter here.
package stablehash

// StableHash is a 64-bit fingerprint of a single machine instruction. Zero is
// reserved to mean "not computable"; a StableHash with that value terminates
// any in-progress match and never appears in a well-formed Sequence (the
// hashtree does not check for it on Insert or Find).
type StableHash uint64

// NoHash is the reserved sentinel meaning "hash not computable".
const NoHash StableHash = 0

// Sequence is an ordered, finite run of non-zero StableHash values, typically
// 2-20 long. A zero-length Sequence is legal: inserting it is a no-op and
// finding it is vacuously false (the root is never terminal).
type Sequence []StableHash

// Instruction is a minimal structural stand-in for "a handle to a machine
// instruction" — the real representation (register classes, operand kinds,
// debug info) belongs to the target-specific code generator, which is out of
// scope for this module. Opaque carries whatever the embedder's instruction
// handle actually is; Bytes is a canonical byte projection a Hasher can feed
// into a hash function.
type Instruction struct {
	Opaque interface{}
	Bytes  []byte
}

// Hasher is the external HashOracle collaborator: stable_hash(instruction) ->
// u64, pure and deterministic across process invocations. Implementations
// must never look at module-local state such as register numbering.
type Hasher interface {
	Hash(instr Instruction) StableHash
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(Instruction) StableHash

func (f HasherFunc) Hash(instr Instruction) StableHash { return f(instr) }
