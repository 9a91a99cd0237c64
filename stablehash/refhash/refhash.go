// Package refhash provides concrete, swappable stablehash.Hasher
// implementations for use by tests, standing
// in for the real target-specific stable hasher (out of scope per spec.md
// §1, external to this module by design). Three independent hash families
// are offered so tests can exercise oracle-agnostic behavior.
package refhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	farm "github.com/dgryski/go-farm"
	"golang.org/x/crypto/blake2b"

	"github.com/plotfi/stablehashtree/stablehash"
)

// XXHash64 hashes an instruction's canonical byte projection with
// cespare/xxhash. Never returns stablehash.NoHash unless fed an empty
// instruction.
type XXHash64 struct{}

func (XXHash64) Hash(instr stablehash.Instruction) stablehash.StableHash {
	if len(instr.Bytes) == 0 {
		return stablehash.NoHash
	}
	h := xxhash.Sum64(instr.Bytes)
	if h == 0 {
		// Collisions with the reserved sentinel are astronomically unlikely
		// but would silently break a match; perturb deterministically.
		h = 1
	}
	return stablehash.StableHash(h)
}

// FarmHash64 hashes an instruction's canonical byte projection with
// dgryski/go-farm's FarmHash, a second, independent hash family useful for
// detecting hash-family-specific bugs in tests.
type FarmHash64 struct{}

func (FarmHash64) Hash(instr stablehash.Instruction) stablehash.StableHash {
	if len(instr.Bytes) == 0 {
		return stablehash.NoHash
	}
	h := farm.Hash64(instr.Bytes)
	if h == 0 {
		h = 1
	}
	return stablehash.StableHash(h)
}

// Blake2b256 hashes an instruction's canonical byte projection with
// golang.org/x/crypto/blake2b and folds the 32-byte digest down to 64 bits,
// mirroring the teacher's trie_blake2b commitment model's choice of hash
// family while fitting this module's single-uint64 StableHash shape. A third,
// cryptographically-strong hash family gives tests one more oracle to swap in independent of the xxhash/farm pair above.
type Blake2b256 struct{}

func (Blake2b256) Hash(instr stablehash.Instruction) stablehash.StableHash {
	if len(instr.Bytes) == 0 {
		return stablehash.NoHash
	}
	digest := blake2b.Sum256(instr.Bytes)
	h := binary.LittleEndian.Uint64(digest[:8])
	if h == 0 {
		h = 1
	}
	return stablehash.StableHash(h)
}

// Unhashable always returns stablehash.NoHash, modeling an instruction the
// real oracle could never fingerprint (e.g. one with unmodeled operands).
type Unhashable struct{}

func (Unhashable) Hash(stablehash.Instruction) stablehash.StableHash {
	return stablehash.NoHash
}
