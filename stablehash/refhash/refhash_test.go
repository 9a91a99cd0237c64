package refhash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotfi/stablehashtree/stablehash"
)

func instr(b string) stablehash.Instruction {
	return stablehash.Instruction{Bytes: []byte(b)}
}

func TestHashersAreDeterministic(t *testing.T) {
	for _, h := range []stablehash.Hasher{XXHash64{}, FarmHash64{}, Blake2b256{}} {
		a := h.Hash(instr("addq %rax, %rbx"))
		b := h.Hash(instr("addq %rax, %rbx"))
		require.Equal(t, a, b)
		require.NotEqual(t, stablehash.NoHash, a)
	}
}

func TestHashersDistinguishDifferentInstructions(t *testing.T) {
	for _, h := range []stablehash.Hasher{XXHash64{}, FarmHash64{}, Blake2b256{}} {
		a := h.Hash(instr("addq %rax, %rbx"))
		b := h.Hash(instr("subq %rax, %rbx"))
		require.NotEqual(t, a, b)
	}
}

func TestHashersReturnNoHashForEmptyInstruction(t *testing.T) {
	for _, h := range []stablehash.Hasher{XXHash64{}, FarmHash64{}, Blake2b256{}} {
		require.Equal(t, stablehash.NoHash, h.Hash(stablehash.Instruction{}))
	}
}

func TestUnhashableAlwaysReturnsNoHash(t *testing.T) {
	require.Equal(t, stablehash.NoHash, Unhashable{}.Hash(instr("anything")))
}
