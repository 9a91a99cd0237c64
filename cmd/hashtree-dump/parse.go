package main

import (
	"strconv"
	"strings"

	"github.com/plotfi/stablehashtree/common"
	"github.com/plotfi/stablehashtree/matcher"
	"github.com/plotfi/stablehashtree/stablehash"
)

// parseSequence turns a comma-separated list of decimal hashes into a
// stablehash.Sequence, shared by the -build and -stream demo flags.
func parseSequence(spec string) (stablehash.Sequence, error) {
	parts := strings.Split(spec, ",")
	seq := make(stablehash.Sequence, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, common.WrapMalformed("invalid hash in sequence: " + p)
		}
		seq = append(seq, stablehash.StableHash(v))
	}
	return seq, nil
}

// streamFromHashes turns a parsed hash sequence into an InstructionStream
// whose instructions already carry their stable hash, for use with
// identityHasher. No position is marked invalid; a 0 entry plays the role of
// an unhashable instruction and breaks matches the same way it would from a
// real oracle (stablehash.NoHash).
func streamFromHashes(hashes stablehash.Sequence) matcher.InstructionStream {
	instrs := make([]stablehash.Instruction, len(hashes))
	mask := make([]int, len(hashes))
	for i, h := range hashes {
		instrs[i] = stablehash.Instruction{Opaque: h}
		mask[i] = -1
	}
	return matcher.InstructionStream{Instructions: instrs, InvalidMask: mask}
}

// identityHasher treats an Instruction's Opaque field as an
// already-computed stablehash.StableHash, standing in for the real oracle so
// the -stream demo flag can describe a hash sequence directly on the command
// line instead of synthesizing instruction handles to feed a real hasher.
type identityHasher struct{}

func (identityHasher) Hash(instr stablehash.Instruction) stablehash.StableHash {
	return instr.Opaque.(stablehash.StableHash)
}
