package outliner

import (
	"context"

	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/matcher"
	"github.com/plotfi/stablehashtree/stablehash"
)

// sequenceInserter is satisfied by both *hashtree.HashTree and *SharedTrie,
// so RecordLocalOutlining works the same way whether or not singleton
// sharing is enabled (spec.md §4.5).
type sequenceInserter interface {
	InsertMany([]stablehash.Sequence)
}

// sequenceFinder is satisfied by both *hashtree.HashTree and *SharedTrie.
type sequenceFinder interface {
	Find(stablehash.Sequence) bool
}

// RecordLocalOutlining is called for each locally profitable sequence the
// target-independent outliner discovers during round one: it inserts
// sequence into the global hash tree (spec.md §4.4). target is whichever
// trie this process is accumulating into — a plain *hashtree.HashTree for a
// single-threaded build, or a *SharedTrie when
// use-singleton-machine-outliner-hashtree is set (spec.md §4.5, §6).
func RecordLocalOutlining(target sequenceInserter, sequence stablehash.Sequence) {
	target.InsertMany([]stablehash.Sequence{sequence})
}

// BlockFlags carries whatever per-basic-block bookkeeping the (out-of-scope)
// target-independent outliner tracks per instruction position — the real
// MachineOutlinerGlobal.cpp threads a DenseMap<MachineBasicBlock*, unsigned>
// through for this; since the concrete instruction/block representation is
// external to this module (spec.md §1), it is modeled here as an opaque
// per-position value copied onto each resulting Candidate's BlockFlag field
// so the cost model can consult it.
type BlockFlags []uint32

func blockFlagAt(flags BlockFlags, idx int) uint32 {
	if idx < 0 || idx >= len(flags) {
		return 0
	}
	return flags[idx]
}

// AugmentRoundTwo runs the Matcher over stream, and for every MatchedEntry
// synthesizes a single-element candidate set, consults costModel, and —
// when accepted — records a cross-module-provenanced OutlinedFunction with
// NoResidualCodeCost and Singleton set on its candidate, plus the stable
// hash sequence computed over the matched slice attached for provenance /
// reinsertion (spec.md §4.4). Rejected candidate sets (costModel returns an
// empty Candidates slice) are dropped silently, matching the original's
// "continue" on an empty OutlinedFunction.
func AugmentRoundTwo(
	ctx context.Context,
	stream matcher.InstructionStream,
	blockFlags BlockFlags,
	functionList []OutlinedFunction,
	trie *hashtree.HashTree,
	hasher stablehash.Hasher,
	costModel CostModel,
) []OutlinedFunction {
	m := matcher.New(trie, hasher)
	matches := m.Match(ctx, stream)

	for _, match := range matches {
		candidate := Candidate{
			StartIndex: match.StartIndex,
			Length:     match.Length,
			BlockFlag:  blockFlagAt(blockFlags, match.StartIndex),
		}

		of := costModel.OutliningCandidateInfo([]Candidate{candidate})
		if len(of.Candidates) == 0 {
			continue
		}

		for i := range of.Candidates {
			of.Candidates[i].NoResidualCodeCost = true
			of.Candidates[i].Singleton = true
		}
		of.NoResidualCodeCostOverride = true
		of.StableHashSequence = hashSliceOf(stream, hasher, match)

		functionList = append(functionList, of)
	}

	return functionList
}

func hashSliceOf(stream matcher.InstructionStream, hasher stablehash.Hasher, match matcher.MatchedEntry) stablehash.Sequence {
	out := make(stablehash.Sequence, match.Length)
	for i := 0; i < match.Length; i++ {
		out[i] = hasher.Hash(stream.Instructions[match.StartIndex+i])
	}
	return out
}

// ResidualCost implements the residual_cost operation of spec.md §4.4: for
// already-detected repeated sequences within a module (found by the
// target-independent outliner through its own, non-hash-tree path),
// consult the trie to decide whether their residual stub cost can be
// zeroed out, and whether that permits overriding the standard local
// occurrence threshold.
//
// When the process mode is ModeReading and trie.Find(sequence) succeeds,
// noResidualCodeCost comes back true; if additionally there is only one
// candidate for this repeated sequence, override comes back true as well
// (permitting outlining despite the usual local-occurrence threshold).
// When the mode is ModeWriting, the hash sequence is computed and returned
// for the caller to insert later via RecordLocalOutlining, but the trie
// itself is not consulted (round one has nothing to read yet).
func ResidualCost(
	candidatesForRepeatedSeq []Candidate,
	stream matcher.InstructionStream,
	hasher stablehash.Hasher,
	trie sequenceFinder,
) (noResidualCodeCost bool, override bool, sequence stablehash.Sequence) {
	mode := GetMode()
	if (mode != ModeReading && mode != ModeWriting) || len(candidatesForRepeatedSeq) < 1 {
		return false, false, nil
	}

	first := candidatesForRepeatedSeq[0]
	sequence = make(stablehash.Sequence, first.Length)
	for i := 0; i < first.Length; i++ {
		sequence[i] = hasher.Hash(stream.Instructions[first.StartIndex+i])
	}

	if mode == ModeReading && trie.Find(sequence) {
		noResidualCodeCost = true
	}
	if noResidualCodeCost && len(candidatesForRepeatedSeq) == 1 {
		override = true
	}
	return noResidualCodeCost, override, sequence
}
