package outliner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/matcher"
	"github.com/plotfi/stablehashtree/stablehash"
)

func seq(hs ...uint64) stablehash.Sequence {
	out := make(stablehash.Sequence, len(hs))
	for i, h := range hs {
		out[i] = stablehash.StableHash(h)
	}
	return out
}

type fixedHasher []stablehash.StableHash

func (f fixedHasher) Hash(instr stablehash.Instruction) stablehash.StableHash {
	return f[instr.Opaque.(int)]
}

func streamOf(hashes []stablehash.StableHash) matcher.InstructionStream {
	instrs := make([]stablehash.Instruction, len(hashes))
	mask := make([]int, len(hashes))
	for i := range hashes {
		instrs[i] = stablehash.Instruction{Opaque: i}
		mask[i] = -1
	}
	return matcher.InstructionStream{Instructions: instrs, InvalidMask: mask}
}

// acceptAll is a CostModel stand-in that accepts every candidate set it's
// handed verbatim, mirroring a permissive target cost model for test
// purposes.
type acceptAll struct{}

func (acceptAll) OutliningCandidateInfo(candidates []Candidate) OutlinedFunction {
	return OutlinedFunction{Candidates: append([]Candidate(nil), candidates...)}
}

// rejectAll always rejects, mirroring a target that vetoes every candidate.
type rejectAll struct{}

func (rejectAll) OutliningCandidateInfo(candidates []Candidate) OutlinedFunction {
	return OutlinedFunction{}
}

func TestRecordLocalOutliningInsertsIntoPlainTree(t *testing.T) {
	tr := hashtree.New()
	RecordLocalOutlining(tr, seq(1, 2, 3))
	require.True(t, tr.Find(seq(1, 2, 3)))
	require.False(t, tr.Find(seq(1, 2)))
}

func TestRecordLocalOutliningInsertsIntoSharedTrie(t *testing.T) {
	shared := NewSharedTrie()
	RecordLocalOutlining(shared, seq(4, 5))
	require.True(t, shared.Find(seq(4, 5)))
}

func TestAugmentRoundTwoAcceptedCandidateCarriesFlags(t *testing.T) {
	tr := hashtree.New()
	tr.Insert(seq(7, 8))

	hashes := []stablehash.StableHash{7, 8}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	blockFlags := BlockFlags{0x42, 0x43}

	var functionList []OutlinedFunction
	functionList = AugmentRoundTwo(context.Background(), stream, blockFlags, functionList, tr, hasher, acceptAll{})

	require.Len(t, functionList, 1)
	of := functionList[0]
	require.True(t, of.NoResidualCodeCostOverride)
	require.Equal(t, seq(7, 8), of.StableHashSequence)
	require.Len(t, of.Candidates, 1)
	require.True(t, of.Candidates[0].NoResidualCodeCost)
	require.True(t, of.Candidates[0].Singleton)
	require.Equal(t, 0, of.Candidates[0].StartIndex)
	require.Equal(t, 2, of.Candidates[0].Length)
	require.Equal(t, uint32(0x42), of.Candidates[0].BlockFlag)
}

func TestAugmentRoundTwoRejectedCandidateIsDropped(t *testing.T) {
	tr := hashtree.New()
	tr.Insert(seq(7, 8))

	hashes := []stablehash.StableHash{7, 8}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	functionList := AugmentRoundTwo(context.Background(), stream, nil, nil, tr, hasher, rejectAll{})
	require.Empty(t, functionList)
}

func TestAugmentRoundTwoNoMatchesLeavesListUntouched(t *testing.T) {
	tr := hashtree.New()
	tr.Insert(seq(1, 2))

	hashes := []stablehash.StableHash{9, 9, 9}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	existing := []OutlinedFunction{{StableHashSequence: seq(42)}}
	functionList := AugmentRoundTwo(context.Background(), stream, nil, existing, tr, hasher, acceptAll{})
	require.Equal(t, existing, functionList)
}

func TestResidualCostReadingModeHit(t *testing.T) {
	defer resetForTest()
	SetMode(ModeReading)

	tr := hashtree.New()
	tr.Insert(seq(3, 4))

	hashes := []stablehash.StableHash{3, 4}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	candidates := []Candidate{{StartIndex: 0, Length: 2}}
	noCost, override, sequence := ResidualCost(candidates, stream, hasher, tr)

	require.True(t, noCost)
	require.True(t, override)
	require.Equal(t, seq(3, 4), sequence)
}

func TestResidualCostReadingModeMultipleCandidatesNoOverride(t *testing.T) {
	defer resetForTest()
	SetMode(ModeReading)

	tr := hashtree.New()
	tr.Insert(seq(3, 4))

	hashes := []stablehash.StableHash{3, 4}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	candidates := []Candidate{{StartIndex: 0, Length: 2}, {StartIndex: 0, Length: 2}}
	noCost, override, _ := ResidualCost(candidates, stream, hasher, tr)

	require.True(t, noCost)
	require.False(t, override)
}

func TestResidualCostReadingModeMiss(t *testing.T) {
	defer resetForTest()
	SetMode(ModeReading)

	tr := hashtree.New()
	tr.Insert(seq(1, 1))

	hashes := []stablehash.StableHash{3, 4}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	candidates := []Candidate{{StartIndex: 0, Length: 2}}
	noCost, override, sequence := ResidualCost(candidates, stream, hasher, tr)

	require.False(t, noCost)
	require.False(t, override)
	require.Equal(t, seq(3, 4), sequence)
}

func TestResidualCostWritingModeComputesSequenceWithoutConsultingTrie(t *testing.T) {
	defer resetForTest()
	SetMode(ModeWriting)

	tr := hashtree.New() // deliberately empty; writing mode must not consult it

	hashes := []stablehash.StableHash{11, 12}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	candidates := []Candidate{{StartIndex: 0, Length: 2}}
	noCost, override, sequence := ResidualCost(candidates, stream, hasher, tr)

	require.False(t, noCost)
	require.False(t, override)
	require.Equal(t, seq(11, 12), sequence)
}

func TestResidualCostModeNoneIsANoop(t *testing.T) {
	defer resetForTest()
	SetMode(ModeNone)

	tr := hashtree.New()
	tr.Insert(seq(1, 2))

	hashes := []stablehash.StableHash{1, 2}
	stream := streamOf(hashes)
	hasher := fixedHasher(hashes)

	noCost, override, sequence := ResidualCost([]Candidate{{StartIndex: 0, Length: 2}}, stream, hasher, tr)
	require.False(t, noCost)
	require.False(t, override)
	require.Nil(t, sequence)
}

func TestResidualCostEmptyCandidatesIsANoop(t *testing.T) {
	defer resetForTest()
	SetMode(ModeReading)

	tr := hashtree.New()
	noCost, override, sequence := ResidualCost(nil, matcher.InstructionStream{}, fixedHasher{}, tr)
	require.False(t, noCost)
	require.False(t, override)
	require.Nil(t, sequence)
}
