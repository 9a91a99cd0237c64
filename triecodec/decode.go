package triecodec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/plotfi/stablehashtree/common"
	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/stablehash"
)

// Decode parses buf into a fresh hashtree.HashTree. It requires a root entry
// at ID "0" (spec.md §9's open question, resolved by this module in favor of
// mandating the root's ID rather than an explicit "root" field — see
// SPEC_FULL.md §9), and reconstructs the tree via an iterative depth-first
// expansion over an explicit stack of pending IDs, materializing each
// node's successors from its "neighbors" list and attaching them under the
// key equal to each successor's own "hash" field, exactly as spec.md §4.2
// describes. Fails with common.ErrMalformedEncoding when the top-level value
// is not a mapping, a referenced neighbor ID is absent, or a "hash" field is
// missing or not valid hexadecimal.
func Decode(buf []byte) (*hashtree.HashTree, error) {
	var raw map[string]record
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, common.WrapMalformed("not a JSON object: " + err.Error())
	}

	rootRec, ok := raw["0"]
	if !ok {
		return nil, common.WrapMalformed(`missing root entry (expected id "0")`)
	}

	nodes := make(map[string]*hashtree.HashNode, len(raw))
	rootHash, err := parseHash(rootRec.Hash)
	if err != nil {
		return nil, err
	}
	root := hashtree.NewRawNode(rootHash, isTerminalValue(rootRec.IsTerminal))
	nodes["0"] = root

	stack := []string{"0"}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rec, ok := raw[id]
		if !ok {
			return nil, common.WrapMalformed("dangling node id " + id)
		}
		parent := nodes[id]

		for _, childID := range rec.Neighbors {
			childRec, ok := raw[childID]
			if !ok {
				return nil, common.WrapMalformed("missing neighbor " + childID + " referenced from node " + id)
			}
			childHash, err := parseHash(childRec.Hash)
			if err != nil {
				return nil, err
			}
			child, seen := nodes[childID]
			if !seen {
				child = hashtree.NewRawNode(childHash, isTerminalValue(childRec.IsTerminal))
				nodes[childID] = child
				stack = append(stack, childID)
			}
			parent.AttachSuccessor(child)
		}
	}

	return hashtree.FromRoot(root), nil
}

func parseHash(s string) (stablehash.StableHash, error) {
	if s == "" {
		return 0, common.WrapMalformed("missing or empty hash field")
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, common.WrapMalformed("ill-formed hash field " + strconv.Quote(s))
	}
	return stablehash.StableHash(v), nil
}

func isTerminalValue(s string) bool {
	lower := strings.ToLower(s)
	return lower == "true" || lower == "on"
}
