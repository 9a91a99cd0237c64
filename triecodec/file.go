package triecodec

import (
	"os"

	"github.com/plotfi/stablehashtree/common"
	"github.com/plotfi/stablehashtree/hashtree"
)

// WriteToFile wraps Encode with os.WriteFile, surfacing any filesystem
// failure as an IoError-wrapped error (spec.md §4.2, §7). Output is valid
// regardless of OS line endings and carries no trailing comma, since
// encoding/json never produces either.
func WriteToFile(path string, tree *hashtree.HashTree, debugSource DebugSource) error {
	buf, err := Encode(tree, debugSource)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return common.WrapIoError("write "+path, err)
	}
	return nil
}

// ReadFromFile wraps Decode with os.ReadFile, surfacing any filesystem
// failure as an IoError-wrapped error (spec.md §4.2, §7).
func ReadFromFile(path string) (*hashtree.HashTree, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapIoError("read "+path, err)
	}
	return Decode(buf)
}
