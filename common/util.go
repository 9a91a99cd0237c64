// Package common holds small helpers shared across the stable hash trie
// packages: assertions, byte concatenation and the error-kind vocabulary
// used by the codec and the outliner integration layer.
package common

import (
	"bytes"
	"fmt"
)

// Assert panics with a formatted message if cond is false. Used the same way
// the teacher repo uses it: for invariants that indicate a bug in this
// package, never for validating external input (see errors.go for that).
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Concat concatenates byte-able fragments. Mirrors the teacher's
// common.Concat, trimmed to the types this module actually needs.
func Concat(parts ...interface{}) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		switch p := p.(type) {
		case []byte:
			buf.Write(p)
		case byte:
			buf.WriteByte(p)
		case string:
			buf.WriteString(p)
		default:
			Assert(false, "Concat: unsupported type %T", p)
		}
	}
	return buf.Bytes()
}
