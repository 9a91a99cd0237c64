package common

import (
	"golang.org/x/xerrors"
)

// MalformedEncoding is returned by the trie codec when a persisted record is
// not a mapping, is missing the root, references an unknown neighbor ID, or
// carries an ill-formed "hash" field. See triecodec for where this is raised.
var ErrMalformedEncoding = xerrors.New("malformed hash trie encoding")

// IoError wraps a filesystem failure encountered while reading or writing a
// persisted trie. The underlying OS error is preserved via %w so callers can
// still errors.Is/As through to it.
func WrapIoError(op string, err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("hash trie %s: %w", op, err)
}

// WrapMalformed annotates ErrMalformedEncoding with the specific reason it
// was raised, while keeping it matchable via errors.Is(err, ErrMalformedEncoding).
func WrapMalformed(reason string) error {
	return xerrors.Errorf("%s: %w", reason, ErrMalformedEncoding)
}
