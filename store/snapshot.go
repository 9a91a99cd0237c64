// Package store offers an alternative transport for persisted hash-tree
// snapshots: instead of a single flat file (triecodec.WriteToFile /
// ReadFromFile), a snapshot can be kept as one key in an arbitrary hive.go
// KVStore, letting a driver share the same embedded store it already uses
// for other link-time artifacts.
package store

import (
	"errors"

	"github.com/iotaledger/hive.go/core/kvstore"

	"github.com/plotfi/stablehashtree/common"
	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/triecodec"
)

// SnapshotStore maps a single partition (prefix) of a hive.go KVStore to one
// named hash-tree snapshot slot, the way HiveKVStoreAdaptor maps a partition
// to a trie.go KVStore.
type SnapshotStore struct {
	kvs    kvstore.KVStore
	prefix []byte
}

// NewSnapshotStore returns a SnapshotStore backed by kvs, namespacing all of
// its keys under prefix so a single KVStore instance can host both this and
// unrelated data.
func NewSnapshotStore(kvs kvstore.KVStore, prefix []byte) *SnapshotStore {
	return &SnapshotStore{kvs: kvs, prefix: prefix}
}

func (s *SnapshotStore) key(name string) []byte {
	return makeKey(s.prefix, []byte(name))
}

func makeKey(prefix, k []byte) []byte {
	if len(prefix) == 0 {
		return k
	}
	return common.Concat(prefix, k)
}

// Save encodes tree via triecodec.Encode and writes it under name.
func (s *SnapshotStore) Save(name string, tree *hashtree.HashTree, debugSource triecodec.DebugSource) error {
	buf, err := triecodec.Encode(tree, debugSource)
	if err != nil {
		return err
	}
	if err := s.kvs.Set(s.key(name), buf); err != nil {
		return common.WrapIoError("kvstore set", err)
	}
	return nil
}

// Load reads the snapshot stored under name and decodes it via
// triecodec.Decode. A missing key is reported as (nil, nil) rather than
// common.ErrMalformedEncoding: an absent snapshot is a legitimate "nothing
// recorded yet" state, not malformed data.
func (s *SnapshotStore) Load(name string) (*hashtree.HashTree, error) {
	buf, err := s.kvs.Get(s.key(name))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, common.WrapIoError("kvstore get", err)
	}
	return triecodec.Decode(buf)
}

// Has reports whether a snapshot is currently stored under name.
func (s *SnapshotStore) Has(name string) (bool, error) {
	ok, err := s.kvs.Has(s.key(name))
	if err != nil {
		return false, common.WrapIoError("kvstore has", err)
	}
	return ok, nil
}

// Delete removes the snapshot stored under name, if any.
func (s *SnapshotStore) Delete(name string) error {
	if err := s.kvs.Delete(s.key(name)); err != nil {
		return common.WrapIoError("kvstore delete", err)
	}
	return nil
}
