// Package intern deduplicates strings behind their 32-bit FNV-1a hash.
// The hash is the key downstream records carry instead of the text itself.
package intern

import (
	"hash/fnv"

	"nikand.dev/go/heap"
	"tlog.app/go/errors"
)

type (
	Table struct {
		m map[uint32]string
	}

	Entry struct {
		Hash uint32
		Val  string
	}
)

var ErrCollision = errors.New("hash collision")

func Hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))

	return h.Sum32()
}

func New() *Table {
	return &Table{
		m: map[uint32]string{},
	}
}

// Put stores s under its hash and returns the hash.
// Identical input is idempotent. Two distinct strings under one hash is
// a genuine collision and is reported instead of silently overwriting.
func (t *Table) Put(s string) (uint32, error) {
	h := Hash(s)

	if old, ok := t.m[h]; ok {
		if old != s {
			return h, errors.Wrap(ErrCollision, "%q and %q under 0x%08x", old, s, h)
		}

		return h, nil
	}

	t.m[h] = s

	return h, nil
}

func (t *Table) Get(h uint32) (string, bool) {
	s, ok := t.m[h]
	return s, ok
}

func (t *Table) Len() int {
	return len(t.m)
}

func (t *Table) Reset() {
	clear(t.m)
}

// Sorted returns all entries ascending by hash.
// Sorted order makes exports of the same content byte-identical.
func (t *Table) Sorted() []Entry {
	h := heap.Heap[Entry]{Less: entryLess}

	for k, v := range t.m {
		h.Push(Entry{Hash: k, Val: v})
	}

	res := make([]Entry, 0, len(t.m))

	for h.Len() != 0 {
		res = append(res, h.Pop())
	}

	return res
}

func entryLess(d []Entry, i, j int) bool {
	return d[i].Hash < d[j].Hash
}
