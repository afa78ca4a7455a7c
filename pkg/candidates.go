package dupfinder

import (
	"fmt"
	"strings"

	zcsl "github.com/mattkeenan/zerocopyskiplist"
)

// candidateContext tags entries inserted during collection.
const candidateContext = "collect"

// candidate pairs a collector-discovered path with its zero-padded
// discovery ordinal. The ordinal is the skiplist key, so iteration
// order is exactly the order the collector found the files. The
// verifier depends on that order to pick each bucket's anchor.
type candidate struct {
	key  string
	path string
}

// candidateList holds the collector's output. It wraps the generic
// zero-copy skiplist keyed by discovery ordinal.
type candidateList struct {
	skiplist *zcsl.ZeroCopySkiplist[candidate, string, string]
	count    int
}

func newCandidateList() *candidateList {
	getKeyFromItem := func(c *candidate) string {
		return c.key
	}
	getItemSize := func(c *candidate) int {
		return len(c.path)
	}
	cmpKey := func(a, b string) int {
		return strings.Compare(a, b)
	}

	skiplist := zcsl.MakeZeroCopySkiplist[candidate, string, string](
		16,
		getKeyFromItem,
		getItemSize,
		cmpKey,
	)

	return &candidateList{skiplist: skiplist}
}

// Add appends a path to the list.
func (cl *candidateList) Add(path string) {
	c := candidate{
		key:  fmt.Sprintf("%012d", cl.count),
		path: path,
	}
	if cl.skiplist.Insert(&c, candidateContext) {
		cl.count++
	}
}

// Len returns the number of collected paths.
func (cl *candidateList) Len() int {
	return cl.count
}

// ForEach iterates the collected paths in discovery order. The callback
// returns false to stop early.
func (cl *candidateList) ForEach(callback func(path string) bool) {
	for current := cl.skiplist.First(); current != nil; current = current.Next() {
		c := current.Item()
		if !callback(c.path) {
			break
		}
	}
}
