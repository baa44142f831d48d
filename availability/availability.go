// Package availability implements the availability-info propagation model:
// the set of assets already loaded along an ancestor chain, consulted by the
// content-graph classifier to short-circuit re-inclusion of assets a
// descendant chunk can already assume are present at runtime.
package availability

import (
	"fmt"

	"github.com/tenzoki/agen/chunkgraph/asset"
)

// Set is a persistent, structurally-shared set of asset idents. Extending a
// Set never mutates the parent, so many descendants can share the same
// ancestor layers instead of copying them; membership is checked by walking
// the parent chain, which is why it is read frequently and extended often —
// the contract this type is built for.
type Set struct {
	local  map[asset.Ident]struct{}
	parent *Set
}

// NewSet builds a layer holding idents, chained onto parent (which may be
// nil for a fresh root layer).
func NewSet(parent *Set, idents ...asset.Ident) *Set {
	local := make(map[asset.Ident]struct{}, len(idents))
	for _, id := range idents {
		local[id] = struct{}{}
	}
	return &Set{local: local, parent: parent}
}

// Includes reports whether id is present in this layer or any ancestor.
func (s *Set) Includes(id asset.Ident) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.local[id]; ok {
			return true
		}
	}
	return false
}

// Kind distinguishes the two AvailabilityInfo variants.
type Kind uint8

const (
	// Root marks the start of a new chunk group: nothing is available yet.
	Root Kind = iota
	// Extension carries the transitive closure of assets already placed
	// upstream.
	Extension
)

// Info is either Root{current_availability_root} or an Extension carrying an
// available-assets Set. The classifier consults the Set, when present, to
// decide whether a referenced asset needs inclusion at all.
type Info struct {
	kind        Kind
	currentRoot asset.Ident
	available   *Set
}

// NewRoot starts a fresh availability root anchored at current. No assets are
// considered available yet.
func NewRoot(current asset.Ident) Info {
	return Info{kind: Root, currentRoot: current}
}

// Extend derives a new Info that additionally treats newlyAvailable as
// available, layered on top of parent's own available-assets set (if any).
// The root ident is carried over unchanged.
func Extend(parent Info, newlyAvailable []asset.Ident) Info {
	var parentSet *Set
	if parent.kind == Extension {
		parentSet = parent.available
	}
	return Info{
		kind:        Extension,
		currentRoot: parent.currentRoot,
		available:   NewSet(parentSet, newlyAvailable...),
	}
}

// Kind reports which variant this Info is.
func (i Info) Kind() Kind {
	return i.kind
}

// CurrentRoot is the asset this availability chain is anchored at.
func (i Info) CurrentRoot() asset.Ident {
	return i.currentRoot
}

// AvailableAssets returns the available-assets set and true for an
// Extension, or (nil, false) for a Root — matching invariant 4: an
// IsolatedParallel descendant starts from a fresh Root and so never inherits
// the caller's available-assets set.
func (i Info) AvailableAssets() (*Set, bool) {
	if i.kind == Extension {
		return i.available, true
	}
	return nil, false
}

// DigestString is a cheap, stable identity string for this Info suitable as
// part of a memoization key. Structural sharing means the same logical
// available-assets layer always has the same *Set pointer, so the pointer
// address is a valid (process-local) identity for it.
func (i Info) DigestString() string {
	if i.kind == Root {
		return "root:" + i.currentRoot.String()
	}
	return fmt.Sprintf("ext:%s:%p", i.currentRoot.String(), i.available)
}
