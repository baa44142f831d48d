// Package asset defines the minimal build-graph contracts the chunking core
// treats as opaque external collaborators: content-addressed assets and the
// directed references between them.
package asset

import "fmt"

// Ident identifies an Asset. Two assets with equal idents are the same node
// for every purpose the chunking core cares about (dedup, availability,
// memoization keys).
type Ident struct {
	Path  string
	Query string
}

func (i Ident) String() string {
	if i.Query == "" {
		return i.Path
	}
	return fmt.Sprintf("%s?%s", i.Path, i.Query)
}

// Asset is a content-addressable build-graph node with an identity and a
// list of outgoing references. Source loading, parsing and source-map
// emission live entirely outside this package; the chunking core never
// inspects an asset's content, only its ident and its references.
type Asset interface {
	Ident() Ident
	References() []AssetReference
}

// ResolveResult is the outcome of resolving an AssetReference: the ordered
// list of primary assets the reference points at. A reference may resolve to
// zero assets (e.g. an external URL reference with nothing further to walk).
type ResolveResult struct {
	Primary []Asset
}

// AssetReference is a directed edge from one asset to others. Resolving it
// may be expensive (parsing, fetching) so callers are expected to treat it
// as a suspension point and not call it more than necessary per node.
type AssetReference interface {
	ResolveReference() (ResolveResult, error)
}

// Environment describes the runtime target a ChunkingContext generates
// chunks for (browser, node, edge, ...). The chunking core never inspects
// it beyond exposing it from ChunkingContext; it exists for implementers
// to vary chunk generation and co-location decisions by target.
type Environment struct {
	Name string
}
