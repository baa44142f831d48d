// Package contentgraph implements the content-graph visitor: the
// reverse-topological walk over a single chunk's reference graph, the
// reference classifier that turns edges into typed graph nodes, and the
// size-bound/restart-with-split policy. This is the "hard engineering"
// component the chunking core's design centers on.
package contentgraph

import (
	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/chunk"
)

// NodeKind tags the variant of a ChunkContentGraphNode.
type NodeKind uint8

const (
	KindChunkItem NodeKind = iota
	KindAvailableAsset
	KindChunk
	KindAsyncChunkGroup
	KindExternalReference
)

// Node is the internal tagged union the visitor produces per edge: exactly
// one of the payload fields is meaningful, selected by Kind.
type Node[I chunk.ChunkItem] struct {
	Kind NodeKind

	ChunkItem      I
	AvailableAsset asset.Asset
	Chunk          chunk.Chunk
	AsyncGroup     chunk.AsyncChunkGroupHandle
	ExternalRef    asset.AssetReference
}

// DedupKey is the (asset, chunking_type) deduplication key fed back to the
// traversal engine. Each such pair is visited at most once per content walk
// (invariant 1).
type DedupKey struct {
	Asset asset.Ident
	Type  chunk.ChunkingType
}
