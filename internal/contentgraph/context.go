package contentgraph

import (
	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/memo"
)

// Context is the ChunkContentContext of the base spec: everything the
// classifier needs besides the reference being classified.
type Context[I chunk.ChunkItem] struct {
	ChunkingContext  chunk.ChunkingContext
	Entry            asset.Asset
	AvailabilityInfo availability.Info
	Split            bool
	Factory          chunk.FromChunkableAsset[I]
	Cache            memo.Cache

	// GroupFromAsset builds the async chunk group handle for a Separate
	// reference. Injected by the caller (package chunking) so this package
	// never needs to know about the concrete ChunkGroup type, which would
	// otherwise create an import cycle (chunking depends on contentgraph).
	GroupFromAsset func(a chunk.ChunkableAsset, ctx chunk.ChunkingContext, availabilityInfo availability.Info) (chunk.AsyncChunkGroupHandle, error)
}
