package chunk

import (
	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
)

// AsyncChunkGroupHandle is the narrow view the content-graph walk needs of a
// chunk group produced for a Separate/SeparateAsync reference: just enough
// to resolve it back into chunks when something external loads it. The
// concrete ChunkGroup type (package chunking) implements this; chunk stays
// unaware of chunking to avoid an import cycle between the two.
type AsyncChunkGroupHandle interface {
	Chunks() ([]asset.Asset, error)
}

// ChunkContentResult is the output of a single chunk's content walk.
type ChunkContentResult[I ChunkItem] struct {
	ChunkItems              []I
	Chunks                  []Chunk
	AsyncChunkGroups        []AsyncChunkGroupHandle
	ExternalAssetReferences []asset.AssetReference
	AvailabilityInfo        availability.Info
}
