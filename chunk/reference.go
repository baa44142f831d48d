package chunk

import (
	"fmt"

	"github.com/tenzoki/agen/chunkgraph/asset"
)

// ChunkReference is the canonical ParallelChunkReference implementation: a
// reference to a single Chunk, optionally loaded in parallel with the chunk
// holding it.
type ChunkReference struct {
	chunk    Chunk
	parallel bool
}

// NewChunkReference builds a non-parallel reference to c.
func NewChunkReference(c Chunk) *ChunkReference {
	return &ChunkReference{chunk: c}
}

// NewParallelChunkReference builds a reference to c that is loaded in
// parallel with the holding chunk.
func NewParallelChunkReference(c Chunk) *ChunkReference {
	return &ChunkReference{chunk: c, parallel: true}
}

func (r *ChunkReference) ResolveReference() (asset.ResolveResult, error) {
	return asset.ResolveResult{Primary: []asset.Asset{r.chunk}}, nil
}

func (r *ChunkReference) IsLoadedInParallel() bool {
	return r.parallel
}

func (r *ChunkReference) String() string {
	return fmt.Sprintf("chunk %s", r.chunk.Ident())
}

// ChunkGroupReference is a reference yielding all of a group's chunks as
// primary resolved assets.
type ChunkGroupReference struct {
	group AsyncChunkGroupHandle
}

// NewChunkGroupReference builds a reference to every chunk in group.
func NewChunkGroupReference(group AsyncChunkGroupHandle) *ChunkGroupReference {
	return &ChunkGroupReference{group: group}
}

func (r *ChunkGroupReference) ResolveReference() (asset.ResolveResult, error) {
	assets, err := r.group.Chunks()
	if err != nil {
		return asset.ResolveResult{}, err
	}
	return asset.ResolveResult{Primary: assets}, nil
}

var (
	_ ParallelChunkReference = (*ChunkReference)(nil)
	_ asset.AssetReference   = (*ChunkGroupReference)(nil)
)
