// Package optimize provides the pluggable post-processing step invoked once
// per chunk-group build, over the deduplicated chunk list (base spec §4.5
// step 3). The chunking core itself does not decide how chunks should be
// merged, split or reordered; that is left to the optimizer.
package optimize

import "github.com/tenzoki/agen/chunkgraph/chunk"

// Optimizer may merge, split or reorder a chunk-group's chunks before
// output assets are generated from them.
type Optimizer interface {
	Optimize(chunks []chunk.Chunk) ([]chunk.Chunk, error)
}

// Identity is the default Optimizer: it returns its input unchanged. Real
// merge/split/reorder strategies are an external collaborator the base spec
// explicitly keeps out of the core's scope.
type Identity struct{}

func (Identity) Optimize(chunks []chunk.Chunk) ([]chunk.Chunk, error) {
	return chunks, nil
}

var _ Optimizer = Identity{}
