package contentgraph

import (
	"sync"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/internal/reversetopo"
)

// visitor implements reversetopo.Visitor for the content graph: it counts
// chunk items and aborts once the non-split size bound is hit, and expands
// only ChunkItem nodes (every other node kind is a leaf, per the base spec).
type visitor[I chunk.ChunkItem] struct {
	ctx             Context[I]
	maxChunkItems   int
	chunkItemsCount int
}

func (v *visitor[I]) Visit(e edge[I]) reversetopo.ControlFlow {
	if !e.HasKey {
		return reversetopo.Continue
	}
	if e.Node.Kind == KindChunkItem {
		v.chunkItemsCount++
		if !v.ctx.Split && v.chunkItemsCount >= v.maxChunkItems {
			return reversetopo.Abort
		}
	}
	return reversetopo.Continue
}

func (v *visitor[I]) Edges(n Node[I]) ([]edge[I], error) {
	if n.Kind != KindChunkItem {
		return nil, nil
	}
	refs := referencesCached(v.ctx.Cache, n.ChunkItem)
	return resolveEdgesConcurrently(v.ctx, refs)
}

// resolveEdgesConcurrently batches all outgoing reference resolutions for
// one node and awaits them as a group, preserving the references() order
// when flattening — matching the base spec's concurrency model (§5).
func resolveEdgesConcurrently[I chunk.ChunkItem](ctx Context[I], refs []asset.AssetReference) ([]edge[I], error) {
	results := make([][]edge[I], len(refs))
	errs := make([]error, len(refs))

	var wg sync.WaitGroup
	wg.Add(len(refs))
	for i, r := range refs {
		go func(i int, r asset.AssetReference) {
			defer wg.Done()
			edges, err := classify(ctx, r)
			results[i] = edges
			errs[i] = err
		}(i, r)
	}
	wg.Wait()

	var flattened []edge[I]
	for i := range refs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		flattened = append(flattened, results[i]...)
	}
	return flattened, nil
}
