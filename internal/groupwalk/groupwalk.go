// Package groupwalk implements the chunk-children expander and the second
// reverse-topological walk used at chunk-group assembly time (base spec
// §4.5): given a set of root chunks, follow parallel chunk references to
// collect every chunk that must be loaded together.
package groupwalk

import (
	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/internal/reversetopo"
)

// memoCache is the subset of memo.Cache this package needs; declared
// locally so it doesn't have to import the memo package just for a type
// name used only here, matching internal/contentgraph's memoCache.
type memoCache interface {
	Get(op, key string) (any, bool)
	Set(op, key string, value any)
}

// referencesCached memoizes a chunk's References(), keyed by its ident. It
// uses its own op name so a chunk never shares a cache entry with a chunk
// item of the same ident cached by internal/contentgraph.
func referencesCached(cache memoCache, parent chunk.Chunk) []asset.AssetReference {
	key := parent.Ident().String()
	if v, ok := cache.Get("chunk_references", key); ok {
		return v.([]asset.AssetReference)
	}
	refs := parent.References()
	cache.Set("chunk_references", key, refs)
	return refs
}

// ChunkChildren enumerates parent's parallel-sibling chunks: it walks
// parent's references, keeps only those that are a ParallelChunkReference
// with IsLoadedInParallel()==true, resolves them, and keeps the resolved
// assets that are themselves Chunks.
func ChunkChildren(cache memoCache, parent chunk.Chunk) ([]chunk.Chunk, error) {
	var children []chunk.Chunk
	for _, ref := range referencesCached(cache, parent) {
		pc, ok := ref.(chunk.ParallelChunkReference)
		if !ok || !pc.IsLoadedInParallel() {
			continue
		}
		result, err := pc.ResolveReference()
		if err != nil {
			return nil, err
		}
		for _, a := range result.Primary {
			if c, ok := a.(chunk.Chunk); ok {
				children = append(children, c)
			}
		}
	}
	return children, nil
}

type visitor struct {
	cache memoCache
}

func (visitor) Visit(reversetopo.Edge[chunk.Chunk, asset.Ident]) reversetopo.ControlFlow {
	return reversetopo.Continue
}

func (v visitor) Edges(n chunk.Chunk) ([]reversetopo.Edge[chunk.Chunk, asset.Ident], error) {
	children, err := ChunkChildren(v.cache, n)
	if err != nil {
		return nil, err
	}
	edges := make([]reversetopo.Edge[chunk.Chunk, asset.Ident], len(children))
	for i, c := range children {
		edges[i] = reversetopo.Edge[chunk.Chunk, asset.Ident]{Key: c.Ident(), HasKey: true, Node: c}
	}
	return edges, nil
}

// Walk performs the second reverse-topological traversal: starting from
// roots (the entry chunk plus every evaluatable asset's root chunk),
// dedup by chunk identity, children supplied by ChunkChildren. cache fronts
// each chunk's References() call the same way internal/contentgraph fronts
// its own capability-surface calls.
func Walk(cache memoCache, roots []chunk.Chunk) ([]chunk.Chunk, error) {
	rootEdges := make([]reversetopo.Edge[chunk.Chunk, asset.Ident], len(roots))
	for i, r := range roots {
		rootEdges[i] = reversetopo.Edge[chunk.Chunk, asset.Ident]{Key: r.Ident(), HasKey: true, Node: r}
	}
	nodes, _, err := reversetopo.Walk[chunk.Chunk, asset.Ident](rootEdges, visitor{cache: cache})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}
