package chunking

import (
	"fmt"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/internal/groupwalk"
)

// ChunkGroup is a set of chunks that load together: the entry chunk plus
// every evaluatable asset's root chunk, closed over parallel chunk
// references (base spec §4.5). It implements chunk.AsyncChunkGroupHandle so
// Separate/SeparateAsync references elsewhere in the build can treat it as
// an opaque loadable unit.
type ChunkGroup struct {
	builder *Builder

	chunkingContext   chunk.ChunkingContext
	entry             chunk.Chunk
	evaluatableAssets chunk.EvaluatableAssets
}

// FromAsset builds a ChunkGroup rooted at a's root chunk (base spec's
// ChunkGroup::from_asset).
func (b *Builder) FromAsset(a chunk.ChunkableAsset, ctx chunk.ChunkingContext, availabilityInfo availability.Info) (*ChunkGroup, error) {
	root, err := a.AsChunk(ctx, availabilityInfo)
	if err != nil {
		return nil, fmt.Errorf("chunking: building root chunk for %s: %w", a.Ident(), err)
	}
	return &ChunkGroup{builder: b, chunkingContext: ctx, entry: root}, nil
}

// FromChunk wraps an already-built chunk as a single-entry group (base
// spec's ChunkGroup::from_chunk).
func (b *Builder) FromChunk(ctx chunk.ChunkingContext, entry chunk.Chunk) *ChunkGroup {
	return &ChunkGroup{builder: b, chunkingContext: ctx, entry: entry}
}

// Evaluated builds a group whose entry is mainEntry's root chunk, with
// otherEntries evaluated first: main_entry will always be evaluated after
// all entries in other_entries (mirrors ChunkGroup::evaluated in the
// original turbopack-core chunk module).
func (b *Builder) Evaluated(ctx chunk.ChunkingContext, mainEntry chunk.EvaluatableAsset, otherEntries chunk.EvaluatableAssets) (*ChunkGroup, error) {
	chunkable, ok := mainEntry.(chunk.ChunkableAsset)
	if !ok {
		return nil, fmt.Errorf("chunking: evaluatable entry %s is not chunkable: %w", mainEntry.Ident(), chunk.ErrNoRootChunkItem)
	}
	root, err := chunk.AsRootChunk(chunkable, ctx)
	if err != nil {
		return nil, fmt.Errorf("chunking: building root chunk for evaluated entry %s: %w", mainEntry.Ident(), err)
	}
	evaluatable := otherEntries.WithEntry(mainEntry)
	return &ChunkGroup{builder: b, chunkingContext: ctx, entry: root, evaluatableAssets: evaluatable}, nil
}

// Entry returns the group's entry chunk.
func (g *ChunkGroup) Entry() chunk.Chunk {
	return g.entry
}

// Chunks computes the group's output assets: the deduplicated, parallel-
// reference closure over the root chunks, optimized, generated into output
// assets, with an evaluate chunk appended when the group has evaluatable
// assets (base spec §4.5 steps 1-4).
func (g *ChunkGroup) Chunks() ([]asset.Asset, error) {
	roots := g.rootChunks()

	walked, err := groupwalk.Walk(g.builder.Cache, roots)
	if err != nil {
		return nil, fmt.Errorf("chunking: walking chunk group from %s: %w", g.entry.Ident(), err)
	}

	optimized, err := g.builder.Optimizer.Optimize(walked)
	if err != nil {
		return nil, fmt.Errorf("chunking: optimizing chunk group from %s: %w", g.entry.Ident(), err)
	}

	g.builder.debugf("chunk_group: %s -> %d chunks after optimize", g.entry.Ident(), len(optimized))

	assets := make([]asset.Asset, 0, len(optimized)+1)
	for _, c := range optimized {
		out, err := g.chunkingContext.GenerateChunk(c)
		if err != nil {
			return nil, fmt.Errorf("chunking: generating output asset for chunk %s: %w", c.Ident(), err)
		}
		assets = append(assets, out)
	}

	if !g.evaluatableAssets.Empty() {
		evalCtx, ok := g.chunkingContext.(chunk.EvaluateChunkingContext)
		if !ok {
			return nil, fmt.Errorf("chunking: group %s has evaluatable entries but its chunking context cannot produce an evaluate chunk", g.entry.Ident())
		}
		evalAsset, err := evalCtx.EvaluateChunk(g.entry, assets, g.evaluatableAssets)
		if err != nil {
			return nil, fmt.Errorf("chunking: building evaluate chunk for %s: %w", g.entry.Ident(), err)
		}
		assets = append(assets, evalAsset)
	}

	return assets, nil
}

// rootChunks computes the group's root set deterministically: the entry
// chunk followed by each evaluatable asset's root chunk, deduplicated by
// ident in first-seen order. A plain map is avoided for the final ordering
// since Go map iteration order is randomized and the base spec requires
// deterministic chunk-group output (§5).
func (g *ChunkGroup) rootChunks() []chunk.Chunk {
	seen := make(map[asset.Ident]struct{})
	var roots []chunk.Chunk

	add := func(c chunk.Chunk) {
		id := c.Ident()
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		roots = append(roots, c)
	}

	add(g.entry)

	for _, ev := range g.evaluatableAssets.Entries() {
		chunkable, ok := ev.(chunk.ChunkableAsset)
		if !ok {
			continue
		}
		root, err := chunk.AsRootChunk(chunkable, g.chunkingContext)
		if err != nil {
			g.builder.debugf("chunk_group: skipping evaluatable entry %s, could not build root chunk: %v", ev.Ident(), err)
			continue
		}
		add(root)
	}

	return roots
}

var _ chunk.AsyncChunkGroupHandle = (*ChunkGroup)(nil)
