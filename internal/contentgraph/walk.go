package contentgraph

import (
	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/internal/reversetopo"
)

// Walk is the shared implementation behind chunk_content and
// chunk_content_split: it seeds the root edges (the entry plus any
// additional entries, each Placed), runs the reverse-topological traversal,
// and buckets the result. aborted=true means the non-split walk hit the
// size bound and the caller must retry with split=true (chunk_content
// returns "no result" in that case; chunk_content_split never aborts because
// ctx.Split disables the bound).
func Walk[I chunk.ChunkItem](ctx Context[I], additionalEntries []asset.Asset, maxChunkItems int) (*chunk.ChunkContentResult[I], bool, error) {
	entries := append([]asset.Asset{ctx.Entry}, additionalEntries...)

	rootEdges := make([]edge[I], 0, len(entries))
	for _, e := range entries {
		item, ok, err := fromAssetCached(ctx, e)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, chunk.ErrNoRootChunkItem
		}
		rootEdges = append(rootEdges, edge[I]{
			Key:    DedupKey{Asset: e.Ident(), Type: chunk.Placed},
			HasKey: true,
			Node:   Node[I]{Kind: KindChunkItem, ChunkItem: item},
		})
	}

	v := &visitor[I]{ctx: ctx, maxChunkItems: maxChunkItems}
	nodes, aborted, err := reversetopo.Walk[Node[I], DedupKey](rootEdges, v)
	if err != nil {
		return nil, false, err
	}
	if aborted {
		return nil, true, nil
	}

	return assemble(nodes, ctx.AvailabilityInfo), false, nil
}

// assemble buckets the reverse-topologically ordered graph nodes into the
// four output vectors (base spec §4.4). AvailableAsset nodes are discarded.
func assemble[I chunk.ChunkItem](nodes []Node[I], availabilityInfo availability.Info) *chunk.ChunkContentResult[I] {
	result := &chunk.ChunkContentResult[I]{AvailabilityInfo: availabilityInfo}
	for _, n := range nodes {
		switch n.Kind {
		case KindChunkItem:
			result.ChunkItems = append(result.ChunkItems, n.ChunkItem)
		case KindChunk:
			result.Chunks = append(result.Chunks, n.Chunk)
		case KindAsyncChunkGroup:
			result.AsyncChunkGroups = append(result.AsyncChunkGroups, n.AsyncGroup)
		case KindExternalReference:
			result.ExternalAssetReferences = append(result.ExternalAssetReferences, n.ExternalRef)
		case KindAvailableAsset:
			// absorbed: already loaded upstream, contributes nothing.
		}
	}
	return result
}
