package contentgraph

import (
	"fmt"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/internal/reversetopo"
)

type edge[I chunk.ChunkItem] = reversetopo.Edge[Node[I], DedupKey]

func externalEdge[I chunk.ChunkItem](ref asset.AssetReference) edge[I] {
	return edge[I]{Node: Node[I]{Kind: KindExternalReference, ExternalRef: ref}}
}

func keyedEdge[I chunk.ChunkItem](a asset.Asset, ct chunk.ChunkingType, node Node[I]) edge[I] {
	return edge[I]{
		Key:    DedupKey{Asset: a.Ident(), Type: ct},
		HasKey: true,
		Node:   node,
	}
}

func refIdentity(ref asset.AssetReference) string {
	return fmt.Sprintf("%p", ref)
}

// classify implements the reference classifier (base spec §4.1): given one
// asset reference, it returns the ordered list of (edge_key, graph_node)
// pairs the reference expands to.
func classify[I chunk.ChunkItem](ctx Context[I], ref asset.AssetReference) ([]edge[I], error) {
	chunkableRef, ok := ref.(chunk.ChunkableAssetReference)
	if !ok {
		return []edge[I]{externalEdge[I](ref)}, nil
	}

	chunkingType, ok := chunkingTypeCached(ctx.Cache, chunkableRef)
	if !ok {
		return []edge[I]{externalEdge[I](ref)}, nil
	}

	result, err := resolveReferenceCached(ctx.Cache, ref)
	if err != nil {
		return nil, err
	}

	var nodes []edge[I]
	for _, a := range result.Primary {
		if availableSet, hasSet := ctx.AvailabilityInfo.AvailableAssets(); hasSet {
			if availableSet.Includes(a.Ident()) {
				nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindAvailableAsset, AvailableAsset: a}))
				continue
			}
		}

		chunkableAsset, ok := a.(chunk.ChunkableAsset)
		if !ok {
			// Any non-chunkable asset under a chunkable reference downgrades
			// the whole reference to External, discarding anything already
			// accumulated for it.
			return []edge[I]{externalEdge[I](ref)}, nil
		}

		switch chunkingType {
		case chunk.Placed:
			item, placed, ferr := fromAssetCached(ctx, chunkableAsset)
			if ferr != nil {
				return nil, ferr
			}
			if !placed {
				return nil, fmt.Errorf("asset %s: %w", a.Ident(), chunk.ErrAssetNotPlaceable)
			}
			nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindChunkItem, ChunkItem: item}))

		case chunk.Parallel:
			c, cerr := asChunkCached(ctx, chunkableAsset, ctx.AvailabilityInfo)
			if cerr != nil {
				return nil, cerr
			}
			nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindChunk, Chunk: c}))

		case chunk.IsolatedParallel:
			fresh := availability.NewRoot(chunkableAsset.Ident())
			c, cerr := asChunkCached(ctx, chunkableAsset, fresh)
			if cerr != nil {
				return nil, cerr
			}
			nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindChunk, Chunk: c}))

		case chunk.PlacedOrParallel:
			if !ctx.Split && ctx.ChunkingContext.CanBeInSameChunk(ctx.Entry, a) {
				item, placed, ferr := fromAssetCached(ctx, chunkableAsset)
				if ferr != nil {
					return nil, ferr
				}
				if placed {
					nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindChunkItem, ChunkItem: item}))
					continue
				}
			}
			c, cerr := asChunkCached(ctx, chunkableAsset, ctx.AvailabilityInfo)
			if cerr != nil {
				return nil, cerr
			}
			nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindChunk, Chunk: c}))

		case chunk.Separate:
			group, gerr := ctx.GroupFromAsset(chunkableAsset, ctx.ChunkingContext, ctx.AvailabilityInfo)
			if gerr != nil {
				return nil, gerr
			}
			nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindAsyncChunkGroup, AsyncGroup: group}))

		case chunk.SeparateAsync:
			item, loaded, ferr := fromAsyncAssetCached(ctx, chunkableAsset)
			if ferr != nil {
				return nil, ferr
			}
			if !loaded {
				return []edge[I]{externalEdge[I](ref)}, nil
			}
			nodes = append(nodes, keyedEdge(a, chunkingType, Node[I]{Kind: KindChunkItem, ChunkItem: item}))
		}
	}

	return nodes, nil
}
