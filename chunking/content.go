package chunking

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/internal/contentgraph"
)

// buildContext assembles the contentgraph.Context for one walk, binding the
// GroupFromAsset callback to Builder.FromAsset so Separate/SeparateAsync
// edges can construct nested chunk groups without contentgraph importing
// this package (which would cycle back).
func buildContext[I chunk.ChunkItem](b *Builder, ctx chunk.ChunkingContext, entry asset.Asset, availabilityInfo availability.Info, split bool, factory chunk.FromChunkableAsset[I]) contentgraph.Context[I] {
	return contentgraph.Context[I]{
		ChunkingContext:  ctx,
		Entry:            entry,
		AvailabilityInfo: availabilityInfo,
		Split:            split,
		Factory:          factory,
		Cache:            b.Cache,
		GroupFromAsset: func(a chunk.ChunkableAsset, gctx chunk.ChunkingContext, avail availability.Info) (chunk.AsyncChunkGroupHandle, error) {
			return b.FromAsset(a, gctx, avail)
		},
	}
}

// ChunkContent walks entry's reference graph with the size bound enabled. A
// nil result with aborted=true means the caller must retry with
// ChunkContentSplit (base spec §4.3). The span started around the walk
// carries the build id and entry path, mirroring how the pack's pipeline
// runners trace a chunking pass.
func ChunkContent[I chunk.ChunkItem](
	goCtx context.Context,
	b *Builder,
	ctx chunk.ChunkingContext,
	entry asset.Asset,
	additionalEntries []asset.Asset,
	availabilityInfo availability.Info,
	factory chunk.FromChunkableAsset[I],
) (result *chunk.ChunkContentResult[I], aborted bool, err error) {
	var span trace.Span
	_, span = b.tracer().Start(goCtx, "chunkgraph.chunk_content", trace.WithAttributes(
		attribute.String("chunkgraph.build_id", b.BuildID.String()),
		attribute.String("chunkgraph.entry", entry.Ident().String()),
	))
	defer span.End()

	cctx := buildContext(b, ctx, entry, availabilityInfo, false, factory)
	result, aborted, err = contentgraph.Walk[I](cctx, additionalEntries, b.MaxChunkItemsCount)
	if err != nil {
		span.RecordError(err)
		return result, aborted, err
	}
	span.SetAttributes(attribute.Bool("chunkgraph.aborted", aborted))
	if aborted {
		b.debugf("chunk_content: aborted at %s, restart required with split", entry.Ident())
	} else {
		span.SetAttributes(attribute.Int("chunkgraph.chunk_items", len(result.ChunkItems)))
		b.debugf("chunk_content: %s -> %d chunk items, %d chunks, %d async groups", entry.Ident(), len(result.ChunkItems), len(result.Chunks), len(result.AsyncChunkGroups))
	}
	return result, aborted, err
}

// ChunkContentSplit is like ChunkContent but disables the size bound; it
// always succeeds (PlacedOrParallel degrades to Parallel throughout).
func ChunkContentSplit[I chunk.ChunkItem](
	goCtx context.Context,
	b *Builder,
	ctx chunk.ChunkingContext,
	entry asset.Asset,
	additionalEntries []asset.Asset,
	availabilityInfo availability.Info,
	factory chunk.FromChunkableAsset[I],
) (*chunk.ChunkContentResult[I], error) {
	_, span := b.tracer().Start(goCtx, "chunkgraph.chunk_content_split", trace.WithAttributes(
		attribute.String("chunkgraph.build_id", b.BuildID.String()),
		attribute.String("chunkgraph.entry", entry.Ident().String()),
	))
	defer span.End()

	cctx := buildContext(b, ctx, entry, availabilityInfo, true, factory)
	result, aborted, err := contentgraph.Walk[I](cctx, additionalEntries, b.MaxChunkItemsCount)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if aborted {
		err := fmt.Errorf("chunking: split walk aborted unexpectedly for %s, this is an internal invariant violation", entry.Ident())
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("chunkgraph.chunk_items", len(result.ChunkItems)))
	b.debugf("chunk_content_split: %s -> %d chunk items, %d chunks, %d async groups", entry.Ident(), len(result.ChunkItems), len(result.Chunks), len(result.AsyncChunkGroups))
	return result, nil
}
