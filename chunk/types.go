// Package chunk defines the chunking core's shared types: ChunkingType, the
// capability surfaces the walk consumes, ChunkContentResult, the canonical
// chunk references and the error taxonomy. The content-graph walk lives in
// internal/contentgraph and chunk-group construction in package chunking.
package chunk

import (
	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
)

// ChunkingType controls how a referenced asset is placed relative to the
// chunk holding the reference.
type ChunkingType uint8

const (
	// Placed requires the asset to end up as a chunk item in the current
	// chunk; failure to do so is fatal.
	Placed ChunkingType = iota
	// PlacedOrParallel is the default: place in the same chunk when the
	// chunking context permits co-location and the asset yields a chunk
	// item, otherwise fall back to Parallel.
	PlacedOrParallel
	// Parallel always produces a separate chunk loaded in parallel with
	// the current one, inheriting the caller's availability info.
	Parallel
	// IsolatedParallel is like Parallel but starts a fresh availability
	// root anchored at the referenced chunkable asset.
	IsolatedParallel
	// Separate produces a new chunk group referenced, but not loaded, by
	// the current one.
	Separate
	// SeparateAsync is like Separate but additionally emits a loader
	// chunk item that can pull the new group in at runtime.
	SeparateAsync
)

func (t ChunkingType) String() string {
	switch t {
	case Placed:
		return "placed"
	case PlacedOrParallel:
		return "placed-or-parallel"
	case Parallel:
		return "parallel"
	case IsolatedParallel:
		return "isolated-parallel"
	case Separate:
		return "separate"
	case SeparateAsync:
		return "separate-async"
	default:
		return "unknown"
	}
}

// ChunkableAsset is an Asset that can be converted into a Chunk.
type ChunkableAsset interface {
	asset.Asset
	AsChunk(ctx ChunkingContext, availabilityInfo availability.Info) (Chunk, error)
}

// AsRootChunk builds the root chunk for a, anchoring a fresh availability
// root at a itself. This is the default turbopack-core provides for
// ChunkableAsset::as_root_chunk.
func AsRootChunk(a ChunkableAsset, ctx ChunkingContext) (Chunk, error) {
	return a.AsChunk(ctx, availability.NewRoot(a.Ident()))
}

// ChunkableAssetReference is an AssetReference that declares how its
// resolved assets should be chunked. A reference that does not implement
// this interface is always treated as an opaque external reference.
type ChunkableAssetReference interface {
	asset.AssetReference
	// ChunkingType returns the disposition for this reference, or
	// (_, false) to mean "no chunking type" (treated the same as External).
	ChunkingType() (ChunkingType, bool)
}

// ParallelChunkReference is an AssetReference from a Chunk that may mark its
// resolved assets as chunks loaded in parallel with the holding chunk.
type ParallelChunkReference interface {
	asset.AssetReference
	IsLoadedInParallel() bool
}

// Chunk is a polymorphic asset bundling chunk items and emitting references
// — including parallel references — to sibling chunks.
type Chunk interface {
	asset.Asset
	ChunkingContext() ChunkingContext
	// Path is Ident().Path for most chunk kinds.
	Path() string
}

// ChunkItem is the unit of placement inside a chunk.
type ChunkItem interface {
	AssetIdent() asset.Ident
	References() []asset.AssetReference
}

// EvaluatableAsset is an asset representing code executable at load time.
type EvaluatableAsset interface {
	asset.Asset
}

// EvaluatableAssets is an ordered collection of EvaluatableAsset.
type EvaluatableAssets struct {
	entries []EvaluatableAsset
}

// EmptyEvaluatableAssets returns an empty collection.
func EmptyEvaluatableAssets() EvaluatableAssets {
	return EvaluatableAssets{}
}

// WithEntry returns a new collection with a appended.
func (e EvaluatableAssets) WithEntry(a EvaluatableAsset) EvaluatableAssets {
	next := make([]EvaluatableAsset, len(e.entries), len(e.entries)+1)
	copy(next, e.entries)
	next = append(next, a)
	return EvaluatableAssets{entries: next}
}

// Entries returns the ordered list of evaluatable assets.
func (e EvaluatableAssets) Entries() []EvaluatableAsset {
	return e.entries
}

func (e EvaluatableAssets) Empty() bool {
	return len(e.entries) == 0
}

// ChunkingContext influences the way chunks are created.
type ChunkingContext interface {
	ContextPath() string
	OutputRoot() string
	// Environment identifies the runtime target this context generates
	// chunks for. It can change across a module graph via transitions, so
	// callers must read it from the context rather than caching it.
	Environment() asset.Environment
	ChunkPath(ident asset.Ident, extension string) string
	AssetPath(contentHash string, extension string) string
	ReferenceChunkSourceMaps(c Chunk) bool
	// CanBeInSameChunk is the co-location heuristic consulted by
	// PlacedOrParallel.
	CanBeInSameChunk(a, b asset.Asset) bool
	IsHotModuleReplacementEnabled() bool
	Layer() string
	WithLayer(layer string) ChunkingContext
	// GenerateChunk produces an output asset from an intermediate chunk.
	GenerateChunk(c Chunk) (asset.Asset, error)
}

// EvaluateChunkingContext is implemented by chunking contexts that can
// produce the bootstrapping "evaluate chunk" artifact.
type EvaluateChunkingContext interface {
	ChunkingContext
	EvaluateChunk(entry Chunk, outputAssets []asset.Asset, evaluatable EvaluatableAssets) (asset.Asset, error)
}

// FromChunkableAsset parameterizes the content-graph visitor per chunk kind
// (JS modules, CSS modules, ...): it decides which assets a given chunk item
// type accepts as interior chunk items, and which become async loader stubs.
type FromChunkableAsset[I ChunkItem] interface {
	// FromAsset returns (item, true) if this kind accepts asset as a
	// placed chunk item, or (zero, false) to refuse it — not an error.
	FromAsset(ctx ChunkingContext, a asset.Asset) (I, bool, error)
	// FromAsyncAsset returns a manifest-loader chunk item for a
	// SeparateAsync reference, or (zero, false) to refuse it.
	FromAsyncAsset(ctx ChunkingContext, a ChunkableAsset, availabilityInfo availability.Info) (I, bool, error)
}
