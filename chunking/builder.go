// Package chunking is the chunking core's public entry point: it wires the
// content-graph walk (internal/contentgraph), the chunk-group walk
// (internal/groupwalk), the memoization cache, the optimizer and the
// session logger into the operations the base spec's §6 External Interfaces
// names — chunk_content, chunk_content_split, and the ChunkGroup
// constructors.
package chunking

import (
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tenzoki/agen/chunkgraph/config"
	"github.com/tenzoki/agen/chunkgraph/logging"
	"github.com/tenzoki/agen/chunkgraph/memo"
	"github.com/tenzoki/agen/chunkgraph/optimize"
)

// tracerName identifies the chunking core's spans in whatever OTel pipeline
// the host process has configured.
const tracerName = "chunkgraph"

// Builder owns the shared state a chunk-group build needs across every
// nested chunk and async chunk group it produces: the memoization cache, the
// chunk-size bound, the optimizer, and (optionally) a session logger. Share
// one Builder across an entire build for the memoization cache to pay off.
type Builder struct {
	Cache              memo.Cache
	Optimizer          optimize.Optimizer
	MaxChunkItemsCount int
	Logger             *logging.SessionLogger

	// Tracer emits spans around chunk_content/chunk_content_split calls.
	// When nil, falls back to otel.Tracer(tracerName) the way the pack's
	// pipeline runners do.
	Tracer trace.Tracer

	// BuildID tags every span emitted by this Builder so concurrent builds
	// sharing a process are distinguishable in trace output. Log lines
	// written through Logger do not carry it.
	BuildID uuid.UUID
}

// NewBuilder constructs a Builder from a Config, defaulting the optimizer to
// the identity pass-through. logger may be nil to disable diagnostics.
func NewBuilder(cfg *config.Config, logger *logging.SessionLogger) (*Builder, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cache, err := memo.New(int64(cfg.MemoCacheCapacity))
	if err != nil {
		return nil, err
	}
	return &Builder{
		Cache:              cache,
		Optimizer:          optimize.Identity{},
		MaxChunkItemsCount: cfg.MaxChunkItemsCount,
		Logger:             logger,
		BuildID:            uuid.New(),
	}, nil
}

func (b *Builder) tracer() trace.Tracer {
	if b.Tracer != nil {
		return b.Tracer
	}
	return otel.Tracer(tracerName)
}

func (b *Builder) debugf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Debug(format, args...)
	}
}
