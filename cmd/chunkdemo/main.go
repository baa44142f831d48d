// Command chunkdemo builds a small diamond-shaped module graph in memory and
// runs it through the chunking core, printing the resulting chunk items and
// chunk groups. It exists to exercise chunking.ChunkContent end to end with
// throwaway fake assets, the way the teacher's workbench demos wire a real
// package against minimal fixtures.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
	"github.com/tenzoki/agen/chunkgraph/chunk"
	"github.com/tenzoki/agen/chunkgraph/chunking"
	"github.com/tenzoki/agen/chunkgraph/config"
	"github.com/tenzoki/agen/chunkgraph/diagnostics"
	"github.com/tenzoki/agen/chunkgraph/moduleid"
)

// module is a minimal ChunkableAsset: a JS-module stand-in with a fixed
// list of outgoing references.
type module struct {
	ident asset.Ident
	refs  []asset.AssetReference
}

func (m *module) Ident() asset.Ident               { return m.ident }
func (m *module) References() []asset.AssetReference { return m.refs }

func (m *module) AsChunk(ctx chunk.ChunkingContext, availabilityInfo availability.Info) (chunk.Chunk, error) {
	return &demoChunk{ident: m.ident, ctx: ctx, items: []chunk.ChunkItem{&moduleItem{m: m}}}, nil
}

// moduleItem is the ChunkItem a module contributes when placed.
type moduleItem struct {
	m *module
}

func (i *moduleItem) AssetIdent() asset.Ident             { return i.m.ident }
func (i *moduleItem) References() []asset.AssetReference { return i.m.refs }
func (i *moduleItem) ModuleId() moduleid.ModuleId         { return moduleid.Parse(i.m.ident.Path) }

// placedRef always requests Placed chunking: the referenced module must end
// up as a chunk item alongside the reference's holder.
type placedRef struct {
	target asset.Asset
}

func (r *placedRef) ResolveReference() (asset.ResolveResult, error) {
	return asset.ResolveResult{Primary: []asset.Asset{r.target}}, nil
}
func (r *placedRef) ChunkingType() (chunk.ChunkingType, bool) { return chunk.Placed, true }

// demoChunk is the Chunk produced from a module's AsChunk.
type demoChunk struct {
	ident asset.Ident
	ctx   chunk.ChunkingContext
	items []chunk.ChunkItem
}

func (c *demoChunk) Ident() asset.Ident                    { return c.ident }
func (c *demoChunk) References() []asset.AssetReference    { return nil }
func (c *demoChunk) ChunkingContext() chunk.ChunkingContext { return c.ctx }
func (c *demoChunk) Path() string                          { return c.ident.Path }

// demoCtx is a minimal ChunkingContext: every pair of assets may share a
// chunk, and GenerateChunk just returns the chunk itself as its own output
// asset.
type demoCtx struct{}

func (demoCtx) ContextPath() string                                  { return "/demo" }
func (demoCtx) OutputRoot() string                                   { return "/demo/out" }
func (demoCtx) Environment() asset.Environment                       { return asset.Environment{Name: "browser"} }
func (demoCtx) ChunkPath(ident asset.Ident, ext string) string        { return ident.Path + ext }
func (demoCtx) AssetPath(contentHash, ext string) string              { return contentHash + ext }
func (demoCtx) ReferenceChunkSourceMaps(chunk.Chunk) bool             { return false }
func (demoCtx) CanBeInSameChunk(a, b asset.Asset) bool                { return true }
func (demoCtx) IsHotModuleReplacementEnabled() bool                   { return false }
func (demoCtx) Layer() string                                        { return "" }
func (demoCtx) WithLayer(layer string) chunk.ChunkingContext          { return demoCtx{} }
func (demoCtx) GenerateChunk(c chunk.Chunk) (asset.Asset, error)      { return c, nil }

// moduleFactory implements chunk.FromChunkableAsset[*moduleItem]: every
// module placeable, no async loader kind in this demo.
type moduleFactory struct{}

func (moduleFactory) FromAsset(ctx chunk.ChunkingContext, a asset.Asset) (*moduleItem, bool, error) {
	m, ok := a.(*module)
	if !ok {
		var zero *moduleItem
		return zero, false, nil
	}
	return &moduleItem{m: m}, true, nil
}

func (moduleFactory) FromAsyncAsset(ctx chunk.ChunkingContext, a chunk.ChunkableAsset, availabilityInfo availability.Info) (*moduleItem, bool, error) {
	var zero *moduleItem
	return zero, false, nil
}

func main() {
	fmt.Println("--- chunkdemo: diamond module graph ---")

	leaf := &module{ident: asset.Ident{Path: "leaf.js"}}
	left := &module{ident: asset.Ident{Path: "left.js"}, refs: []asset.AssetReference{&placedRef{target: leaf}}}
	right := &module{ident: asset.Ident{Path: "right.js"}, refs: []asset.AssetReference{&placedRef{target: leaf}}}
	entry := &module{ident: asset.Ident{Path: "entry.js"}, refs: []asset.AssetReference{&placedRef{target: left}, &placedRef{target: right}}}

	b, err := chunking.NewBuilder(config.Default(), nil)
	if err != nil {
		log.Fatalf("building chunking.Builder: %v", err)
	}
	fmt.Printf("build id: %s\n", b.BuildID)

	availabilityInfo := availability.NewRoot(entry.Ident())
	result, aborted, err := chunking.ChunkContent[*moduleItem](context.Background(), b, demoCtx{}, entry, nil, availabilityInfo, moduleFactory{})
	if err != nil {
		log.Fatalf("chunk_content: %v", err)
	}
	if aborted {
		log.Fatal("chunk_content unexpectedly aborted on a 4-module graph")
	}

	fmt.Printf("chunk items (diamond deduplicated to %d, leaf visited once):\n", len(result.ChunkItems))
	for _, item := range result.ChunkItems {
		fmt.Printf("  - %s\n", item.AssetIdent())
	}

	group := b.FromChunk(demoCtx{}, &demoChunk{ident: entry.Ident(), ctx: demoCtx{}})
	assets, err := group.Chunks()
	if err != nil {
		log.Fatalf("group.Chunks: %v", err)
	}
	fmt.Printf("chunk group output assets: %d\n", len(assets))
	for _, a := range assets {
		fmt.Printf("  - %s\n", a.Ident())
	}

	summary := diagnostics.Summarize(b.BuildID.String(), entry.Ident().String(), result, aborted)
	encoded, err := summary.Encode()
	if err != nil {
		log.Fatalf("encoding diagnostics summary: %v", err)
	}
	fmt.Printf("diagnostics summary: %d bytes msgpack-encoded\n", len(encoded))
}
