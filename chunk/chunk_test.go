package chunk

import (
	"errors"
	"testing"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/availability"
)

func TestChunkingTypeString(t *testing.T) {
	cases := map[ChunkingType]string{
		Placed:           "placed",
		PlacedOrParallel: "placed-or-parallel",
		Parallel:         "parallel",
		IsolatedParallel: "isolated-parallel",
		Separate:         "separate",
		SeparateAsync:    "separate-async",
		ChunkingType(99): "unknown",
	}
	for ct, want := range cases {
		if got := ct.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ct, got, want)
		}
	}
}

type fakeChunkableAsset struct {
	ident        asset.Ident
	seenAvail    availability.Info
}

func (a *fakeChunkableAsset) Ident() asset.Ident                 { return a.ident }
func (a *fakeChunkableAsset) References() []asset.AssetReference { return nil }
func (a *fakeChunkableAsset) AsChunk(ctx ChunkingContext, availabilityInfo availability.Info) (Chunk, error) {
	a.seenAvail = availabilityInfo
	return nil, nil
}

func TestAsRootChunkBuildsFreshRootAnchoredAtAsset(t *testing.T) {
	a := &fakeChunkableAsset{ident: asset.Ident{Path: "root.js"}}
	if _, err := AsRootChunk(a, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.seenAvail.Kind() != availability.Root {
		t.Fatalf("expected AsRootChunk to pass a Root availability info")
	}
	if a.seenAvail.CurrentRoot() != a.ident {
		t.Errorf("expected the root to anchor at the asset's own ident, got %s", a.seenAvail.CurrentRoot())
	}
}

func TestEvaluatableAssetsOrdering(t *testing.T) {
	e := EmptyEvaluatableAssets()
	if !e.Empty() {
		t.Fatalf("expected a fresh EvaluatableAssets to be empty")
	}

	first := &fakeEvaluatable{ident: asset.Ident{Path: "first"}}
	second := &fakeEvaluatable{ident: asset.Ident{Path: "second"}}

	e = e.WithEntry(first).WithEntry(second)
	if e.Empty() {
		t.Fatalf("expected a non-empty collection after WithEntry")
	}
	entries := e.Entries()
	if len(entries) != 2 || entries[0] != first || entries[1] != second {
		t.Errorf("expected [first, second] in insertion order, got %+v", entries)
	}
}

func TestEvaluatableAssetsWithEntryDoesNotMutateOriginal(t *testing.T) {
	base := EmptyEvaluatableAssets().WithEntry(&fakeEvaluatable{ident: asset.Ident{Path: "a"}})
	extended := base.WithEntry(&fakeEvaluatable{ident: asset.Ident{Path: "b"}})

	if len(base.Entries()) != 1 {
		t.Errorf("expected WithEntry to leave the receiver unchanged, got %d entries", len(base.Entries()))
	}
	if len(extended.Entries()) != 2 {
		t.Errorf("expected the new collection to have 2 entries, got %d", len(extended.Entries()))
	}
}

type fakeEvaluatable struct{ ident asset.Ident }

func (e *fakeEvaluatable) Ident() asset.Ident                 { return e.ident }
func (e *fakeEvaluatable) References() []asset.AssetReference { return nil }

func TestAssetNotPlaceableErrorUnwraps(t *testing.T) {
	err := assetNotPlaceableError(asset.Ident{Path: "x.js"})
	if !errors.Is(err, ErrAssetNotPlaceable) {
		t.Errorf("expected assetNotPlaceableError to unwrap to ErrAssetNotPlaceable")
	}
	if err.Error() == "" {
		t.Errorf("expected a non-empty error message")
	}
}
