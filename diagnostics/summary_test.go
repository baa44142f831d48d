package diagnostics

import (
	"testing"

	"github.com/tenzoki/agen/chunkgraph/asset"
	"github.com/tenzoki/agen/chunkgraph/chunk"
)

type stubItem struct{ ident asset.Ident }

func (s *stubItem) AssetIdent() asset.Ident             { return s.ident }
func (s *stubItem) References() []asset.AssetReference { return nil }

func TestSummarizeAbortedHasZeroCounts(t *testing.T) {
	s := Summarize[*stubItem]("build-1", "entry.js", nil, true)
	if !s.Aborted {
		t.Errorf("expected Aborted=true to survive Summarize")
	}
	if s.ChunkItems != 0 || s.Chunks != 0 || s.AsyncChunkGroups != 0 || s.ExternalAssetReferences != 0 {
		t.Errorf("expected zero counts for an aborted walk, got %+v", s)
	}
}

func TestSummarizeCountsMatchResult(t *testing.T) {
	result := &chunk.ChunkContentResult[*stubItem]{
		ChunkItems: []*stubItem{{}, {}},
	}
	s := Summarize("build-1", "entry.js", result, false)
	if s.ChunkItems != 2 {
		t.Errorf("ChunkItems = %d, want 2", s.ChunkItems)
	}
	if s.Aborted {
		t.Errorf("expected Aborted=false")
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	s := Summary{BuildID: "b", Entry: "e", ChunkItems: 3, Chunks: 1}
	data, err := s.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Errorf("Decode(Encode(s)) = %+v, want %+v", got, s)
	}
}
