// Package diagnostics serializes a chunk_content build's bucket counts into
// a portable summary, the way the teacher's graph types serialize their
// vertex/edge records with msgpack for storage and transport.
package diagnostics

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tenzoki/agen/chunkgraph/chunk"
)

// Summary is a build-independent record of one chunk_content call's output
// shape: counts only, never the chunk items or chunks themselves (those are
// caller-defined types this package has no business serializing).
type Summary struct {
	BuildID                 string `msgpack:"build_id"`
	Entry                   string `msgpack:"entry"`
	Aborted                 bool   `msgpack:"aborted"`
	ChunkItems              int    `msgpack:"chunk_items"`
	Chunks                  int    `msgpack:"chunks"`
	AsyncChunkGroups        int    `msgpack:"async_chunk_groups"`
	ExternalAssetReferences int    `msgpack:"external_asset_references"`
}

// Summarize builds a Summary from a ChunkContentResult. result may be nil
// (the aborted case), in which case every count is zero.
func Summarize[I chunk.ChunkItem](buildID, entry string, result *chunk.ChunkContentResult[I], aborted bool) Summary {
	s := Summary{BuildID: buildID, Entry: entry, Aborted: aborted}
	if result == nil {
		return s
	}
	s.ChunkItems = len(result.ChunkItems)
	s.Chunks = len(result.Chunks)
	s.AsyncChunkGroups = len(result.AsyncChunkGroups)
	s.ExternalAssetReferences = len(result.ExternalAssetReferences)
	return s
}

// Encode msgpack-encodes the summary for logging or persistence alongside a
// build's other artifacts.
func (s Summary) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: encoding summary: %w", err)
	}
	return data, nil
}

// Decode reverses Encode.
func Decode(data []byte) (Summary, error) {
	var s Summary
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Summary{}, fmt.Errorf("diagnostics: decoding summary: %w", err)
	}
	return s, nil
}
