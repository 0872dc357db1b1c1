package ageengine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/veloper/agraph"
)

// agtypeVertexRecord mirrors the JSON shape Apache AGE renders a vertex as,
// once the trailing `::vertex` type-tag is stripped.
type agtypeVertexRecord struct {
	Id         int64          `json:"id"`
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties"`
}

// agtypeEdgeRecord mirrors the JSON shape Apache AGE renders an edge as,
// once the trailing `::edge` type-tag is stripped.
type agtypeEdgeRecord struct {
	Id         int64          `json:"id"`
	Label      string         `json:"label"`
	StartId    int64          `json:"start_id"`
	EndId      int64          `json:"end_id"`
	Properties map[string]any `json:"properties"`
}

// decodeVertexRecords batch-decodes every raw agtype vertex row AGE
// returned: each row's trailing `::vertex` type-tag is stripped and the
// rows are concatenated into a single JSON array, decoded in one pass
// rather than one json.Unmarshal call per row.
func decodeVertexRecords(raw []string) ([]agraph.VertexRecord, error) {
	var rows []agtypeVertexRecord
	if err := unmarshalAgtypeBatch(raw, "::vertex", &rows); err != nil {
		return nil, err
	}
	out := make([]agraph.VertexRecord, len(rows))
	for i, r := range rows {
		out[i] = agraph.VertexRecord{Id: r.Id, Label: r.Label, Properties: agraph.Properties(r.Properties)}
	}
	return out, nil
}

// decodeEdgeRecords is decodeVertexRecords' edge-side counterpart.
func decodeEdgeRecords(raw []string) ([]agraph.EdgeRecord, error) {
	var rows []agtypeEdgeRecord
	if err := unmarshalAgtypeBatch(raw, "::edge", &rows); err != nil {
		return nil, err
	}
	out := make([]agraph.EdgeRecord, len(rows))
	for i, r := range rows {
		out[i] = agraph.EdgeRecord{
			Id: r.Id, Label: r.Label, StartId: r.StartId, EndId: r.EndId,
			Properties: agraph.Properties(r.Properties),
		}
	}
	return out, nil
}

// unmarshalAgtypeBatch strips tag from every row in raw and concatenates
// them into a single JSON array literal, so the whole result set is parsed
// by one json.Unmarshal call instead of one per row.
func unmarshalAgtypeBatch(raw []string, tag string, out any) error {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range raw {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strings.TrimSuffix(strings.TrimSpace(row), tag))
	}
	b.WriteByte(']')
	if err := json.Unmarshal([]byte(b.String()), out); err != nil {
		return &agraph.DriverError{Err: fmt.Errorf("decode agtype%s batch: %w", tag, err)}
	}
	return nil
}
