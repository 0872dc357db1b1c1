package ageengine

import "testing"

func TestDecodeVertexRecord(t *testing.T) {
	raw := `{"id": 844424930131969, "label": "Person", "properties": {"ident": "gomez", "name": "Gomez"}}::vertex`

	records, err := decodeVertexRecords([]string{raw})
	if err != nil {
		t.Fatalf("decodeVertexRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	v := records[0]
	if v.Label != "Person" {
		t.Errorf("Label = %q, want %q", v.Label, "Person")
	}
	if v.Id != 844424930131969 {
		t.Errorf("Id = %d, want 844424930131969", v.Id)
	}
	if ident, _ := v.Properties.Ident(); ident != "gomez" {
		t.Errorf("Ident() = %q, want %q", ident, "gomez")
	}
}

func TestDecodeEdgeRecord(t *testing.T) {
	raw := `{"id": 1125899906842625, "label": "MARRIED_TO", "properties": {"ident": "gomez_morticia", "start_ident": "gomez", "end_ident": "morticia"}}::edge`

	records, err := decodeEdgeRecords([]string{raw})
	if err != nil {
		t.Fatalf("decodeEdgeRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	e := records[0]
	if e.Label != "MARRIED_TO" {
		t.Errorf("Label = %q, want %q", e.Label, "MARRIED_TO")
	}
	if start, _ := e.Properties.StartIdent(); start != "gomez" {
		t.Errorf("StartIdent() = %q, want %q", start, "gomez")
	}
	if end, _ := e.Properties.EndIdent(); end != "morticia" {
		t.Errorf("EndIdent() = %q, want %q", end, "morticia")
	}
}

func TestDecodeVertexRecordRejectsMalformedJSON(t *testing.T) {
	if _, err := decodeVertexRecords([]string{`not json at all::vertex`}); err == nil {
		t.Fatal("decodeVertexRecords(malformed) = nil error, want one")
	}
}
