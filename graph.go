package agraph

import (
	"encoding/json"
	"fmt"
)

// Graph is a named, in-memory property graph: a set of vertices and a set
// of edges between them, plus the query-result caches their QueryBuilders
// share.
type Graph struct {
	name     string
	vertices *Vertices
	edges    *Edges
	cache    *queryCache
}

// NewGraph returns an empty Graph with the given name and a query cache of
// DefaultQueryCacheSize entries per collection. The name scopes the query
// cache (two graphs never share cache entries). The persistence driver does
// not read it: ageengine.Engine writes to the graph name it was built with.
func NewGraph(name string) *Graph {
	return NewGraphWithCacheSize(name, DefaultQueryCacheSize)
}

// NewGraphWithCacheSize is like NewGraph but lets the caller size the
// per-collection query cache explicitly.
func NewGraphWithCacheSize(name string, cacheSize int) *Graph {
	return &Graph{
		name:     name,
		vertices: NewVertices(),
		edges:    NewEdges(),
		cache:    newQueryCache(cacheSize),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// Vertices returns the graph's vertex container.
func (g *Graph) Vertices() *Vertices { return g.vertices }

// Edges returns the graph's edge container.
func (g *Graph) Edges() *Edges { return g.edges }

// AddVertex inserts v into the graph, invalidating any cached query result
// that could be affected. A vertex added without an ident is assigned a
// generated one.
func (g *Graph) AddVertex(v *Vertex) {
	if ident, ok := v.Ident(); !ok || ident == "" {
		v.SetIdent(GenerateIdent(3, "_"))
	}
	g.vertices.Add(v)
	g.cache.vertices.Clear(nil)
}

// AddEdge inserts e into the graph, invalidating any cached query result
// that could be affected. An edge added without an ident is assigned a
// generated one.
func (g *Graph) AddEdge(e *Edge) {
	if ident, ok := e.Ident(); !ok || ident == "" {
		e.SetIdent(GenerateIdent(3, "_"))
	}
	g.edges.Add(e)
	g.cache.edges.Clear(nil)
}

// RemoveVertex deletes the vertex with the given ident, along with every
// edge still attached to it.
func (g *Graph) RemoveVertex(ident string) {
	g.vertices.Remove(ident)
	for _, e := range g.edges.All() {
		start, _ := e.StartIdent()
		end, _ := e.EndIdent()
		if start == ident || end == ident {
			edgeIdent, _ := e.Ident()
			g.edges.Remove(edgeIdent)
		}
	}
	g.cache.vertices.Clear(nil)
	g.cache.edges.Clear(nil)
}

// RemoveEdge deletes the edge with the given ident.
func (g *Graph) RemoveEdge(ident string) {
	g.edges.Remove(ident)
	g.cache.edges.Clear(nil)
}

// UpsertVertex deep-merges props into the label/properties of the existing
// vertex identified by ident, or creates a new one if none exists yet.
func (g *Graph) UpsertVertex(label, ident string, props Properties) *Vertex {
	if v, ok := g.vertices.GetByIdent(ident); ok {
		v.Upsert(label, props)
		g.cache.vertices.Clear(nil)
		return v
	}
	v := NewVertex(label, ident, props)
	g.AddVertex(v)
	return v
}

// UpsertEdge deep-merges props into the label/properties of the existing
// edge identified by ident, or creates a new one between startIdent and
// endIdent if none exists yet.
//
// If ident is empty or no edge carries it, the upsert falls back to locating
// the edge by (startIdent, endIdent, label): at most one such edge is assumed
// to exist, and the first match is upserted, keeping its own ident. This
// mirrors the assumption that parallel edges sharing the same endpoints and
// label are not distinguished by this fallback path.
func (g *Graph) UpsertEdge(label, ident, startIdent, endIdent string, props Properties) *Edge {
	if ident != "" {
		if e, ok := g.edges.GetByIdent(ident); ok {
			e.Upsert(label, props)
			g.cache.edges.Clear(nil)
			return e
		}
	}

	for _, e := range g.edges.All() {
		start, _ := e.StartIdent()
		end, _ := e.EndIdent()
		if start == startIdent && end == endIdent && e.Label() == label {
			e.Upsert(label, props)
			g.cache.edges.Clear(nil)
			return e
		}
	}
	if ident == "" {
		ident = GenerateIdent(3, "_")
	}
	e := NewEdge(label, ident, startIdent, endIdent, props)
	g.AddEdge(e)
	return e
}

// QueryVertices returns a fresh QueryBuilder over the graph's vertices.
func (g *Graph) QueryVertices() *QueryBuilder[*Vertex] {
	return g.vertices.Query(g.name, g.cache)
}

// QueryEdges returns a fresh QueryBuilder over the graph's edges.
func (g *Graph) QueryEdges() *QueryBuilder[*Edge] {
	return g.edges.Query(g.name, g.cache)
}

// Validate checks every vertex and edge invariant, and that every edge's
// endpoints resolve to a vertex present in the graph.
func (g *Graph) Validate() error {
	for _, v := range g.vertices.All() {
		if err := v.validate(); err != nil {
			return err
		}
	}
	for _, e := range g.edges.All() {
		if err := e.validate(); err != nil {
			return err
		}
		start, _ := e.StartIdent()
		end, _ := e.EndIdent()
		edgeIdent, _ := e.Ident()
		if _, ok := g.vertices.GetByIdent(start); !ok {
			return &ReferentialError{EdgeIdent: edgeIdent, Endpoint: "start", Ident: start}
		}
		if _, ok := g.vertices.GetByIdent(end); !ok {
			return &ReferentialError{EdgeIdent: edgeIdent, Endpoint: "end", Ident: end}
		}
	}
	return nil
}

// Clone returns a deep copy of g, including a fresh (empty) query cache.
func (g *Graph) Clone() *Graph {
	return &Graph{
		name:     g.name,
		vertices: g.vertices.Clone(),
		edges:    g.edges.Clone(),
		cache:    newQueryCache(g.cache.size),
	}
}

// Equal reports whether g and other carry the same name and the same set of
// vertices and edges, by the same label/properties/endpoints comparison
// Vertex.Equal and Edge.Equal use (server ids are not compared). This is the
// round-trip law FromJSON(g.ToJSON()) is expected to satisfy.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || g.name != other.name {
		return false
	}
	if g.vertices.Len() != other.vertices.Len() || g.edges.Len() != other.edges.Len() {
		return false
	}
	for _, v := range g.vertices.All() {
		ident, _ := v.Ident()
		ov, ok := other.vertices.GetByIdent(ident)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	for _, e := range g.edges.All() {
		ident, _ := e.Ident()
		oe, ok := other.edges.GetByIdent(ident)
		if !ok || !e.Equal(oe) {
			return false
		}
	}
	return true
}

// ToDict returns g's plain-map representation: a "name" string plus
// "vertices"/"edges" arrays of {id?, label, properties} and
// {id?, label, start_id?, end_id?, properties} objects respectively. Server
// ids are omitted for entities that don't have one yet.
func (g *Graph) ToDict() map[string]any {
	vertices := make([]any, 0, g.vertices.Len())
	for _, v := range g.vertices.All() {
		vertices = append(vertices, vertexToDict(v))
	}
	edges := make([]any, 0, g.edges.Len())
	for _, e := range g.edges.All() {
		edges = append(edges, edgeToDict(e))
	}
	return map[string]any{
		"name":     g.name,
		"vertices": vertices,
		"edges":    edges,
	}
}

func vertexToDict(v *Vertex) map[string]any {
	d := map[string]any{
		"label":      v.Label(),
		"properties": map[string]any(v.Properties().Clone()),
	}
	if id, ok := v.Id(); ok {
		d["id"] = id
	}
	return d
}

func edgeToDict(e *Edge) map[string]any {
	d := map[string]any{
		"label":      e.Label(),
		"properties": map[string]any(e.Properties().Clone()),
	}
	if id, ok := e.Id(); ok {
		d["id"] = id
	}
	if id, ok := e.StartId(); ok {
		d["start_id"] = id
	}
	if id, ok := e.EndId(); ok {
		d["end_id"] = id
	}
	return d
}

// FromDict reconstructs a Graph from the plain-map representation ToDict
// produces (or an equivalent one decoded from JSON, where numeric ids arrive
// as float64).
func FromDict(d map[string]any) (*Graph, error) {
	name, _ := d["name"].(string)
	g := NewGraph(name)

	vertices, _ := d["vertices"].([]any)
	for _, raw := range vertices {
		vm, ok := raw.(map[string]any)
		if !ok {
			return nil, &ValidationError{Reason: "vertex entry must be an object"}
		}
		v, err := vertexFromDict(vm)
		if err != nil {
			return nil, err
		}
		g.AddVertex(v)
	}

	edges, _ := d["edges"].([]any)
	for _, raw := range edges {
		em, ok := raw.(map[string]any)
		if !ok {
			return nil, &ValidationError{Reason: "edge entry must be an object"}
		}
		e, err := edgeFromDict(em)
		if err != nil {
			return nil, err
		}
		g.AddEdge(e)
	}

	return g, nil
}

func vertexFromDict(m map[string]any) (*Vertex, error) {
	label, _ := m["label"].(string)
	v := NewVertexFromProperties(label, Properties(propsFromAny(m["properties"])))
	if raw, ok := m["id"]; ok && raw != nil {
		id, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		v.SetId(id)
	}
	return v, nil
}

func edgeFromDict(m map[string]any) (*Edge, error) {
	label, _ := m["label"].(string)
	props := Properties(propsFromAny(m["properties"]))
	ident, _ := props.Ident()
	startIdent, _ := props.StartIdent()
	endIdent, _ := props.EndIdent()
	e := NewEdge(label, ident, startIdent, endIdent, props)
	if raw, ok := m["id"]; ok && raw != nil {
		id, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		e.SetId(id)
	}
	if raw, ok := m["start_id"]; ok && raw != nil {
		id, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		e.SetStartId(id)
	}
	if raw, ok := m["end_id"]; ok && raw != nil {
		id, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		e.SetEndId(id)
	}
	return e, nil
}

func propsFromAny(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, &ValidationError{Reason: fmt.Sprintf("id must be numeric, got %T", v)}
	}
}

// ToJSON renders g as JSON, via ToDict.
func (g *Graph) ToJSON() ([]byte, error) {
	data, err := json.Marshal(g.ToDict())
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("encode graph to JSON: %v", err)}
	}
	return data, nil
}

// FromJSON parses data as the JSON form ToJSON produces, via FromDict.
func FromJSON(data []byte) (*Graph, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("decode graph from JSON: %v", err)}
	}
	return FromDict(raw)
}

// VertexRecord is the driver-level representation of one decoded vertex
// row: a server-assigned id, a label, and the full property map.
type VertexRecord struct {
	Id         int64
	Label      string
	Properties Properties
}

// EdgeRecord is the driver-level representation of one decoded edge row: a
// server-assigned id, a label, the endpoint vertices' server-assigned ids,
// and the full property map.
type EdgeRecord struct {
	Id         int64
	Label      string
	StartId    int64
	EndId      int64
	Properties Properties
}

// FromRecords builds a Graph named name from the driver's row
// representation: every vertex record, then every edge record. An edge
// record's properties are expected to already carry start_ident/end_ident
// (as NewEdge does); when either is absent, it is resolved from the
// endpoint's server-assigned id via the vertex records already added.
func FromRecords(name string, vertexRecords []VertexRecord, edgeRecords []EdgeRecord) (*Graph, error) {
	g := NewGraph(name)

	identByVertexId := make(map[int64]string, len(vertexRecords))
	for _, r := range vertexRecords {
		v := NewVertexFromRecord(r.Label, r.Id, r.Properties)
		if ident, ok := v.Ident(); !ok || ident == "" {
			v.SetIdent(GenerateIdent(3, "_"))
		}
		ident, _ := v.Ident()
		identByVertexId[r.Id] = ident
		g.AddVertex(v)
	}

	for _, r := range edgeRecords {
		props := r.Properties
		if props == nil {
			props = NewProperties()
		} else {
			props = props.Clone()
		}
		startIdent, hasStart := props.StartIdent()
		if !hasStart || startIdent == "" {
			startIdent = identByVertexId[r.StartId]
			props.SetStartIdent(startIdent)
		}
		endIdent, hasEnd := props.EndIdent()
		if !hasEnd || endIdent == "" {
			endIdent = identByVertexId[r.EndId]
			props.SetEndIdent(endIdent)
		}
		if ident, _ := props.Ident(); ident == "" {
			props.SetIdent(GenerateIdent(3, "_"))
		}
		startId, endId := r.StartId, r.EndId
		e := NewEdgeFromRecord(r.Label, r.Id, &startId, &endId, props)
		g.AddEdge(e)
	}

	return g, nil
}

// ToRecords converts g to the driver's row representation: one VertexRecord
// per vertex and one EdgeRecord per edge, in insertion order.
func (g *Graph) ToRecords() ([]VertexRecord, []EdgeRecord) {
	vertexRecords := make([]VertexRecord, 0, g.vertices.Len())
	for _, v := range g.vertices.All() {
		id, _ := v.Id()
		vertexRecords = append(vertexRecords, VertexRecord{Id: id, Label: v.Label(), Properties: v.Properties().Clone()})
	}

	edgeRecords := make([]EdgeRecord, 0, g.edges.Len())
	for _, e := range g.edges.All() {
		id, _ := e.Id()
		startId, _ := e.StartId()
		endId, _ := e.EndId()
		edgeRecords = append(edgeRecords, EdgeRecord{Id: id, Label: e.Label(), StartId: startId, EndId: endId, Properties: e.Properties().Clone()})
	}

	return vertexRecords, edgeRecords
}
