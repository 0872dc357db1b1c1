package agraph

// Patch is the ordered sequence of Mutations that turns Before into After.
type Patch struct {
	Before    *Graph
	After     *Graph
	Mutations []Mutation
}

// Diff computes the minimal ordered set of Mutations needed to turn before
// into after, identifying vertices and edges by ident rather than by their
// (possibly absent) server id.
//
// Mutations are ordered in six phases, so that applying them one at a time
// against a live database never violates referential integrity and never
// does more work than necessary:
//
//  1. remove edges present in before but absent from after
//  2. remove vertices present in before but absent from after
//  3. add vertices present in after but absent from before
//  4. update vertices present in both, whose label or properties changed
//  5. add edges present in after but absent from before
//  6. update edges present in both, whose label, endpoints, or properties changed
//
// Edge removals happen before vertex removals so that no edge is ever left
// dangling on a deleted vertex; vertex additions happen before edge
// additions so that no edge is ever added before its endpoints exist.
//
// Edge additions and updates also resolve their endpoints' labels by ident
// against after's vertices, since the Cypher MERGE pattern that creates or
// locates an edge must constrain both endpoints by label. An edge whose
// start or end ident does not resolve to a vertex in after is a fatal
// *ReferentialError: the diff cannot be completed.
func Diff(before, after *Graph) (*Patch, error) {
	p := &Patch{Before: before, After: after}
	if err := p.recalculate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Patch) recalculate() error {
	var mutations []Mutation

	for _, e := range p.Before.Edges().All() {
		ident, _ := e.Ident()
		if _, ok := p.After.Edges().GetByIdent(ident); !ok {
			mutations = append(mutations, NewRemoveEdge(e))
		}
	}

	for _, v := range p.Before.Vertices().All() {
		ident, _ := v.Ident()
		if _, ok := p.After.Vertices().GetByIdent(ident); !ok {
			mutations = append(mutations, NewRemoveVertex(v))
		}
	}

	for _, v := range p.After.Vertices().All() {
		ident, _ := v.Ident()
		if _, ok := p.Before.Vertices().GetByIdent(ident); !ok {
			mutations = append(mutations, NewAddVertex(v))
		}
	}

	for _, v := range p.After.Vertices().All() {
		ident, _ := v.Ident()
		before, ok := p.Before.Vertices().GetByIdent(ident)
		if !ok {
			continue
		}
		if !before.Equal(v) {
			mutations = append(mutations, NewUpdateVertex(v))
		}
	}

	for _, e := range p.After.Edges().All() {
		ident, _ := e.Ident()
		if _, ok := p.Before.Edges().GetByIdent(ident); !ok {
			startLabel, endLabel, err := p.resolveEndpointLabels(e)
			if err != nil {
				return err
			}
			mutations = append(mutations, NewAddEdge(e, startLabel, endLabel))
		}
	}

	for _, e := range p.After.Edges().All() {
		ident, _ := e.Ident()
		before, ok := p.Before.Edges().GetByIdent(ident)
		if !ok {
			continue
		}
		if !before.Equal(e) {
			startLabel, endLabel, err := p.resolveEndpointLabels(e)
			if err != nil {
				return err
			}
			mutations = append(mutations, NewUpdateEdge(e, startLabel, endLabel))
		}
	}

	p.Mutations = mutations
	return nil
}

// resolveEndpointLabels looks up e's start and end vertices by ident in
// p.After, returning a *ReferentialError naming whichever endpoint doesn't
// resolve.
func (p *Patch) resolveEndpointLabels(e *Edge) (startLabel, endLabel string, err error) {
	edgeIdent, _ := e.Ident()

	startIdent, _ := e.StartIdent()
	start, ok := p.After.Vertices().GetByIdent(startIdent)
	if !ok {
		return "", "", &ReferentialError{EdgeIdent: edgeIdent, Endpoint: "start", Ident: startIdent}
	}

	endIdent, _ := e.EndIdent()
	end, ok := p.After.Vertices().GetByIdent(endIdent)
	if !ok {
		return "", "", &ReferentialError{EdgeIdent: edgeIdent, Endpoint: "end", Ident: endIdent}
	}

	return start.Label(), end.Label(), nil
}

// IsEmpty reports whether the patch contains no mutations, i.e. Before and
// After are equivalent graphs.
func (p *Patch) IsEmpty() bool { return len(p.Mutations) == 0 }
