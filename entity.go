package agraph

// entity holds the state shared by Vertex and Edge: a label, an optional
// server-assigned numeric id, and a property bag. Ident/StartIdent/EndIdent
// are not separate fields — they are reserved keys inside Properties — so
// that an entity constructed directly from a persisted record (label, id,
// properties) needs no extra bookkeeping to recover its identity.
type entity struct {
	label      string
	id         *int64
	properties Properties
}

// Label returns the entity's type label (e.g. "Person", "MARRIED_TO").
func (e *entity) Label() string { return e.label }

// SetLabel changes the entity's label.
func (e *entity) SetLabel(label string) { e.label = label }

// Id returns the server-assigned id and true, or (0, false) if the entity
// has never been persisted.
func (e *entity) Id() (int64, bool) {
	if e.id == nil {
		return 0, false
	}
	return *e.id, true
}

// HasId reports whether the entity carries a server-assigned id.
func (e *entity) HasId() bool { return e.id != nil }

// SetId assigns the server-side id, as returned by a persistence driver
// after a successful insert.
func (e *entity) SetId(id int64) { e.id = &id }

// Properties returns the entity's property bag directly; mutating it
// mutates the entity.
func (e *entity) Properties() Properties {
	if e.properties == nil {
		e.properties = NewProperties()
	}
	return e.properties
}

// SetProperties replaces the entity's entire property bag.
func (e *entity) SetProperties(props Properties) { e.properties = props }

// Ident returns the entity's caller-assigned identity.
func (e *entity) Ident() (string, bool) { return e.Properties().Ident() }

// HasIdent reports whether the entity carries a caller-assigned identity.
func (e *entity) HasIdent() bool { return e.Properties().HasIdent() }

// SetIdent assigns the entity's caller-assigned identity.
func (e *entity) SetIdent(ident string) { e.Properties().SetIdent(ident) }

func (e *entity) validate() error {
	if e.label == "" {
		return &ValidationError{Ident: identOf(e), Reason: "label must not be empty"}
	}
	if !e.HasIdent() {
		return &ValidationError{Ident: identOf(e), Reason: "ident must be set"}
	}
	return nil
}

func identOf(e *entity) string {
	ident, _ := e.Ident()
	return ident
}
