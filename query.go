package agraph

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/veloper/agraph/lru"
)

// DefaultQueryCacheSize is the number of distinct step sequences a
// queryCache remembers per graph before evicting the least-recently-used
// entry.
const DefaultQueryCacheSize = lru.DefaultMaxSize

// queryItem is satisfied by *Vertex and *Edge via their embedded entity's
// promoted methods. It lets Step implementations operate generically over
// either kind of entity.
type queryItem interface {
	Label() string
	Properties() Properties
}

// endpointed is satisfied by *Edge (and anything else that carries start/end
// idents). Steps that filter on endpoints drop any item that doesn't
// implement it.
type endpointed interface {
	StartIdent() (string, bool)
	EndIdent() (string, bool)
}

// queryCache memoizes the result of applying a step sequence against a
// graph's vertex or edge collection, keyed by the FNV-64a hash of the
// sequence.
type queryCache struct {
	size     int
	vertices *lru.Cache[uint64, []queryItem]
	edges    *lru.Cache[uint64, []queryItem]
}

func newQueryCache(size int) *queryCache {
	return &queryCache{
		size:     size,
		vertices: lru.New[uint64, []queryItem](size),
		edges:    lru.New[uint64, []queryItem](size),
	}
}

// step is one link in a QueryBuilder's pipeline: a pure transformation from
// one ordered item slice to another, plus a small hashable representation of
// its parameters. Two builders with the same graph name and the same
// ordered sequence of step hashes are guaranteed to produce the same result
// and therefore share a cache entry — the Go equivalent of hashing a frozen
// dataclass in the original implementation.
type step struct {
	repr  string
	apply func([]queryItem) []queryItem
}

// Hash returns the FNV-64a hash of the step's parameter representation.
func (s step) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.repr))
	return h.Sum64()
}

// QueryBuilder assembles a chain of filter/sort steps over a graph's
// vertices or edges without mutating the graph, and without re-walking the
// underlying collection on every drain: each distinct step sequence is
// computed once per graph and cached.
//
// Every method returns a new QueryBuilder value; the receiver is never
// modified, so a builder can be safely branched and reused.
type QueryBuilder[T queryItem] struct {
	graphName string
	cache     *lru.Cache[uint64, []queryItem]
	base      func() []queryItem
	steps     []step
}

func newQueryBuilder[T queryItem](graphName string, cache *lru.Cache[uint64, []queryItem], base func() []queryItem) *QueryBuilder[T] {
	return &QueryBuilder[T]{graphName: graphName, cache: cache, base: base}
}

func (b *QueryBuilder[T]) with(s step) *QueryBuilder[T] {
	steps := make([]step, len(b.steps)+1)
	copy(steps, b.steps)
	steps[len(b.steps)] = s
	return &QueryBuilder[T]{graphName: b.graphName, cache: b.cache, base: b.base, steps: steps}
}

// Reset returns a QueryBuilder with the same base collection but no steps
// applied.
func (b *QueryBuilder[T]) Reset() *QueryBuilder[T] {
	return &QueryBuilder[T]{graphName: b.graphName, cache: b.cache, base: b.base}
}

// Filter appends an arbitrary predicate step. cacheKey must uniquely
// identify pred's behavior: it is the only thing distinguishing this step
// from another Filter call for caching purposes, since Go func values
// cannot be compared or hashed.
func (b *QueryBuilder[T]) Filter(cacheKey string, pred func(T) bool) *QueryBuilder[T] {
	return b.with(step{
		repr: "filter:" + cacheKey,
		apply: func(items []queryItem) []queryItem {
			out := items[:0:0]
			for _, it := range items {
				typed, ok := it.(T)
				if ok && pred(typed) {
					out = append(out, it)
				}
			}
			return out
		},
	})
}

// Prop filters to items whose property key equals value.
func (b *QueryBuilder[T]) Prop(key string, value any) *QueryBuilder[T] {
	return b.with(step{
		repr: fmt.Sprintf("prop:%s=%v", key, value),
		apply: func(items []queryItem) []queryItem {
			out := items[:0:0]
			for _, it := range items {
				if v, ok := it.Properties().Get(key); ok && valuesEqual(v, value) {
					out = append(out, it)
				}
			}
			return out
		},
	})
}

// Props filters to items whose properties are a superset of match.
func (b *QueryBuilder[T]) Props(match Properties) *QueryBuilder[T] {
	keys := match.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, match[k])
	}
	return b.with(step{
		repr: "props:" + strings.Join(parts, ","),
		apply: func(items []queryItem) []queryItem {
			out := items[:0:0]
			for _, it := range items {
				if supersetOf(it.Properties(), match) {
					out = append(out, it)
				}
			}
			return out
		},
	})
}

func supersetOf(props, match Properties) bool {
	for k, v := range match {
		pv, ok := props.Get(k)
		if !ok || !valuesEqual(pv, v) {
			return false
		}
	}
	return true
}

// Label filters to items with the given label.
func (b *QueryBuilder[T]) Label(label string) *QueryBuilder[T] {
	return b.with(step{
		repr: "label:" + label,
		apply: func(items []queryItem) []queryItem {
			out := items[:0:0]
			for _, it := range items {
				if it.Label() == label {
					out = append(out, it)
				}
			}
			return out
		},
	})
}

// Ident filters to the item with the given ident (at most one match).
func (b *QueryBuilder[T]) Ident(ident string) *QueryBuilder[T] {
	return b.Prop(IdentKey, ident)
}

// StartIdent filters to edges whose start_ident matches. On a vertex
// builder this always yields no results.
func (b *QueryBuilder[T]) StartIdent(ident string) *QueryBuilder[T] {
	return b.with(step{
		repr: "start_ident:" + ident,
		apply: func(items []queryItem) []queryItem {
			out := items[:0:0]
			for _, it := range items {
				ep, ok := it.(endpointed)
				if !ok {
					continue
				}
				if start, ok := ep.StartIdent(); ok && start == ident {
					out = append(out, it)
				}
			}
			return out
		},
	})
}

// EndIdent filters to edges whose end_ident matches. On a vertex builder
// this always yields no results.
func (b *QueryBuilder[T]) EndIdent(ident string) *QueryBuilder[T] {
	return b.with(step{
		repr: "end_ident:" + ident,
		apply: func(items []queryItem) []queryItem {
			out := items[:0:0]
			for _, it := range items {
				ep, ok := it.(endpointed)
				if !ok {
					continue
				}
				if end, ok := ep.EndIdent(); ok && end == ident {
					out = append(out, it)
				}
			}
			return out
		},
	})
}

// Sort orders items by the given property key, using a best-effort
// comparison (numbers by value, everything else by its string form). Items
// missing the key sort last. If reverse is true, items are sorted
// descending instead of ascending — but the tie-break for equal sort keys
// is always input order, in either direction: descending order is produced
// by a comparator that flips the ascending comparison, not by sorting
// ascending and then reversing the result (which would also flip the
// relative order of equal-key entities).
func (b *QueryBuilder[T]) Sort(key string, reverse bool) *QueryBuilder[T] {
	return b.with(step{
		repr: fmt.Sprintf("sort:%s:%v", key, reverse),
		apply: func(items []queryItem) []queryItem {
			out := make([]queryItem, len(items))
			copy(out, items)
			sort.SliceStable(out, func(i, j int) bool {
				vi, oki := out[i].Properties().Get(key)
				vj, okj := out[j].Properties().Get(key)
				if !oki {
					return false
				}
				if !okj {
					return true
				}
				if reverse {
					return lessValue(vj, vi)
				}
				return lessValue(vi, vj)
			})
			return out
		},
	})
}

// Reverse reverses the current item order.
func (b *QueryBuilder[T]) Reverse() *QueryBuilder[T] {
	return b.with(step{
		repr: "reverse",
		apply: func(items []queryItem) []queryItem {
			out := make([]queryItem, len(items))
			for i, it := range items {
				out[len(items)-1-i] = it
			}
			return out
		},
	})
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

// cacheKey combines the graph name and the step sequence's hashes into a
// single FNV-64a digest, the Go analogue of hashing a tuple of frozen
// dataclasses.
func (b *QueryBuilder[T]) cacheKey() uint64 {
	h := fnv.New64a()
	h.Write([]byte(b.graphName))
	var buf [8]byte
	for _, s := range b.steps {
		binary.BigEndian.PutUint64(buf[:], s.Hash())
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (b *QueryBuilder[T]) applied() []queryItem {
	key := b.cacheKey()
	if b.cache != nil {
		if cached, ok := b.cache.Get(key); ok {
			return cached
		}
	}
	items := b.base()
	for _, s := range b.steps {
		items = s.apply(items)
	}
	if b.cache != nil {
		b.cache.Put(key, items)
	}
	return items
}

// All drains the builder, returning every matching item in pipeline order.
func (b *QueryBuilder[T]) All() []T {
	items := b.applied()
	out := make([]T, 0, len(items))
	for _, it := range items {
		if typed, ok := it.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Find returns the first item for which pred returns true.
func (b *QueryBuilder[T]) Find(pred func(T) bool) (T, bool) {
	for _, it := range b.All() {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// First returns the first item in pipeline order.
func (b *QueryBuilder[T]) First() (T, bool) {
	all := b.All()
	if len(all) == 0 {
		var zero T
		return zero, false
	}
	return all[0], true
}

// Last returns the last item in pipeline order.
func (b *QueryBuilder[T]) Last() (T, bool) {
	all := b.All()
	if len(all) == 0 {
		var zero T
		return zero, false
	}
	return all[len(all)-1], true
}
