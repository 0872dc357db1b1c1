package cypher

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/veloper/agraph"
)

// Statement is a single openCypher statement rendered from one Mutation.
// Its String method returns the exact text to send through
// `cypher('<graph>', $$ ... $$)`.
type Statement interface {
	fmt.Stringer
}

// matchClause renders a MATCH clause that locates an entity by its
// server-assigned id when known, falling back to matching on the given
// ident properties otherwise. The vertex update and delete statements use
// it; edge statements build their own match clauses.
func matchClause(variable, label string, id *int64, identProps map[string]any) string {
	if id != nil {
		return fmt.Sprintf("MATCH (%s:%s) WHERE id(%s) = %d", variable, label, variable, *id)
	}
	return fmt.Sprintf("MATCH (%s:%s %s)", variable, label, encodeDict(identProps))
}

// encodeValue renders a single Go value as an openCypher literal.
func encodeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return quoteString(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = encodeValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		return encodeDict(val)
	case agraph.Properties:
		return encodeDict(val)
	default:
		return quoteString(fmt.Sprint(val))
	}
}

// encodeDict renders m as an openCypher map literal, with keys in sorted
// order for deterministic output.
func encodeDict(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", encodeKeyword(k), encodeValue(m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// encodeSetAssign renders a `SET <variable> += {...}` clause, which merges
// the given properties into the matched entity key by key (top-level keys
// only; a nested map value replaces the stored one) instead of replacing
// the whole property map. Properties absent from this mutation's snapshot
// are left untouched.
func encodeSetAssign(variable string, props map[string]any) string {
	return fmt.Sprintf("SET %s += %s", variable, encodeDict(props))
}

// encodeKeyword renders a map key as a bare identifier when it already looks
// like one, or as a quoted string otherwise.
func encodeKeyword(key string) string {
	if isBareIdentifier(key) {
		return key
	}
	return quoteString(key)
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func quoteString(s string) string {
	return "'" + escapeString(s) + "'"
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func propsMap(p agraph.Properties) map[string]any {
	return map[string]any(p)
}
