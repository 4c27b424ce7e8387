package json2tab

import (
	"fmt"
	"strconv"
	"strings"
)

// Flatten converts a parsed JSON value into a set of flat records plus
// the maximum nesting depth of the original value. Every valid value,
// including null and empty containers, yields at least one record.
//
// Sibling arrays contribute their rows additively: an object holding two
// unrelated object arrays of length N and M flattens to N+M records, not
// N*M. Only a chain of nested arrays multiplies, because each level
// narrows the parent context to one element.
func Flatten(value any) (RecordSet, int) {
	return explode(value, "", NewRecord(), 0), maxDepth(value)
}

// maxDepth counts container levels. Every object or array counts as one
// level, arrays of primitives included. Computed with its own traversal
// since its recursion shape differs from the explosion.
func maxDepth(value any) int {
	switch v := value.(type) {
	case *Object:
		depth := 1
		for _, key := range v.Keys {
			if d := maxDepth(v.Fields[key]) + 1; d > depth {
				depth = d
			}
		}
		return depth
	case []any:
		depth := 1
		for _, elem := range v {
			if d := maxDepth(elem) + 1; d > depth {
				depth = d
			}
		}
		return depth
	default:
		return 0
	}
}

// explode produces the flat records for value. prefix is the joined key
// path so far, parent carries the flat fields inherited from ancestors,
// and arrayLevel counts how many arrays have been entered on this path.
// Objects do not advance arrayLevel, only arrays do.
func explode(value any, prefix string, parent *Record, arrayLevel int) RecordSet {
	switch v := value.(type) {
	case *Object:
		return explodeObject(v, prefix, parent, arrayLevel)
	case []any:
		return explodeArray(v, prefix, parent, arrayLevel)
	default:
		rec := parent.Clone()
		rec.Set(fieldName(prefix), v)
		return RecordSet{rec}
	}
}

func explodeArray(arr []any, prefix string, parent *Record, arrayLevel int) RecordSet {
	if len(arr) == 0 {
		rec := parent.Clone()
		rec.Set(fieldName(prefix), nil)
		return RecordSet{rec}
	}

	if allPrimitive(arr) {
		rec := parent.Clone()
		rec.Set(fieldName(prefix), joinPrimitives(arr))
		return RecordSet{rec}
	}

	// Object array. Each element explodes independently with its own
	// index column; results are concatenated in element order.
	indexField := prefix + "_index"
	if prefix == "" {
		// Anonymous array level. Two anonymous arrays at the same level
		// under different parents share this column name, a known
		// limitation of the naming scheme.
		indexField = "_index_level_" + strconv.Itoa(arrayLevel)
	}

	var out RecordSet
	for i, elem := range arr {
		elemParent := parent.Clone()
		elemParent.Set(indexField, i)
		out = append(out, explode(elem, prefix, elemParent, arrayLevel+1)...)
	}
	return out
}

func explodeObject(obj *Object, prefix string, parent *Record, arrayLevel int) RecordSet {
	base := parent.Clone()
	var nested RecordSet

	for _, key := range obj.Keys {
		joined := joinKey(prefix, key)

		switch v := obj.Fields[key].(type) {
		case *Object:
			children := explode(v, joined, base.Clone(), arrayLevel)
			if len(children) == 1 {
				// A single child row folds into the base row. Fields the
				// base already holds win, so ancestor values are never
				// overwritten by the echo the child carries back.
				mergeMissing(base, children[0])
			} else {
				nested = append(nested, children...)
			}
		case []any:
			if len(v) == 0 {
				base.Set(joined, nil)
			} else if allPrimitive(v) {
				base.Set(joined, joinPrimitives(v))
			} else {
				// Rows of a different cardinality than the base row.
				// Kept aside and overlaid after all scalar fields of
				// this object are known.
				nested = append(nested, explodeArray(v, joined, base.Clone(), arrayLevel)...)
			}
		default:
			base.Set(joined, v)
		}
	}

	if len(nested) == 0 {
		return RecordSet{base}
	}

	out := make(RecordSet, 0, len(nested))
	for _, child := range nested {
		rec := base.Clone()
		for _, key := range child.Keys() {
			v, _ := child.Get(key)
			rec.Set(key, v)
		}
		out = append(out, rec)
	}
	return out
}

func fieldName(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}

func joinKey(prefix string, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "_" + key
}

func mergeMissing(dst *Record, src *Record) {
	for _, key := range src.Keys() {
		if dst.Has(key) {
			continue
		}
		v, _ := src.Get(key)
		dst.Set(key, v)
	}
}

func allPrimitive(arr []any) bool {
	for _, elem := range arr {
		switch elem.(type) {
		case *Object, []any:
			return false
		}
	}
	return true
}

// joinPrimitives renders a primitive-only array as one comma separated
// string, with nulls dropped.
func joinPrimitives(arr []any) string {
	var parts []string
	for _, elem := range arr {
		if elem == nil {
			continue
		}
		parts = append(parts, primitiveString(elem))
	}
	return strings.Join(parts, ", ")
}

func primitiveString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
