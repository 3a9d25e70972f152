package document

import (
	"reflect"

	"txtchange/internal/errors"
)

// ApplyMutation returns the document that results from applying m to current.
// current is nil when the document does not exist; the result is nil when m deletes it.
// Backends without native field transforms (memory, postgres) share this.
func ApplyMutation(current map[string]any, m Mutation) (map[string]any, error) {
	switch m.Kind {
	case MutationSet:
		return Clone(m.Data), nil
	case MutationDelete:
		return nil, nil
	case MutationUpdate:
		if current == nil {
			return nil, errors.Wrapf(ErrNotFound, "update %s/%s", m.Collection, m.ID)
		}

		next := Clone(current)
		for _, u := range m.Updates {
			if err := applyUpdate(next, u); err != nil {
				return nil, errors.Wrapf(err, "update %s/%s", m.Collection, m.ID)
			}
		}

		return next, nil
	default:
		return nil, errors.Errorf("unknown mutation kind %d", m.Kind)
	}
}

func applyUpdate(doc map[string]any, u Update) error {
	if len(u.Path) == 0 {
		return errors.New("empty field path")
	}

	parent := doc
	for _, segment := range u.Path[:len(u.Path)-1] {
		child, ok := parent[segment].(map[string]any)
		if !ok {
			if _, isDelete := u.Value.(DeleteFieldValue); isDelete {
				return nil
			}
			child = map[string]any{}
			parent[segment] = child
		}
		parent = child
	}

	leaf := u.Path[len(u.Path)-1]
	switch v := u.Value.(type) {
	case DeleteFieldValue:
		delete(parent, leaf)
	case ArrayUnionValue:
		arr := toAnySlice(parent[leaf])
		for _, e := range v.Elems {
			if !containsValue(arr, e) {
				arr = append(arr, e)
			}
		}
		parent[leaf] = arr
	case ArrayRemoveValue:
		arr := toAnySlice(parent[leaf])
		kept := make([]any, 0, len(arr))
		for _, e := range arr {
			if !containsValue(v.Elems, e) {
				kept = append(kept, e)
			}
		}
		parent[leaf] = kept
	default:
		parent[leaf] = cloneValue(u.Value)
	}

	return nil
}

// Matches reports whether data satisfies every filter.
func Matches(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		value, ok := data[f.Field]
		if !ok {
			return false
		}
		switch f.Op {
		case OpEqual:
			if !equalValues(value, f.Value) {
				return false
			}
		case OpArrayContains:
			if !containsValue(toAnySlice(value), f.Value) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// Clone deep-copies a document.
func Clone(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}

		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}

		return out
	default:
		return v
	}
}

func toAnySlice(v any) []any {
	switch t := v.(type) {
	case []any:
		return append([]any(nil), t...)
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}

		return out
	default:
		return []any{}
	}
}

func containsValue(arr []any, needle any) bool {
	for _, e := range arr {
		if equalValues(e, needle) {
			return true
		}
	}

	return false
}

func equalValues(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
	}

	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
