package persist

// MergeWithDefaults reconciles a loaded document (as a decoded JSON map)
// against the current schema default. The result starts as a deep copy of
// defaults; for every key the loaded map carries, a plain-object value is
// merged recursively while any other value (array, primitive, null) replaces
// the default verbatim. Arrays are never merged element-wise. Documents saved
// under an older, smaller schema gain new default keys without losing
// anything the user already had, and the operation is idempotent.
func MergeWithDefaults(loaded, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(defaults)
	for k, v := range loaded {
		if sub, ok := v.(map[string]interface{}); ok {
			def, _ := result[k].(map[string]interface{})
			result[k] = MergeWithDefaults(sub, def)
			continue
		}
		result[k] = deepCopyValue(v)
	}
	return result
}

func deepCopyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
