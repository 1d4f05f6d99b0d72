package normalize

// accessor reads one candidate value from an upstream object.
type accessor func(obj map[string]any) any

// field walks nested keys. String keys index objects, int keys index lists.
func field(path ...any) accessor {
	return func(obj map[string]any) any {
		var cur any = obj
		for _, step := range path {
			switch key := step.(type) {
			case string:
				m, ok := cur.(map[string]any)
				if !ok {
					return nil
				}
				cur = m[key]
			case int:
				list, ok := cur.([]any)
				if !ok || key < 0 || key >= len(list) {
					return nil
				}
				cur = list[key]
			}
		}
		return cur
	}
}

// present reports whether v counts as a value: nil, "", 0, false and empty
// lists or objects do not.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// first evaluates accessors in order and returns the first present value.
func first(obj map[string]any, accessors ...accessor) (any, bool) {
	for _, get := range accessors {
		if v := get(obj); present(v) {
			return v, true
		}
	}
	return nil, false
}

func firstString(obj map[string]any, fallback string, accessors ...accessor) string {
	for _, get := range accessors {
		if s, ok := get(obj).(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func firstNumber(obj map[string]any, accessors ...accessor) (float64, bool) {
	for _, get := range accessors {
		if n, ok := get(obj).(float64); ok && n != 0 {
			return n, true
		}
	}
	return 0, false
}
