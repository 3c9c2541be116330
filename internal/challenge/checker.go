package challenge

import (
	"encoding/json"
	"math"
)

// Match reports whether two JSON documents agree, comparing every number
// within a relative tolerance: |got − want| ≤ tol · max(1, |want|).
// Structure (array shape, object keys) must agree exactly.
func Match(got, want []byte, tol float64) bool {
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		return false
	}
	if err := json.Unmarshal(want, &w); err != nil {
		return false
	}
	return matchValue(g, w, tol)
}

func matchValue(got, want any, tol float64) bool {
	switch w := want.(type) {
	case float64:
		g, ok := got.(float64)
		if !ok {
			return false
		}
		return math.Abs(g-w) <= tol*math.Max(1, math.Abs(w))

	case []any:
		g, ok := got.([]any)
		if !ok || len(g) != len(w) {
			return false
		}
		for i := range w {
			if !matchValue(g[i], w[i], tol) {
				return false
			}
		}
		return true

	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok || len(g) != len(w) {
			return false
		}
		for k, wv := range w {
			gv, ok := g[k]
			if !ok || !matchValue(gv, wv, tol) {
				return false
			}
		}
		return true

	default:
		// strings, bools, nulls compare exactly
		return got == want
	}
}
