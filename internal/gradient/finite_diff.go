package gradient

// CentralDiff approximates the partial derivative of f with respect to
// parameter i by a symmetric difference of width h. It is a numeric
// cross-check for the shift rules, not a substitute.
func CentralDiff(f EvalFunc, params []float64, i int, h float64) (float64, error) {
	plus, err := shifted(f, params, i, h)
	if err != nil {
		return 0, err
	}
	minus, err := shifted(f, params, i, -h)
	if err != nil {
		return 0, err
	}
	return (plus - minus) / (2 * h), nil
}
