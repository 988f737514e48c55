package grid

// Fold replaces the accumulator with step(acc, m) for every m in order.
func Fold[S, M any](start S, moves []M, step func(S, M) S) S {
	acc := start
	for _, m := range moves {
		acc = step(acc, m)
	}
	return acc
}
