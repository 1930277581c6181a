// Package rng provides the random sources used for shuffling and for the
// scripted opponent's decision draws. Injecting a Generator keeps test runs
// reproducible.
package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Float64 derives a uniform draw in [0, 1) from a Generator
func Float64(g Generator) float64 {
	const precision = 1 << 20
	return float64(g.Intn(precision)) / float64(precision)
}
