package selector

import "math/rand"

// sampleWithoutReplacement returns n distinct elements of pool chosen with
// the given source. When n >= len(pool) a shuffled copy of the whole pool
// is returned. The input slice is not modified.
func sampleWithoutReplacement[T any](pool []T, n int, rng *rand.Rand) []T {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	out := make([]T, len(pool))
	copy(out, pool)
	if n > len(out) {
		n = len(out)
	}
	// partial Fisher-Yates: only the first n positions need to be drawn
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n]
}
