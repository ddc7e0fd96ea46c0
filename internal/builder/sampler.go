// Package builder implements the prompt-composition core: visible-subset
// sampling, category views, selection state, prompt composition and random
// idea generation. Everything here is deterministic given the injected
// rand source; nothing touches the network or disk.
package builder

import (
	"math/rand"

	"promptstudio/internal/catalog"
)

// Sample draws n options from pool without replacement, in randomized order.
// When n meets or exceeds the pool size the entire pool is returned,
// reordered. The input slice is never mutated.
func Sample(rng *rand.Rand, pool []catalog.Option, n int) []catalog.Option {
	out := make([]catalog.Option, len(pool))
	copy(out, pool)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n >= len(out) {
		return out
	}
	if n < 0 {
		n = 0
	}
	return out[:n]
}
