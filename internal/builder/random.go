package builder

import (
	"math/rand"

	"promptstudio/internal/catalog"
)

// RandomIdea assembles a full selection set across the catalog. Each
// category is skipped when flagged ExcludeFromRandom, and independently with
// 50% probability; the coin flip applies to every category regardless of the
// flag, keeping random ideas sparse. Multi-select categories contribute one
// or two options, single-select exactly one, drawn uniformly from the full
// pool. The result replaces any prior selections; callers also clear the
// main action as part of the operation.
func RandomIdea(rng *rand.Rand, cat *catalog.Catalog) Selections {
	sel := make(Selections)
	for _, c := range cat.Categories {
		if c.ExcludeFromRandom {
			continue
		}
		if rng.Float64() < 0.5 {
			continue
		}
		if len(c.Options) == 0 {
			continue
		}

		if c.SingleSelect {
			sel[c.ID] = []catalog.Option{c.Options[rng.Intn(len(c.Options))]}
		} else {
			count := 1 + rng.Intn(2)
			sel[c.ID] = Sample(rng, c.Options, count)
		}
	}
	return sel
}
