package builder

import (
	"math/rand"

	"promptstudio/internal/catalog"
)

// ideaPageSize is how many inspiration ideas are visible initially and how
// many each "load more" adds.
const ideaPageSize = 12

// IdeaDeck manages the inspiration strip: a shuffled pool of theme ideas
// revealed a page at a time.
type IdeaDeck struct {
	rng     *rand.Rand
	ideas   []catalog.Option
	visible int
}

// NewIdeaDeck shuffles the pool and shows the first page.
func NewIdeaDeck(rng *rand.Rand, pool []catalog.Option) *IdeaDeck {
	d := &IdeaDeck{rng: rng, ideas: pool}
	d.Shuffle()
	return d
}

// Shuffle reorders the whole pool and resets visibility to one page.
func (d *IdeaDeck) Shuffle() {
	shuffled := make([]catalog.Option, len(d.ideas))
	copy(shuffled, d.ideas)
	d.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	d.ideas = shuffled
	d.visible = ideaPageSize
}

// More reveals another page of ideas.
func (d *IdeaDeck) More() {
	d.visible += ideaPageSize
}

// Visible returns the currently revealed ideas.
func (d *IdeaDeck) Visible() []catalog.Option {
	if d.visible >= len(d.ideas) {
		return d.ideas
	}
	return d.ideas[:d.visible]
}

// HasMore reports whether further pages remain.
func (d *IdeaDeck) HasMore() bool {
	return d.visible < len(d.ideas)
}
