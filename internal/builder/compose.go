package builder

import (
	"sort"
	"strings"

	"promptstudio/internal/catalog"
	"promptstudio/internal/i18n"
)

// Compose derives the final prompt text from the free-text main action and
// the current selections. Selected options are collected in catalog category
// order (selections for unknown categories follow, sorted by id for
// determinism), localized with the usual fallback, and joined with ", ".
// The trimmed main action is prefixed, separated by ", " only when both
// sides are non-empty. Composition is a pure derivation; the caller owns
// any post-hoc edits to the result.
func Compose(mainAction string, sel Selections, cat *catalog.Catalog, lang i18n.Language) string {
	var parts []string
	collect := func(opts []catalog.Option) {
		for _, opt := range opts {
			parts = append(parts, opt.Localized(lang))
		}
	}

	known := make(map[string]bool, len(cat.Categories))
	for _, c := range cat.Categories {
		known[c.ID] = true
		collect(sel[c.ID])
	}

	var extras []string
	for id := range sel {
		if !known[id] {
			extras = append(extras, id)
		}
	}
	sort.Strings(extras)
	for _, id := range extras {
		collect(sel[id])
	}

	prompt := strings.TrimSpace(mainAction)
	if len(parts) > 0 {
		joined := strings.Join(parts, ", ")
		if prompt != "" {
			prompt += ", " + joined
		} else {
			prompt = joined
		}
	}
	return prompt
}
