package builder

import (
	"math/rand"

	"promptstudio/internal/catalog"
	"promptstudio/internal/i18n"
)

// CategoryView is the runtime projection of a catalog category: its visible
// option subset plus the localized label. Views are replaced wholesale on
// every view-changing action, never mutated in place.
type CategoryView struct {
	ID           string
	Label        string
	SingleSelect bool
	Options      []catalog.Option
}

// BuildRequest tells BuildViews how to populate the visible subsets. The
// zero value is a fresh build; ReconciledBuild carries prior selections that
// must stay visible. Passing the request explicitly replaces the one-shot
// "reusing history" flag the UI would otherwise have to juggle.
type BuildRequest struct {
	reconcile bool
	prior     Selections
}

// FreshBuild requests randomly sampled visible subsets.
func FreshBuild() BuildRequest {
	return BuildRequest{}
}

// ReconciledBuild requests fresh subsets with every previously selected
// option guaranteed visible.
func ReconciledBuild(prior Selections) BuildRequest {
	return BuildRequest{reconcile: true, prior: prior}
}

// Reconciled reports whether the request carries prior selections.
func (r BuildRequest) Reconciled() bool {
	return r.reconcile
}

// BuildViews derives a view for every category in the catalog. Fresh builds
// sample DefaultVisible options per category; reconciled builds additionally
// append any prior-selected option the draw missed, so reused history items
// stay visible and selectable.
func BuildViews(rng *rand.Rand, cat *catalog.Catalog, lang i18n.Language, req BuildRequest) []CategoryView {
	views := make([]CategoryView, 0, len(cat.Categories))
	for _, c := range cat.Categories {
		visible := Sample(rng, c.Options, c.DefaultVisible)
		if req.reconcile {
			for _, sel := range req.prior[c.ID] {
				if !containsKey(visible, sel.CanonicalKey()) {
					visible = append(visible, sel)
				}
			}
		}
		views = append(views, CategoryView{
			ID:           c.ID,
			Label:        c.Label(lang),
			SingleSelect: c.SingleSelect,
			Options:      visible,
		})
	}
	return views
}

// RefreshCategory resamples the visible subset of one category, preferring
// options the user has not seen yet. When fewer unseen options remain than
// the default count, the whole pool is resampled instead so a refresh always
// yields a full subset. Other categories are carried over untouched.
func RefreshCategory(rng *rand.Rand, cat *catalog.Catalog, views []CategoryView, categoryID string) []CategoryView {
	conf, ok := cat.Category(categoryID)
	if !ok {
		return views
	}

	out := make([]CategoryView, len(views))
	copy(out, views)
	for i, v := range out {
		if v.ID != categoryID {
			continue
		}
		seen := make(map[string]bool, len(v.Options))
		for _, opt := range v.Options {
			seen[opt.CanonicalKey()] = true
		}
		var unseen []catalog.Option
		for _, opt := range conf.Options {
			if !seen[opt.CanonicalKey()] {
				unseen = append(unseen, opt)
			}
		}

		var subset []catalog.Option
		if len(unseen) >= conf.DefaultVisible {
			subset = Sample(rng, unseen, conf.DefaultVisible)
		} else {
			subset = Sample(rng, conf.Options, conf.DefaultVisible)
		}
		out[i] = CategoryView{ID: v.ID, Label: v.Label, SingleSelect: v.SingleSelect, Options: subset}
	}
	return out
}

// ExpandCategory replaces one category's visible subset with its entire
// pool. One-way; there is no collapse.
func ExpandCategory(cat *catalog.Catalog, views []CategoryView, categoryID string) []CategoryView {
	conf, ok := cat.Category(categoryID)
	if !ok {
		return views
	}
	out := make([]CategoryView, len(views))
	copy(out, views)
	for i, v := range out {
		if v.ID == categoryID {
			pool := make([]catalog.Option, len(conf.Options))
			copy(pool, conf.Options)
			out[i] = CategoryView{ID: v.ID, Label: v.Label, SingleSelect: v.SingleSelect, Options: pool}
		}
	}
	return out
}

func containsKey(opts []catalog.Option, key string) bool {
	for _, o := range opts {
		if o.CanonicalKey() == key {
			return true
		}
	}
	return false
}
