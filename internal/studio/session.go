// Package studio ties the catalog, builder, history and generation backend
// together into one stateful authoring session. A Session is what a frontend
// (the bundled CLI, or an HTTP layer) drives; every mutator keeps the
// composed prompt in sync with the inputs.
package studio

import (
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"

	"promptstudio/internal/builder"
	"promptstudio/internal/catalog"
	"promptstudio/internal/gen"
	"promptstudio/internal/history"
	"promptstudio/internal/i18n"
)

// Resolver maps a persona id to its catalog. The default resolver knows
// only the built-ins; deployments with catalog override files install their
// own.
type Resolver func(catalog.PersonaID) *catalog.Catalog

// Session is one user's authoring state. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	rng     *rand.Rand
	logger  *zap.Logger
	client  gen.Client
	ledger  *history.Ledger
	resolve Resolver

	persona     catalog.Persona
	catalog     *catalog.Catalog
	contentType catalog.ContentType
	lang        i18n.Language

	mainAction string
	selections builder.Selections
	views      []builder.CategoryView
	prompt     string
	deck       *builder.IdeaDeck

	busy       bool
	describing bool
	lastResult *gen.Result
	errMsg     string
}

// NewSession builds a session for the given persona with freshly sampled
// views, resolving catalogs through the built-ins. A nil logger is replaced
// with a nop logger. The rng drives all sampling; inject a seeded source in
// tests.
func NewSession(personaID catalog.PersonaID, lang i18n.Language, client gen.Client, ledger *history.Ledger, rng *rand.Rand, logger *zap.Logger) *Session {
	return NewSessionWithResolver(catalog.ForPersona, personaID, lang, client, ledger, rng, logger)
}

// NewSessionWithResolver builds a session whose persona lookups go through
// the given resolver, so catalog override files take effect everywhere a
// persona is switched or restored from history.
func NewSessionWithResolver(resolve Resolver, personaID catalog.PersonaID, lang i18n.Language, client gen.Client, ledger *history.Ledger, rng *rand.Rand, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !lang.Valid() {
		lang = i18n.Fallback
	}
	if resolve == nil {
		resolve = catalog.ForPersona
	}
	cat := resolve(personaID)
	s := &Session{
		rng:         rng,
		logger:      logger,
		client:      client,
		ledger:      ledger,
		resolve:     resolve,
		persona:     cat.Persona,
		catalog:     cat,
		contentType: catalog.ImagePrompt,
		lang:        lang,
		selections:  make(builder.Selections),
		deck:        builder.NewIdeaDeck(rng, catalog.IdeaPool),
	}
	s.views = builder.BuildViews(rng, cat, lang, builder.FreshBuild())
	return s
}

// SetPersona switches the active persona. Selections, main action, composed
// prompt and any prior outcome are reset; the views are rebuilt fresh from
// the new persona's catalog.
func (s *Session) SetPersona(id catalog.PersonaID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := s.resolve(id)
	s.persona = cat.Persona
	s.catalog = cat
	s.resetInputsLocked()
	s.views = builder.BuildViews(s.rng, cat, s.lang, builder.FreshBuild())
}

// SetContentType selects what kind of output Submit asks for.
func (s *Session) SetContentType(ct catalog.ContentType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contentType = ct
}

// SetLanguage switches the display language. Visible option subsets are
// kept as-is; only labels and the composed prompt change.
func (s *Session) SetLanguage(lang i18n.Language) {
	if !lang.Valid() {
		lang = i18n.Fallback
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	for i := range s.views {
		s.views[i].Label = i18n.T(lang, s.views[i].ID)
	}
	s.recomposeLocked()
}

// SetMainAction replaces the free-text scene description.
func (s *Session) SetMainAction(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mainAction = text
	s.recomposeLocked()
}

// EditPrompt overrides the composed prompt directly. The edit does not feed
// back into main action or selections; the next input change recomposes
// over it.
func (s *Session) EditPrompt(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = text
}

// ToggleOption flips one option in a category and recomposes. Unknown
// category ids are ignored.
func (s *Session) ToggleOption(categoryID string, opt catalog.Option) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conf, ok := s.catalog.Category(categoryID)
	if !ok {
		return
	}
	s.selections = s.selections.Toggle(categoryID, opt, conf.SingleSelect)
	s.recomposeLocked()
}

// AddCustomOption creates an ad-hoc option from user text, selects it, and
// makes it visible in the category. Blank text is a no-op.
func (s *Session) AddCustomOption(categoryID, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conf, ok := s.catalog.Category(categoryID)
	if !ok {
		return
	}
	opt := catalog.NewCustomOption(text)
	for i, v := range s.views {
		if v.ID != categoryID {
			continue
		}
		present := false
		for _, existing := range v.Options {
			if existing.CanonicalKey() == opt.CanonicalKey() {
				present = true
				break
			}
		}
		if !present {
			s.views[i].Options = append(v.Options, opt)
		}
	}
	s.selections = s.selections.Toggle(categoryID, opt, conf.SingleSelect)
	s.recomposeLocked()
}

// RefreshCategory redraws one category's visible subset, preferring options
// not shown yet.
func (s *Session) RefreshCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = builder.RefreshCategory(s.rng, s.catalog, s.views, categoryID)
}

// ExpandCategory shows a category's entire option pool.
func (s *Session) ExpandCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = builder.ExpandCategory(s.catalog, s.views, categoryID)
}

// RandomIdea replaces the selections with a random sparse draw and clears
// the main action.
func (s *Session) RandomIdea() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = builder.RandomIdea(s.rng, s.catalog)
	s.mainAction = ""
	s.recomposeLocked()
}

// ResetInputs clears selections, main action, prompt and any prior outcome.
// The visible subsets stay put.
func (s *Session) ResetInputs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetInputsLocked()
}

// ReuseHistory restores a past entry: persona, content type, main action
// and selections come back, and the views are rebuilt with every restored
// selection guaranteed visible. Unknown ids are a no-op.
func (s *Session) ReuseHistory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.ledger.Find(id)
	if !ok {
		return false
	}

	cat := s.resolve(entry.PersonaID)
	s.persona = cat.Persona
	s.catalog = cat
	s.contentType = entry.ContentType
	s.mainAction = entry.MainAction
	s.selections = entry.Selections.Clone()
	s.views = builder.BuildViews(s.rng, cat, s.lang, builder.ReconciledBuild(s.selections))
	s.lastResult = nil
	s.errMsg = ""
	s.recomposeLocked()
	return true
}

// UseIdea copies an inspiration idea into the main action.
func (s *Session) UseIdea(idea catalog.Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mainAction = idea.Localized(s.lang)
	s.recomposeLocked()
}

// ShuffleIdeas reshuffles the inspiration pool.
func (s *Session) ShuffleIdeas() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck.Shuffle()
}

// MoreIdeas reveals another page of the inspiration pool.
func (s *Session) MoreIdeas() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck.More()
}

// Ideas returns the currently revealed inspiration ideas and whether more
// remain.
func (s *Session) Ideas() ([]catalog.Option, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Visible(), s.deck.HasMore()
}

// Views returns the current category views.
func (s *Session) Views() []builder.CategoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]builder.CategoryView, len(s.views))
	copy(out, s.views)
	return out
}

// Selections returns a copy of the current selections.
func (s *Session) Selections() builder.Selections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selections.Clone()
}

// Prompt returns the current composed (possibly hand-edited) prompt.
func (s *Session) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// MainAction returns the free-text scene description.
func (s *Session) MainAction() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mainAction
}

// Persona returns the active persona.
func (s *Session) Persona() catalog.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// ContentType returns the selected output kind.
func (s *Session) ContentType() catalog.ContentType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contentType
}

// Language returns the active display language.
func (s *Session) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Result returns the outcome of the last successful submission, if any.
func (s *Session) Result() *gen.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// ErrorMessage returns the localized message of the last failed submission,
// or "" when the last submission succeeded or none has run.
func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Describing reports whether an image description is in flight.
func (s *Session) Describing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.describing
}

// History exposes the ledger for listing and deletion.
func (s *Session) History() *history.Ledger {
	return s.ledger
}

func (s *Session) resetInputsLocked() {
	s.mainAction = ""
	s.selections = make(builder.Selections)
	s.prompt = ""
	s.lastResult = nil
	s.errMsg = ""
}

func (s *Session) recomposeLocked() {
	s.prompt = builder.Compose(s.mainAction, s.selections, s.catalog, s.lang)
}
