package studio

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"promptstudio/internal/catalog"
	"promptstudio/internal/gen"
	"promptstudio/internal/history"
	"promptstudio/internal/i18n"
)

func TestMain(m *testing.M) {
	// go.opencensus.io (a transitive dependency of the genai SDK) starts a
	// background worker goroutine at package init that never exits.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// memStore keeps history in memory for tests.
type memStore struct {
	entries []history.Entry
}

func (m *memStore) Load() ([]history.Entry, error) { return m.entries, nil }
func (m *memStore) Save(es []history.Entry) error  { m.entries = es; return nil }
func (m *memStore) Remove() error                  { m.entries = nil; return nil }

// fakeClient is a scriptable generation backend.
type fakeClient struct {
	mu           sync.Mutex
	translateIn  []string
	translateOut string
	translateErr error
	genThemes    []string
	genErr       error
	result       *gen.Result
	describeOut  string
	describeErr  error

	// When set, GenerateContent signals entered and then waits on release.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeClient) GenerateContent(ctx context.Context, persona catalog.Persona, ct catalog.ContentType, theme string) (*gen.Result, error) {
	f.mu.Lock()
	f.genThemes = append(f.genThemes, theme)
	entered, release := f.entered, f.release
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
		<-release
	}
	if f.genErr != nil {
		return nil, f.genErr
	}
	if f.result != nil {
		return f.result, nil
	}
	return &gen.Result{ContentType: ct, Prompts: []string{"p1", "p2", "p3"}}, nil
}

func (f *fakeClient) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.translateIn = append(f.translateIn, text)
	f.mu.Unlock()
	if f.translateErr != nil {
		return "", f.translateErr
	}
	if f.translateOut != "" {
		return f.translateOut, nil
	}
	return text, nil
}

func (f *fakeClient) DescribeImage(ctx context.Context, data []byte, mimeType string, lang i18n.Language) (string, error) {
	if f.describeErr != nil {
		return "", f.describeErr
	}
	return f.describeOut, nil
}

func (f *fakeClient) generateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.genThemes)
}

func newTestSession(t *testing.T, lang i18n.Language, client gen.Client) *Session {
	t.Helper()
	ledger := history.NewLedger(&memStore{}, zap.NewNop())
	ledger.Load()
	rng := rand.New(rand.NewSource(1))
	return NewSession(catalog.PersonaAria, lang, client, ledger, rng, zap.NewNop())
}

func TestNewSession_FreshViewsMatchCatalog(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})
	cat := catalog.ForPersona(catalog.PersonaAria)

	views := s.Views()
	require.Len(t, views, len(cat.Categories))
	for _, v := range views {
		conf, ok := cat.Category(v.ID)
		require.True(t, ok)
		want := conf.DefaultVisible
		if want > len(conf.Options) {
			want = len(conf.Options)
		}
		assert.Len(t, v.Options, want, "category %s", v.ID)
		assert.Equal(t, conf.SingleSelect, v.SingleSelect)
	}
}

func TestToggleOption_Recomposes(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})
	cat := catalog.ForPersona(catalog.PersonaAria)
	conf := cat.Categories[0]
	opt := conf.Options[0]

	s.SetMainAction("walking through the city")
	s.ToggleOption(conf.ID, opt)

	assert.Equal(t, "walking through the city, "+opt.Localized(i18n.English), s.Prompt())

	s.ToggleOption(conf.ID, opt)
	assert.Equal(t, "walking through the city", s.Prompt())
}

func TestEditPrompt_DoesNotFeedBack(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})

	s.SetMainAction("original")
	s.EditPrompt("hand-tuned prompt")
	assert.Equal(t, "hand-tuned prompt", s.Prompt())
	assert.Equal(t, "original", s.MainAction(), "edits must not rewrite the inputs")

	// The next input change recomposes over the edit.
	s.SetMainAction("replaced")
	assert.Equal(t, "replaced", s.Prompt())
}

func TestRandomIdea_ClearsMainAction(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})
	s.SetMainAction("old theme")
	s.RandomIdea()
	assert.Empty(t, s.MainAction())
}

func TestResetInputs(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})
	s.SetMainAction("something")
	cat := catalog.ForPersona(catalog.PersonaAria)
	s.ToggleOption(cat.Categories[0].ID, cat.Categories[0].Options[0])

	before := s.Views()
	s.ResetInputs()
	assert.Empty(t, s.MainAction())
	assert.True(t, s.Selections().Empty())
	assert.Empty(t, s.Prompt())
	assert.Equal(t, before, s.Views(), "reset must not redraw the views")
}

func TestAddCustomOption(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})
	cat := catalog.ForPersona(catalog.PersonaAria)
	id := cat.Categories[0].ID

	s.AddCustomOption(id, "my custom detail")
	assert.True(t, s.Selections().Has(id, "my custom detail"))

	found := false
	for _, v := range s.Views() {
		if v.ID != id {
			continue
		}
		for _, o := range v.Options {
			if o.CanonicalKey() == "my custom detail" {
				found = true
			}
		}
	}
	assert.True(t, found, "custom option must become visible")

	s.AddCustomOption(id, "   ")
	assert.Equal(t, 1, s.Selections().Count())
}

func TestSubmit_EmptyPrompt(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, i18n.English, client)

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Zero(t, client.generateCalls())
}

func TestSubmit_TranslatesSpanishPrompt(t *testing.T) {
	client := &fakeClient{translateOut: "a walk at dawn"}
	s := newTestSession(t, i18n.Spanish, client)
	s.SetMainAction("un paseo al amanecer")

	result, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, client.translateIn, 1)
	assert.Equal(t, "un paseo al amanecer", client.translateIn[0])
	require.Len(t, client.genThemes, 1)
	assert.Equal(t, "a walk at dawn", client.genThemes[0], "generation must see the translated theme")

	entries := s.History().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "un paseo al amanecer", entries[0].MainAction, "history keeps the pre-translation input")
	assert.Equal(t, "a walk at dawn", entries[0].Prompt)
	assert.Equal(t, catalog.PersonaAria, entries[0].PersonaID)
}

func TestSubmit_EnglishSkipsTranslation(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, i18n.English, client)
	s.SetMainAction("a walk at dawn")

	_, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, client.translateIn)
	require.Len(t, client.genThemes, 1)
	assert.Equal(t, "a walk at dawn", client.genThemes[0])
}

func TestSubmit_SafetyBlockStoresLocalizedMessage(t *testing.T) {
	client := &fakeClient{genErr: gen.ErrSafetyBlocked}
	s := newTestSession(t, i18n.Spanish, client)
	s.SetMainAction("tema")

	_, err := s.Submit(context.Background())
	require.ErrorIs(t, err, gen.ErrSafetyBlocked)
	assert.Equal(t, i18n.T(i18n.Spanish, "safetyError"), s.ErrorMessage())
	assert.Empty(t, s.History().Entries(), "failures are not journaled")
	assert.Nil(t, s.Result())
	assert.False(t, s.Busy())
}

func TestSubmit_TranslationFailure(t *testing.T) {
	client := &fakeClient{translateErr: gen.ErrTranslationFailed}
	s := newTestSession(t, i18n.Spanish, client)
	s.SetMainAction("tema")

	_, err := s.Submit(context.Background())
	require.ErrorIs(t, err, gen.ErrTranslationFailed)
	assert.Equal(t, i18n.T(i18n.Spanish, "translationError"), s.ErrorMessage())
	assert.Zero(t, client.generateCalls(), "generation must not run without a theme")
}

func TestSubmit_SecondCallWhileBusyIsRejected(t *testing.T) {
	client := &fakeClient{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := newTestSession(t, i18n.English, client)
	s.SetMainAction("a walk at dawn")

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	select {
	case <-client.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the backend")
	}

	assert.True(t, s.Busy())
	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(client.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, client.generateCalls(), "exactly one backend call")
	assert.False(t, s.Busy())
}

func TestSubmit_SuccessClearsPriorError(t *testing.T) {
	client := &fakeClient{genErr: gen.ErrSafetyBlocked}
	s := newTestSession(t, i18n.English, client)
	s.SetMainAction("theme")

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, s.ErrorMessage())

	client.genErr = nil
	_, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.ErrorMessage())
	assert.NotNil(t, s.Result())
}

func TestReuseHistory_RestoresStateAndVisibility(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, i18n.English, client)

	cat := catalog.ForPersona(catalog.PersonaAria)
	var multi catalog.Category
	for _, c := range cat.Categories {
		if !c.SingleSelect {
			multi = c
			break
		}
	}
	require.NotEmpty(t, multi.ID)

	s.SetMainAction("rooftop at dusk")
	for _, opt := range multi.Options {
		s.ToggleOption(multi.ID, opt)
	}
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	entry := s.History().Entries()[0]

	// Disturb the state, then restore.
	s.SetPersona(catalog.PersonaNova)
	s.SetContentType(catalog.PostText)
	require.True(t, s.ReuseHistory(entry.ID))

	assert.Equal(t, catalog.PersonaAria, s.Persona().ID)
	assert.Equal(t, entry.ContentType, s.ContentType())
	assert.Equal(t, "rooftop at dusk", s.MainAction())

	// Every restored selection must be visible in its category view.
	for _, v := range s.Views() {
		for _, sel := range entry.Selections[v.ID] {
			found := false
			for _, o := range v.Options {
				if o.CanonicalKey() == sel.CanonicalKey() {
					found = true
				}
			}
			assert.True(t, found, "selection %q missing from view %s", sel.CanonicalKey(), v.ID)
		}
	}

	assert.False(t, s.ReuseHistory("no-such-id"))
}

func TestDescribeImage_SeedsMainAction(t *testing.T) {
	client := &fakeClient{describeOut: "a figure on a rain-soaked street"}
	s := newTestSession(t, i18n.English, client)

	got, err := s.DescribeImage(context.Background(), []byte{0x89}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "a figure on a rain-soaked street", got)
	assert.Equal(t, got, s.MainAction())
	assert.Equal(t, got, s.Prompt())
	assert.False(t, s.Describing())
}

func TestDescribeImage_Failure(t *testing.T) {
	client := &fakeClient{describeErr: errors.New("boom")}
	s := newTestSession(t, i18n.English, client)
	s.SetMainAction("keep me")

	_, err := s.DescribeImage(context.Background(), []byte{0x89}, "image/png")
	require.Error(t, err)
	assert.Equal(t, "keep me", s.MainAction(), "failure leaves the inputs alone")
	assert.Equal(t, i18n.T(i18n.English, "apiError"), s.ErrorMessage())
}

func TestNewSessionWithResolver_OverridesCatalog(t *testing.T) {
	override := &catalog.Catalog{
		Persona: catalog.Persona{ID: "Custom", Name: "Custom Persona"},
		Categories: []catalog.Category{
			{
				ID:             "lighting",
				DefaultVisible: 1,
				Options:        []catalog.Option{catalog.NewOption("lava", "lava glow")},
			},
		},
	}
	resolve := func(id catalog.PersonaID) *catalog.Catalog {
		if id == override.Persona.ID {
			return override
		}
		return catalog.ForPersona(id)
	}

	ledger := history.NewLedger(&memStore{}, zap.NewNop())
	ledger.Load()
	s := NewSessionWithResolver(resolve, "Custom", i18n.English, &fakeClient{}, ledger, rand.New(rand.NewSource(1)), zap.NewNop())

	assert.Equal(t, catalog.PersonaID("Custom"), s.Persona().ID)
	views := s.Views()
	require.Len(t, views, 1)
	require.Len(t, views[0].Options, 1)
	assert.Equal(t, "lava glow", views[0].Options[0].CanonicalKey())

	// Persona switches keep resolving through the override.
	s.SetPersona(catalog.PersonaAria)
	assert.Equal(t, catalog.PersonaAria, s.Persona().ID)
	s.SetPersona("Custom")
	require.Len(t, s.Views(), 1)

	// History reuse for the override persona restores its catalog too.
	s.SetMainAction("molten scene")
	_, err := s.Submit(context.Background())
	require.NoError(t, err)
	entry := s.History().Entries()[0]
	s.SetPersona(catalog.PersonaNova)
	require.True(t, s.ReuseHistory(entry.ID))
	assert.Equal(t, catalog.PersonaID("Custom"), s.Persona().ID)
	require.Len(t, s.Views(), 1)
}

func TestDescribeImage_SuccessClearsPriorError(t *testing.T) {
	client := &fakeClient{describeErr: errors.New("boom")}
	s := newTestSession(t, i18n.English, client)

	_, err := s.DescribeImage(context.Background(), []byte{0x89}, "image/png")
	require.Error(t, err)
	require.NotEmpty(t, s.ErrorMessage())

	client.describeErr = nil
	client.describeOut = "a clear description"
	_, err = s.DescribeImage(context.Background(), []byte{0x89}, "image/png")
	require.NoError(t, err)
	assert.Empty(t, s.ErrorMessage())
}

func TestSetLanguage_RelabelsAndRecomposes(t *testing.T) {
	s := newTestSession(t, i18n.English, &fakeClient{})
	cat := catalog.ForPersona(catalog.PersonaAria)
	conf := cat.Categories[0]
	opt := conf.Options[0]
	s.ToggleOption(conf.ID, opt)

	before := s.Views()
	s.SetLanguage(i18n.Spanish)
	after := s.Views()

	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].Options, after[i].Options, "language switch must not redraw options")
		assert.Equal(t, i18n.T(i18n.Spanish, after[i].ID), after[i].Label)
	}
	assert.Equal(t, opt.Localized(i18n.Spanish), s.Prompt())
}
