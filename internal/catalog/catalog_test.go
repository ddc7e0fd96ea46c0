package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"promptstudio/internal/i18n"
)

func TestOption_CanonicalKey(t *testing.T) {
	a := NewOption("hora dorada", "golden hour")
	b := NewOption("la hora dorada", "golden hour")
	c := NewOption("luz de velas", "candlelight")

	if !a.Equal(b) {
		t.Error("options with the same English string must be equal")
	}
	if a.Equal(c) {
		t.Error("options with different English strings must not be equal")
	}
}

func TestOption_LocalizedFallback(t *testing.T) {
	opt := NewOption("hora dorada", "golden hour")
	if got := opt.Localized(i18n.English); got != "golden hour" {
		t.Errorf("expected English value, got %q", got)
	}
	if got := opt.Localized(i18n.Language("fr")); got != "hora dorada" {
		t.Errorf("expected Spanish fallback, got %q", got)
	}
}

func TestNewCustomOption(t *testing.T) {
	opt := NewCustomOption("holding a red umbrella")
	if opt.CanonicalKey() != "holding a red umbrella" {
		t.Errorf("custom option canonical key = %q", opt.CanonicalKey())
	}
	if opt.Localized(i18n.Spanish) != "holding a red umbrella" {
		t.Error("custom option must use the raw input for every language")
	}
}

func TestForPersona(t *testing.T) {
	aria := ForPersona(PersonaAria)
	if aria.Persona.ID != PersonaAria {
		t.Errorf("expected Aria catalog, got %s", aria.Persona.ID)
	}
	nova := ForPersona(PersonaNova)
	if nova.Persona.ID != PersonaNova {
		t.Errorf("expected Nova catalog, got %s", nova.Persona.ID)
	}
	// Unknown personas degrade to the default account's catalog.
	if got := ForPersona(PersonaID("nobody")); got.Persona.ID != PersonaAria {
		t.Errorf("expected fallback to Aria, got %s", got.Persona.ID)
	}
}

func TestBuiltinCatalogInvariants(t *testing.T) {
	for _, id := range []PersonaID{PersonaAria, PersonaNova} {
		cat := ForPersona(id)
		seen := map[string]bool{}
		for _, c := range cat.Categories {
			if seen[c.ID] {
				t.Errorf("%s: duplicate category id %q", id, c.ID)
			}
			seen[c.ID] = true
			if c.DefaultVisible <= 0 {
				t.Errorf("%s/%s: DefaultVisible must be positive", id, c.ID)
			}
			keys := map[string]bool{}
			for _, o := range c.Options {
				k := o.CanonicalKey()
				if k == "" {
					t.Errorf("%s/%s: option without canonical key", id, c.ID)
				}
				if keys[k] {
					t.Errorf("%s/%s: duplicate option %q", id, c.ID, k)
				}
				keys[k] = true
			}
		}
		if _, ok := cat.Category("style"); !ok {
			t.Errorf("%s: style category missing", id)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
persona:
  id: Custom
  name: Custom Persona
  description: test persona
categories:
  - id: lighting
    default_visible: 2
    options:
      - {es: "hora dorada", en: "golden hour"}
      - {en: "candlelight"}
  - id: style
    single_select: true
    exclude_from_random: true
    options:
      - {es: "cine", en: "cinematic"}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cat.Persona.ID != PersonaID("Custom") {
		t.Errorf("persona id = %s", cat.Persona.ID)
	}
	if len(cat.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cat.Categories))
	}
	lighting := cat.Categories[0]
	if lighting.DefaultVisible != 2 {
		t.Errorf("default_visible = %d", lighting.DefaultVisible)
	}
	// Missing es degrades to the en value.
	if lighting.Options[1].Localized(i18n.Spanish) != "candlelight" {
		t.Errorf("missing es should fall back to en text")
	}
	style := cat.Categories[1]
	if !style.SingleSelect || !style.ExcludeFromRandom {
		t.Error("style flags not parsed")
	}
	// default_visible omitted: whole pool visible.
	if style.DefaultVisible != 1 {
		t.Errorf("omitted default_visible should equal pool size, got %d", style.DefaultVisible)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("categories: [{id: x, options: [{es: solo}]}]\npersona: {id: P}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for option missing en value")
	}
}
