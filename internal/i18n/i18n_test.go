package i18n

import "testing"

func TestT_ResolvesRequestedLanguage(t *testing.T) {
	if got := T(English, "historyTitle"); got != "Generation History" {
		t.Errorf("expected English title, got %q", got)
	}
	if got := T(Spanish, "historyTitle"); got != "Historial de Generaciones" {
		t.Errorf("expected Spanish title, got %q", got)
	}
}

func TestT_FallsBackToSpanish(t *testing.T) {
	// An unknown language must resolve via the fallback table.
	if got := T(Language("fr"), "outfit"); got != "Atuendo" {
		t.Errorf("expected fallback to Spanish, got %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T(English, "noSuchKey"); got != "noSuchKey" {
		t.Errorf("expected key echo for missing entry, got %q", got)
	}
}

func TestLanguage_Valid(t *testing.T) {
	if !Spanish.Valid() || !English.Valid() {
		t.Error("built-in languages must be valid")
	}
	if Language("de").Valid() {
		t.Error("unsupported language reported valid")
	}
}
