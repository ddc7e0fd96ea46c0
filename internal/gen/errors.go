package gen

import (
	"errors"
	"fmt"

	"promptstudio/internal/i18n"
)

// Sentinel failures from the generation backend. Everything else that goes
// wrong during a call is a generic backend failure.
var (
	// ErrSafetyBlocked means the backend declined to produce any usable
	// output.
	ErrSafetyBlocked = errors.New("content blocked by safety filters")

	// ErrTranslationFailed means pre-generation translation errored or
	// came back empty.
	ErrTranslationFailed = errors.New("translation failed")
)

// FailureKind classifies a backend failure for user-facing reporting.
type FailureKind int

const (
	GenerationFailed FailureKind = iota
	SafetyBlock
	TranslationFailed
)

// Classify maps an error from any backend call onto the failure taxonomy.
func Classify(err error) FailureKind {
	switch {
	case errors.Is(err, ErrSafetyBlocked):
		return SafetyBlock
	case errors.Is(err, ErrTranslationFailed):
		return TranslationFailed
	default:
		return GenerationFailed
	}
}

// Message returns the localized user-facing message for the failure.
func (k FailureKind) Message(lang i18n.Language) string {
	switch k {
	case SafetyBlock:
		return i18n.T(lang, "safetyError")
	case TranslationFailed:
		return i18n.T(lang, "translationError")
	default:
		return i18n.T(lang, "apiError")
	}
}

// String implements fmt.Stringer for logs.
func (k FailureKind) String() string {
	switch k {
	case SafetyBlock:
		return "safety_block"
	case TranslationFailed:
		return "translation_failed"
	default:
		return "generation_failed"
	}
}

var _ fmt.Stringer = GenerationFailed
