// Package gen is the generation backend boundary: a small client interface
// over Gemini for content generation, translation and image description,
// plus the failure taxonomy the rest of the studio reports through.
package gen

import (
	"context"

	"promptstudio/internal/catalog"
	"promptstudio/internal/i18n"
)

// Posts is one set of platform-specific post texts.
type Posts struct {
	Exclusive string `json:"exclusive"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// Result carries the candidate outputs of one generation call. Exactly one
// of the two slices is populated, matching the requested content type.
type Result struct {
	ContentType catalog.ContentType
	Prompts     []string
	Posts       []Posts
}

// Client is the interface the submission orchestrator talks to.
type Client interface {
	// GenerateContent produces candidate outputs for the persona and
	// theme. Returns ErrSafetyBlocked when the backend yields no usable
	// output.
	GenerateContent(ctx context.Context, persona catalog.Persona, ct catalog.ContentType, theme string) (*Result, error)

	// TranslateToEnglish translates text for generation. Empty or
	// whitespace-only input returns "" without calling the backend.
	// Errors and empty model output map to ErrTranslationFailed.
	TranslateToEnglish(ctx context.Context, text string) (string, error)

	// DescribeImage turns a reference image into a detailed scene
	// description in the given language. Returns ErrSafetyBlocked when
	// no text comes back.
	DescribeImage(ctx context.Context, data []byte, mimeType string, lang i18n.Language) (string, error)
}
