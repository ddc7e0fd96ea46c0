package studio

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"promptstudio/internal/gen"
	"promptstudio/internal/history"
	"promptstudio/internal/i18n"
)

var (
	// ErrBusy means a submission (or description) is already in flight.
	ErrBusy = errors.New("operation already in progress")

	// ErrEmptyPrompt means there is nothing to submit.
	ErrEmptyPrompt = errors.New("prompt is empty")
)

// Submit sends the current prompt to the generation backend. At most one
// submission runs at a time; a second call while one is in flight returns
// ErrBusy without touching the backend. Non-English prompts are translated
// first. On success the outcome is stored, a history entry is recorded and
// the result returned; on failure the localized message is stored for
// ErrorMessage and the underlying error returned.
func (s *Session) Submit(ctx context.Context) (*gen.Result, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	prompt := strings.TrimSpace(s.prompt)
	if prompt == "" {
		s.mu.Unlock()
		return nil, ErrEmptyPrompt
	}
	s.busy = true
	s.lastResult = nil
	s.errMsg = ""
	persona := s.persona
	ct := s.contentType
	lang := s.lang
	mainAction := s.mainAction
	sel := s.selections.Clone()
	s.mu.Unlock()

	theme := prompt
	var err error
	if lang != i18n.English {
		theme, err = s.client.TranslateToEnglish(ctx, prompt)
		if err == nil && strings.TrimSpace(theme) == "" {
			err = gen.ErrTranslationFailed
		}
	}

	var result *gen.Result
	if err == nil {
		result, err = s.client.GenerateContent(ctx, persona, ct, theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		kind := gen.Classify(err)
		s.errMsg = kind.Message(lang)
		s.logger.Warn("submission failed",
			zap.Stringer("kind", kind),
			zap.String("persona", string(persona.ID)),
			zap.Error(err))
		return nil, err
	}

	s.lastResult = result
	s.ledger.Record(history.NewEntry(mainAction, sel, theme, ct, persona.ID))
	s.logger.Info("submission succeeded",
		zap.String("persona", string(persona.ID)),
		zap.String("content_type", string(ct)))
	return result, nil
}

// DescribeImage sends a reference image to the backend and, on success,
// replaces the main action with the returned description. It runs
// independently of Submit but also one at a time.
func (s *Session) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	if s.describing {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.describing = true
	s.errMsg = ""
	lang := s.lang
	s.mu.Unlock()

	description, err := s.client.DescribeImage(ctx, data, mimeType, lang)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.describing = false

	if err != nil {
		s.errMsg = gen.Classify(err).Message(lang)
		s.logger.Warn("image description failed", zap.Error(err))
		return "", err
	}

	s.mainAction = description
	s.recomposeLocked()
	return description, nil
}
