package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"promptstudio/internal/catalog"
	"promptstudio/internal/i18n"
)

// GeminiConfig holds connection settings for the Gemini backend.
type GeminiConfig struct {
	APIKey string
	// Model handles generation; FlashModel handles translation and image
	// description, which favor latency over depth.
	Model      string
	FlashModel string
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:     apiKey,
		Model:      "gemini-2.5-pro",
		FlashModel: "gemini-2.5-flash",
	}
}

// GeminiClient implements Client on the official genai SDK.
type GeminiClient struct {
	client     *genai.Client
	model      string
	flashModel string
	logger     *zap.Logger
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = "gemini-2.5-pro"
	}
	flash := config.FlashModel
	if flash == "" {
		flash = "gemini-2.5-flash"
	}
	return &GeminiClient{client: client, model: model, flashModel: flash, logger: logger}, nil
}

var promptsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"prompts": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"prompts"},
}

var postsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"posts": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"exclusive": {Type: genai.TypeString},
					"instagram": {Type: genai.TypeString},
					"twitter":   {Type: genai.TypeString},
				},
				Required: []string{"exclusive", "instagram", "twitter"},
			},
		},
	},
	Required: []string{"posts"},
}

// GenerateContent implements Client.
func (c *GeminiClient) GenerateContent(ctx context.Context, persona catalog.Persona, ct catalog.ContentType, theme string) (*Result, error) {
	var instruction string
	var schema *genai.Schema
	switch ct {
	case catalog.ImagePrompt:
		instruction = imagePromptInstruction(persona, theme)
		schema = promptsSchema
	case catalog.PostText:
		instruction = postTextInstruction(persona, theme)
		schema = postsSchema
	default:
		return nil, fmt.Errorf("invalid content type %q", ct)
	}

	c.logger.Debug("calling generation backend",
		zap.String("model", c.model),
		zap.String("persona", string(persona.ID)),
		zap.String("content_type", string(ct)))

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(instruction),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		})
	if err != nil {
		return nil, fmt.Errorf("generation call failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrSafetyBlocked
	}
	return parseResult(ct, text)
}

// parseResult decodes the JSON payload into a Result.
func parseResult(ct catalog.ContentType, text string) (*Result, error) {
	if ct == catalog.ImagePrompt {
		var payload struct {
			Prompts []string `json:"prompts"`
		}
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return nil, fmt.Errorf("failed to parse image prompts response: %w", err)
		}
		if len(payload.Prompts) == 0 {
			return nil, fmt.Errorf("backend returned no prompts")
		}
		return &Result{ContentType: ct, Prompts: payload.Prompts}, nil
	}

	var payload struct {
		Posts []Posts `json:"posts"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse posts response: %w", err)
	}
	if len(payload.Posts) == 0 {
		return nil, fmt.Errorf("backend returned no posts")
	}
	return &Result{ContentType: ct, Posts: payload.Posts}, nil
}

// TranslateToEnglish implements Client.
func (c *GeminiClient) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.flashModel,
		genai.Text(translateInstruction(text)),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.1),
		})
	if err != nil {
		c.logger.Warn("translation call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", ErrTranslationFailed
	}
	return translated, nil
}

// DescribeImage implements Client.
func (c *GeminiClient) DescribeImage(ctx context.Context, data []byte, mimeType string, lang i18n.Language) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(describeInstruction(lang)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.flashModel, contents,
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.2),
		})
	if err != nil {
		return "", fmt.Errorf("image description call failed: %w", err)
	}

	description := strings.TrimSpace(resp.Text())
	if description == "" {
		return "", ErrSafetyBlocked
	}
	return description, nil
}

// Close releases the underlying client. The genai SDK client holds no
// resources that need explicit release, so this is a no-op.
func (c *GeminiClient) Close() error {
	return nil
}
