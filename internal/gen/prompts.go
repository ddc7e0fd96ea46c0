package gen

import (
	"fmt"

	"promptstudio/internal/catalog"
	"promptstudio/internal/i18n"
)

// candidateCount is how many outputs one generation call asks for.
const candidateCount = 3

// imagePromptInstruction builds the instruction for image-prompt generation.
// The structure (characters, camera, lighting, textures, expression, action)
// is what downstream image generators respond best to.
func imagePromptInstruction(persona catalog.Persona, theme string) string {
	return fmt.Sprintf(`As a creative director for a fashion and art magazine, generate %d distinct, hyper-detailed image prompts in ENGLISH featuring %s. The theme is: %q. The theme might describe a solo scene OR a scene with other characters; if other people are mentioned, include them and describe their dynamic with %s, who remains the central subject.

Persona description:
%s

Each prompt is for a photorealistic AI image generator and must read like the brief for a single striking photograph. Each prompt MUST specify:
1. Character(s): %s as described above, plus any characters the theme introduces.
2. Camera angle: specific and deliberate (extreme close-up, low-angle, point-of-view...).
3. Lighting: described vividly to set a mood.
4. Textures: the tactile details that sell the image.
5. Facial expression: precise and evocative.
6. Action: one clear, story-telling action.

The response must be a JSON object with a 'prompts' key containing an array of %d unique, paragraph-length string prompts in ENGLISH.`,
		candidateCount, persona.Name, theme, persona.Name, persona.Description, persona.Name, candidateCount)
}

// postTextInstruction builds the instruction for multi-platform post texts.
func postTextInstruction(persona catalog.Persona, theme string) string {
	return fmt.Sprintf(`Based on the persona description and the theme, generate %d unique sets of social media posts.

Persona:
%s

Theme:
%q

For each of the %d sets, write one post per platform:
- Exclusive-platform post: longer and more personal, written for subscribers who expect a closer connection; in the persona's own voice.
- Instagram post: visual-first and teasing, policy-safe, using the persona's tone and a few fitting emojis; it should pull readers toward the exclusive platform without naming prices.
- Twitter/X post: short, punchy, and bold, with relevant hashtags.

The response must be a JSON object with a 'posts' key containing an array of %d objects, each with 'exclusive', 'instagram' and 'twitter' string values.`,
		candidateCount, persona.Description, theme, candidateCount, candidateCount)
}

// translateInstruction wraps text for the translation call.
func translateInstruction(text string) string {
	return fmt.Sprintf("Translate the following text to English. Return only the translated text, with no additional commentary or explanations. Text: %q", text)
}

// describeInstruction returns the image-description prompt in the viewer's
// language so the description can seed the main action as-is.
func describeInstruction(lang i18n.Language) string {
	if lang == i18n.Spanish {
		return "Describe esta imagen con extremo detalle, enfocándote en elementos útiles para recrearla con un generador de imágenes IA. Describe los personajes, su ropa, el entorno, la iluminación, el ángulo de la cámara y el estilo general. La descripción debe ser un único párrafo coherente y muy descriptivo."
	}
	return "Describe this image in extreme detail, focusing on elements useful for recreating it with an AI image generator. Describe the characters, their clothing, the environment, the lighting, the camera angle, and the overall style. The description should be a single, cohesive, and very descriptive paragraph."
}
