// Package i18n holds the bilingual message table for user-facing strings.
// The studio ships with Spanish and English; option text carries its own
// per-language values (see catalog.Option), this package only covers UI
// messages and category labels.
package i18n

// Language is a supported display language code.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"

	// Fallback is the language used when a message or option has no value
	// for the requested language. The localization data was authored
	// Spanish-first, so Spanish is the complete set.
	Fallback Language = Spanish
)

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	return l == Spanish || l == English
}

var messages = map[Language]map[string]string{
	Spanish: {
		"headerTitle":        "Estudio de Contenido",
		"generateRandomIdea": "Generar Idea Aleatoria",
		"resetSelections":    "Resetear Selecciones",
		"viewMoreOptions":    "Ver más opciones...",
		"loadMoreIdeas":      "Cargar más ideas...",
		"describingImage":    "Describiendo...",
		"generatingButton":   "Generando Contenido...",
		"historyTitle":       "Historial de Generaciones",

		"safetyError":      "El contenido generado fue bloqueado por filtros de seguridad. Por favor, ajusta el prompt e inténtalo de nuevo.",
		"apiError":         "Error al generar el contenido. El modelo puede no estar disponible o la solicitud fue bloqueada.",
		"translationError": "Error al traducir el prompt. Por favor, inténtalo de nuevo o escribe el prompt en inglés.",

		"hairStyle":     "Estilo de Pelo",
		"outfit":        "Atuendo",
		"accessories":   "Accesorios",
		"location":      "Escenario",
		"action":        "Acción / Pose",
		"mood":          "Emoción Facial",
		"lighting":      "Iluminación",
		"cameraAngle":   "Ángulo de Cámara",
		"style":         "Estilo Artístico",
		"palette":       "Paleta de Color",
		"extraPeople":   "Personas Adicionales",
		"imagePrompts":  "Prompts de Imagen",
		"postTexts":     "Textos para Publicación",
	},
	English: {
		"headerTitle":        "Content Studio",
		"generateRandomIdea": "Generate Random Idea",
		"resetSelections":    "Reset Selections",
		"viewMoreOptions":    "View more options...",
		"loadMoreIdeas":      "Load more ideas...",
		"describingImage":    "Describing...",
		"generatingButton":   "Generating Content...",
		"historyTitle":       "Generation History",

		"safetyError":      "The generated content was blocked by safety filters. Please adjust the prompt and try again.",
		"apiError":         "Error generating content. The model may be unavailable or the request was blocked.",
		"translationError": "Failed to translate the prompt. Please try again or write the prompt in English.",

		"hairStyle":     "Hair Style",
		"outfit":        "Outfit",
		"accessories":   "Accessories",
		"location":      "Location",
		"action":        "Action / Pose",
		"mood":          "Facial Emotion",
		"lighting":      "Lighting",
		"cameraAngle":   "Camera Angle",
		"style":         "Artistic Style",
		"palette":       "Color Palette",
		"extraPeople":   "Extra People",
		"imagePrompts":  "Image Prompts",
		"postTexts":     "Post Texts",
	},
}

// T resolves a message key for the requested language. Resolution order is
// deterministic: requested language, then Fallback, then the key itself so a
// missing entry is visible instead of silently blank.
func T(lang Language, key string) string {
	if m, ok := messages[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := messages[Fallback][key]; ok {
		return v
	}
	return key
}
