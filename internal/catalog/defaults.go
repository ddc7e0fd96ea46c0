package catalog

// Built-in personas and their prompt catalogs. The pools are seed data; real
// deployments extend them via LoadFile overrides.

const (
	// PersonaAria is the solo portrait muse account.
	PersonaAria PersonaID = "Aria"
	// PersonaNova is the group/editorial collective account.
	PersonaNova PersonaID = "NovaCollective"
)

// Personas returns the built-in persona roster in display order.
func Personas() []Persona {
	return []Persona{ariaPersona, novaPersona}
}

// PersonaByID looks up a built-in persona.
func PersonaByID(id PersonaID) (Persona, bool) {
	for _, p := range Personas() {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// ForPersona returns the catalog configured for the given persona. Unknown
// personas fall back to the Aria catalog, matching the default account.
func ForPersona(id PersonaID) *Catalog {
	if id == PersonaNova {
		return &novaCatalog
	}
	return &ariaCatalog
}

var ariaPersona = Persona{
	ID:          PersonaAria,
	Name:        "Aria",
	Tagline:     "Portrait muse",
	Description: "Aria is a solo editorial model with a painterly, cinematic aesthetic. Her feed mixes moody portraiture with bold fashion statements; captions are confident, a little wry, and always in her own voice.",
	Instagram:   "@aria.frames",
	Twitter:     "@ariaframes",
	Color:       "#EC4899",
}

var novaPersona = Persona{
	ID:          PersonaNova,
	Name:        "Nova Collective",
	Tagline:     "Editorial group",
	Description: "Nova Collective is a group of five stylists and performers shooting avant-garde editorial sets. Their content is theatrical and high-energy, built around group composition and staging.",
	Instagram:   "@nova.collective",
	Twitter:     "@novacollective",
	Color:       "#6366F1",
}

var ariaCatalog = Catalog{
	Persona: ariaPersona,
	Categories: []Category{
		{
			ID:             "hairStyle",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("pelo suelto y ondulado", "loose wavy hair"),
				NewOption("trenza despeinada", "messy braid"),
				NewOption("moño alto elegante", "elegant high bun"),
				NewOption("pelo mojado peinado hacia atrás", "wet slicked-back hair"),
				NewOption("melena con flequillo recto", "blunt bangs"),
				NewOption("rizos voluminosos", "voluminous curls"),
				NewOption("coleta baja de seda", "sleek low ponytail"),
				NewOption("ondas estilo años veinte", "finger waves"),
				NewOption("media melena al viento", "windblown bob"),
				NewOption("recogido con mechones sueltos", "loose updo with face-framing strands"),
			},
		},
		{
			ID:             "outfit",
			DefaultVisible: 8,
			Options: []Option{
				NewOption("vestido de seda esmeralda", "emerald silk gown"),
				NewOption("traje de chaqueta oversize", "oversized tailored suit"),
				NewOption("gabardina vintage", "vintage trench coat"),
				NewOption("vestido de lentejuelas doradas", "gold sequin dress"),
				NewOption("jersey de punto grueso", "chunky knit sweater"),
				NewOption("camisa blanca entreabierta", "crisp white shirt"),
				NewOption("top de encaje negro", "black lace top"),
				NewOption("mono de cuero ajustado", "fitted leather jumpsuit"),
				NewOption("kimono de flores", "floral kimono"),
				NewOption("vestido rojo de gala", "red evening gown"),
				NewOption("chaqueta vaquera desgastada", "worn denim jacket"),
				NewOption("body de terciopelo", "velvet bodysuit"),
			},
		},
		{
			ID:             "accessories",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("pendientes de aro dorados", "gold hoop earrings"),
				NewOption("gargantilla de perlas", "pearl choker"),
				NewOption("gafas de sol retro", "retro sunglasses"),
				NewOption("sombrero de ala ancha", "wide-brim hat"),
				NewOption("guantes de ópera", "opera gloves"),
				NewOption("pañuelo de seda al cuello", "silk neck scarf"),
				NewOption("anillos apilados", "stacked rings"),
				NewOption("velo de rejilla", "birdcage veil"),
			},
		},
		{
			ID:             "location",
			DefaultVisible: 8,
			Options: []Option{
				NewOption("azotea al atardecer", "rooftop at sunset"),
				NewOption("invernadero abandonado", "abandoned greenhouse"),
				NewOption("callejón con neones", "neon-lit alley"),
				NewOption("biblioteca antigua", "old library"),
				NewOption("playa en invierno", "winter beach"),
				NewOption("habitación de hotel art déco", "art deco hotel room"),
				NewOption("escalera de mármol", "marble staircase"),
				NewOption("campo de lavanda", "lavender field"),
				NewOption("estación de tren vacía", "empty train station"),
				NewOption("piscina cubierta de vapor", "steamy indoor pool"),
				NewOption("museo después del cierre", "museum after hours"),
				NewOption("mercado nocturno", "night market"),
			},
		},
		{
			ID:             "action",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("mirando por encima del hombro", "glancing over her shoulder"),
				NewOption("caminando hacia la cámara", "walking toward the camera"),
				NewOption("apoyada contra la ventana", "leaning against a window"),
				NewOption("girando con la falda en movimiento", "spinning with her skirt in motion"),
				NewOption("sentada en el borde de la cama", "sitting on the edge of the bed"),
				NewOption("ajustándose un pendiente", "adjusting an earring"),
				NewOption("riendo con la cabeza echada atrás", "laughing with her head thrown back"),
				NewOption("sosteniendo una copa de vino", "holding a glass of wine"),
			},
		},
		{
			ID:             "mood",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("sonrisa cómplice", "knowing smirk"),
				NewOption("mirada melancólica", "melancholy gaze"),
				NewOption("expresión desafiante", "defiant expression"),
				NewOption("ojos cerrados, serena", "eyes closed, serene"),
				NewOption("labios entreabiertos", "parted lips"),
				NewOption("ceja arqueada con ironía", "wry raised eyebrow"),
				NewOption("mirada perdida y soñadora", "distant dreamy look"),
			},
		},
		{
			ID:             "lighting",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("hora dorada", "golden hour"),
				NewOption("claroscuro dramático", "dramatic chiaroscuro"),
				NewOption("neón rosa y azul", "pink and blue neon"),
				NewOption("luz de velas", "candlelight"),
				NewOption("contraluz con siluetas", "backlit silhouette"),
				NewOption("luz dura de mediodía", "harsh midday light"),
				NewOption("luz de luna fría", "cold moonlight"),
				NewOption("destello de flash directo", "direct flash"),
				NewOption("luz filtrada por cortinas", "light filtered through curtains"),
			},
		},
		{
			ID:             "cameraAngle",
			SingleSelect:   true,
			DefaultVisible: 5,
			Options: []Option{
				NewOption("primer plano extremo", "extreme close-up"),
				NewOption("plano contrapicado", "low-angle shot"),
				NewOption("vista cenital", "overhead shot"),
				NewOption("plano holandés", "dutch angle"),
				NewOption("plano medio a la altura de los ojos", "eye-level medium shot"),
				NewOption("plano general amplio", "wide establishing shot"),
				NewOption("cámara en mano cercana", "intimate handheld"),
			},
		},
		{
			ID:                "style",
			SingleSelect:      true,
			ExcludeFromRandom: true,
			DefaultVisible:    5,
			Options: []Option{
				NewOption("fotografía editorial de moda", "high-fashion editorial photography"),
				NewOption("cine analógico de 35mm", "35mm analog film"),
				NewOption("retrato renacentista", "renaissance portrait"),
				NewOption("realismo cinematográfico", "cinematic realism"),
				NewOption("polaroid descolorida", "faded polaroid"),
				NewOption("blanco y negro de alto contraste", "high-contrast black and white"),
			},
		},
		{
			ID:                "extraPeople",
			ExcludeFromRandom: true,
			DefaultVisible:    4,
			Options: []Option{
				NewOption("una segunda modelo reflejada en el espejo", "a second model reflected in the mirror"),
				NewOption("un bailarín de fondo desenfocado", "a blurred dancer in the background"),
				NewOption("una multitud anónima en movimiento", "an anonymous crowd in motion"),
				NewOption("un fotógrafo visible en el encuadre", "a photographer visible in frame"),
				NewOption("dos siluetas conversando al fondo", "two silhouettes talking in the background"),
			},
		},
	},
}

var novaCatalog = Catalog{
	Persona: novaPersona,
	Categories: []Category{
		{
			ID:             "outfit",
			DefaultVisible: 8,
			Options: []Option{
				NewOption("conjuntos metálicos a juego", "matching metallic outfits"),
				NewOption("vestuario de alta costura deconstruida", "deconstructed couture"),
				NewOption("monos de vinilo de colores", "colorful vinyl jumpsuits"),
				NewOption("trajes negros idénticos", "identical black suits"),
				NewOption("capas de tul superpuestas", "layered tulle capes"),
				NewOption("uniformes futuristas blancos", "futuristic white uniforms"),
				NewOption("mezcla de estampados vintage", "clashing vintage prints"),
				NewOption("armaduras escultóricas", "sculptural armor pieces"),
				NewOption("vestidos de gala rasgados", "torn ball gowns"),
				NewOption("ropa de calle oversize", "oversized streetwear"),
			},
		},
		{
			ID:             "location",
			DefaultVisible: 8,
			Options: []Option{
				NewOption("nave industrial abandonada", "abandoned industrial hall"),
				NewOption("discoteca con luces estroboscópicas", "strobe-lit nightclub"),
				NewOption("claro de bosque con niebla", "foggy forest clearing"),
				NewOption("aparcamiento subterráneo", "underground parking garage"),
				NewOption("teatro en ruinas", "ruined theater"),
				NewOption("azotea de rascacielos", "skyscraper rooftop"),
				NewOption("túnel de metro", "subway tunnel"),
				NewOption("salón de baile barroco", "baroque ballroom"),
				NewOption("desierto al amanecer", "desert at dawn"),
				NewOption("invernadero tropical", "tropical greenhouse"),
			},
		},
		{
			ID:             "action",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("formación triangular mirando a cámara", "triangular formation facing the camera"),
				NewOption("coreografía congelada en pleno salto", "choreography frozen mid-jump"),
				NewOption("caminando en línea hacia la cámara", "walking in line toward the camera"),
				NewOption("círculo alrededor de una silla vacía", "circle around an empty chair"),
				NewOption("apiladas en una escalera", "stacked on a staircase"),
				NewOption("espalda contra espalda", "back to back"),
				NewOption("una al frente, el resto desenfocadas", "one in focus, the rest blurred"),
			},
		},
		{
			ID:             "mood",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("miradas desafiantes al unísono", "defiant stares in unison"),
				NewOption("risas espontáneas", "spontaneous laughter"),
				NewOption("expresiones teatrales exageradas", "exaggerated theatrical expressions"),
				NewOption("solemnidad ritual", "ritual solemnity"),
				NewOption("energía caótica de fiesta", "chaotic party energy"),
				NewOption("calma inquietante", "unsettling calm"),
			},
		},
		{
			ID:             "lighting",
			DefaultVisible: 6,
			Options: []Option{
				NewOption("estroboscopio surrealista", "surreal strobe lights"),
				NewOption("luz fría industrial", "cold industrial light"),
				NewOption("luz de luna etérea", "ethereal moonlight"),
				NewOption("bengalas de humo de colores", "colored smoke flares"),
				NewOption("focos de escenario cruzados", "crossed stage spotlights"),
				NewOption("amanecer dorado y polvo en el aire", "golden dawn with dust in the air"),
				NewOption("proyecciones de vídeo sobre los cuerpos", "video projections on the bodies"),
			},
		},
		{
			ID:             "cameraAngle",
			SingleSelect:   true,
			DefaultVisible: 5,
			Options: []Option{
				NewOption("gran plano general", "wide establishing shot"),
				NewOption("contrapicado monumental", "monumental low angle"),
				NewOption("cámara en mano temblorosa", "shaky handheld"),
				NewOption("vista cenital del grupo", "overhead shot of the group"),
				NewOption("ojo de pez", "fisheye"),
				NewOption("plano secuencia lateral", "lateral tracking shot"),
			},
		},
		{
			ID:                "style",
			SingleSelect:      true,
			ExcludeFromRandom: true,
			DefaultVisible:    5,
			Options: []Option{
				NewOption("editorial de vanguardia", "avant-garde editorial"),
				NewOption("documental crudo", "raw documentary"),
				NewOption("surrealismo teatral", "theatrical surrealism"),
				NewOption("videoclip de los 90", "90s music video"),
				NewOption("fotografía de escena", "stage photography"),
			},
		},
		{
			ID:                "extraPeople",
			ExcludeFromRandom: true,
			DefaultVisible:    4,
			Options: []Option{
				NewOption("un público de siluetas", "an audience of silhouettes"),
				NewOption("un director gesticulando fuera de foco", "a director gesturing out of focus"),
				NewOption("técnicos con equipos de luz", "crew members with lighting rigs"),
				NewOption("un invitado de espaldas", "a guest facing away"),
			},
		},
	},
}

// IdeaPool is the shared inspiration pool for the idea strip; clicking an
// idea seeds the main action text.
var IdeaPool = []Option{
	NewOption("un retrato bajo la lluvia", "a portrait in the rain"),
	NewOption("la última noche del verano", "the last night of summer"),
	NewOption("un desayuno que se alarga hasta el mediodía", "a breakfast that stretches into noon"),
	NewOption("esperando un tren que no llega", "waiting for a train that never comes"),
	NewOption("una fiesta que termina al amanecer", "a party ending at dawn"),
	NewOption("el camerino antes del espectáculo", "the dressing room before the show"),
	NewOption("una llamada telefónica a medianoche", "a midnight phone call"),
	NewOption("el reflejo en el escaparate", "the reflection in a shop window"),
	NewOption("un picnic en un tejado", "a rooftop picnic"),
	NewOption("la primera nevada del año", "the first snowfall of the year"),
	NewOption("una carta que nunca se envió", "a letter never sent"),
	NewOption("bailando sin música", "dancing with no music"),
	NewOption("un brindis entre extraños", "a toast between strangers"),
	NewOption("perdida en un hotel enorme", "lost in an enormous hotel"),
	NewOption("el ensayo general", "the dress rehearsal"),
	NewOption("una tormenta vista desde la ventana", "a storm watched from the window"),
	NewOption("el jardín de noche", "the garden at night"),
	NewOption("un viaje en coche sin destino", "a road trip with no destination"),
	NewOption("la calma después del aplauso", "the quiet after the applause"),
	NewOption("un secreto contado al oído", "a secret whispered in an ear"),
	NewOption("las luces de la ciudad desde lejos", "city lights from far away"),
	NewOption("una película que nadie más ha visto", "a film nobody else has seen"),
	NewOption("el vestido equivocado para la ocasión", "the wrong dress for the occasion"),
	NewOption("un duelo de miradas", "a staring contest"),
}
