package lexicon

// Elemental phase names in priority order.
const (
	PhaseFire   = "Fire"
	PhaseEarth  = "Earth"
	PhaseAir    = "Air"
	PhaseWater  = "Water"
	PhaseAether = "Aether"
)

var defaultPhases = MustNew(
	NewCategory(PhaseFire,
		"excited", "passionate", "angry", "motivated", "driven", "fierce",
		"burning", "intense", "creative", "inspired", "ambitious", "dynamic",
		"energized", "spontaneous", "bold", "courageous", "initiate", "new"),
	NewCategory(PhaseEarth,
		"grounded", "stable", "practical", "physical", "routine", "structured",
		"material", "tangible", "secure", "comfortable", "steady", "consistent",
		"reliable", "patient", "enduring", "solid", "foundation", "manifest"),
	NewCategory(PhaseAir,
		"thinking", "ideas", "thoughts", "mental", "communication", "clarity",
		"perspective", "understanding", "analyzing", "curious", "questioning",
		"learning", "exploring", "connecting", "sharing", "expressing", "light"),
	NewCategory(PhaseWater,
		"feeling", "emotional", "intuitive", "flowing", "sensitive", "deep",
		"tears", "vulnerable", "receptive", "nurturing", "healing", "fluid",
		"changeable", "mysterious", "psychic", "dreamy", "subconscious", "shadow"),
	NewCategory(PhaseAether,
		"spiritual", "transcendent", "unified", "cosmic", "divine", "eternal",
		"infinite", "consciousness", "awakening", "enlightenment", "mystical",
		"universal", "oneness", "sacred", "luminous", "essence", "source"),
)

var defaultTones = MustNew(
	NewCategory("exploration", "curious", "wondering", "questioning", "searching", "seeking"),
	NewCategory("transformation", "changing", "shifting", "evolving", "becoming", "transforming"),
	NewCategory("integration", "balancing", "harmonizing", "integrating", "synthesizing", "unifying"),
	NewCategory("challenge", "struggling", "difficult", "hard", "challenging", "obstacle"),
	NewCategory("breakthrough", "realized", "discovered", "understood", "breakthrough", "clarity"),
	NewCategory("shadow_work", "shadow", "dark", "hidden", "unconscious", "repressed", "denied"),
)

var defaultStopWords = NewWordSet(
	"the", "is", "at", "which", "on", "a", "an", "and", "or", "but", "in",
	"with", "to", "for", "of", "as", "by", "that", "this", "it", "from",
	"be", "are", "was", "were", "been",
)

// Default returns the built-in elemental phase, tone and stop-word lexicons.
func Default() Lexicons {
	return Lexicons{
		Phases:    defaultPhases,
		Tones:     defaultTones,
		StopWords: defaultStopWords,
	}
}
