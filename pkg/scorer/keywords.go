package score

// Term tables for the keyword sub-score. Matching is plain case-insensitive
// substring containment, so overlapping phrases stack: "certified organic"
// also triggers "organic". That is the intended bag-of-words behavior, kept
// simple and auditable rather than weighted by frequency.

// keywordTerm binds a phrase to its score delta.
type keywordTerm struct {
	phrase string
	delta  float64
}

const (
	positiveDelta  = 10
	certifiedDelta = 15 // certification-class terms carry more signal
	negativeDelta  = -15
	toxicDelta     = -20 // toxicity-class terms penalized hardest
)

var positiveTerms = []keywordTerm{
	{"organic", positiveDelta},
	{"certified organic", certifiedDelta},
	{"gots", certifiedDelta},
	{"recycled", positiveDelta},
	{"sustainable", positiveDelta},
	{"eco-friendly", positiveDelta},
	{"eco friendly", positiveDelta},
	{"biodegradable", positiveDelta},
	{"compostable", positiveDelta},
	{"fair trade", positiveDelta},
	{"energy efficient", positiveDelta},
	{"renewable", positiveDelta},
	{"low impact", positiveDelta},
	{"vegan", positiveDelta},
	{"cruelty free", positiveDelta},
	{"zero waste", positiveDelta},
	{"carbon neutral", positiveDelta},
	{"plant-based", positiveDelta},
	{"upcycled", positiveDelta},
	{"refurbished", positiveDelta},
	{"fsc", certifiedDelta},
	{"organic cotton", positiveDelta},
	{"hemp", positiveDelta},
	{"bamboo", positiveDelta},
	{"eco", positiveDelta},
	{"green", positiveDelta},
	{"natural", positiveDelta},
	{"non-toxic", positiveDelta},
	{"water saving", positiveDelta},
	{"energy saving", positiveDelta},
	{"reusable", positiveDelta},
	{"durable", positiveDelta},
	{"recyclable", positiveDelta},
	{"recycled content", positiveDelta},
	{"cradle to cradle", positiveDelta},
	{"closed loop", positiveDelta},
	{"sustainably sourced", positiveDelta},
	{"ethically sourced", positiveDelta},
	{"locally made", positiveDelta},
	{"sustainable materials", positiveDelta},
	{"environmentally friendly", positiveDelta},
	{"sustainable packaging", positiveDelta},
	{"plastic free", positiveDelta},
	{"minimal packaging", positiveDelta},
	{"compostable packaging", positiveDelta},
	{"recycled packaging", positiveDelta},
	{"low carbon", positiveDelta},
	{"carbon negative", positiveDelta},
	{"climate positive", positiveDelta},
}

var negativeTerms = []keywordTerm{
	{"polyester", negativeDelta},
	{"pesticide", negativeDelta},
	{"synthetic", negativeDelta},
	{"chemical", negativeDelta},
	{"toxic", toxicDelta},
	{"harmful", negativeDelta},
	{"petroleum", negativeDelta},
	{"pvc", negativeDelta},
	{"phthalate", toxicDelta},
	{"bpa", toxicDelta},
	{"lead", negativeDelta},
	{"cadmium", negativeDelta},
	{"mercury", negativeDelta},
	{"heavy metal", negativeDelta},
	{"unsustainable", negativeDelta},
	{"high carbon", negativeDelta},
	{"high energy", negativeDelta},
	{"wasteful", negativeDelta},
	{"disposable", negativeDelta},
	{"single use", negativeDelta},
	{"fast fashion", negativeDelta},
	{"excessive packaging", negativeDelta},
	{"plastic packaging", negativeDelta},
	{"non-recyclable", negativeDelta},
	{"virgin plastic", negativeDelta},
	{"deforestation", negativeDelta},
	{"overexploited", negativeDelta},
	{"sweatshop", negativeDelta},
	{"low quality", negativeDelta},
	{"short lifespan", negativeDelta},
	{"planned obsolescence", negativeDelta},
	{"hard to repair", negativeDelta},
	{"toxic chemicals", negativeDelta},
	{"hazardous", negativeDelta},
	{"polluting", negativeDelta},
	{"high water usage", negativeDelta},
	{"water intensive", negativeDelta},
	{"energy intensive", negativeDelta},
	{"carbon intensive", negativeDelta},
	{"fossil fuel", negativeDelta},
	{"non-renewable", negativeDelta},
	{"high emission", negativeDelta},
	{"high footprint", negativeDelta},
	{"landfill", negativeDelta},
	{"incineration", negativeDelta},
	{"imported", negativeDelta},
	{"long distance transport", negativeDelta},
	{"air freighted", negativeDelta},
}
