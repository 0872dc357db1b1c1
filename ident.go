package agraph

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// identAdjectiveCategories lists word choices for each slot of canonical
// English adjective order (quantity, quality, size, age, shape, color,
// origin, material, purpose), nearest-to-the-noun last. GenerateIdent walks
// them in reverse so the adjectives closest to the noun are chosen first,
// matching the order an English speaker would actually compose them in.
var identAdjectiveCategories = [][]string{
	{"one", "two", "three", "several", "few", "many", "dozen"},
	{"lovely", "strange", "curious", "elegant", "humble", "noble", "gallant"},
	{"tiny", "small", "modest", "grand", "vast", "towering", "compact"},
	{"ancient", "old", "vintage", "new", "young", "timeworn", "fresh"},
	{"round", "square", "angular", "oval", "slender", "jagged", "coiled"},
	{"amber", "violet", "crimson", "jade", "ivory", "slate", "golden"},
	{"northern", "coastal", "desert", "alpine", "island", "forest", "royal"},
	{"oaken", "silken", "iron", "marble", "woolen", "glass", "bronze"},
	{"traveling", "hunting", "ceremonial", "working", "resting", "hidden", "wandering"},
}

var identNouns = []string{
	"falcon", "harbor", "lantern", "orchard", "castle", "river", "ember",
	"meadow", "compass", "thicket", "anchor", "summit", "hollow", "beacon",
	"ferry", "quarry", "bramble", "kestrel", "archway", "cistern",
}

// GenerateIdent returns a delimiter-joined phrase made of a random noun
// preceded by up to words-1 adjectives drawn from canonical English
// adjective-order categories, nearest-to-the-noun category first. It is
// meant as a convenient default ident for callers that do not already have
// a natural external identity to use.
//
// words must be at least 1; values above 10 are clamped, since there are
// only nine adjective categories plus the noun itself.
func GenerateIdent(words int, delimiter string) string {
	if words < 1 {
		words = 1
	}
	if words > len(identAdjectiveCategories)+1 {
		words = len(identAdjectiveCategories) + 1
	}

	parts := make([]string, 0, words)
	parts = append(parts, pickWord(identNouns))

	adjectiveCount := words - 1
	for i := 0; i < adjectiveCount; i++ {
		category := identAdjectiveCategories[len(identAdjectiveCategories)-1-i]
		parts = append([]string{pickWord(category)}, parts...)
	}

	return strings.Join(parts, delimiter)
}

func pickWord(words []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return words[0]
	}
	return words[n.Int64()]
}
