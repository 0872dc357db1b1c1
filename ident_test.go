package agraph_test

import (
	"strings"
	"testing"

	. "github.com/veloper/agraph"
)

func TestGenerateIdentWordCount(t *testing.T) {
	for words := 1; words <= 10; words++ {
		ident := GenerateIdent(words, "_")
		got := len(strings.Split(ident, "_"))
		if got != words {
			t.Errorf("GenerateIdent(%d, _) = %q, has %d words, want %d", words, ident, got, words)
		}
	}
}

func TestGenerateIdentClampsWordCount(t *testing.T) {
	if got := len(strings.Split(GenerateIdent(0, "_"), "_")); got != 1 {
		t.Errorf("GenerateIdent(0) produced %d words, want 1", got)
	}
	if got := len(strings.Split(GenerateIdent(99, "_"), "_")); got != 10 {
		t.Errorf("GenerateIdent(99) produced %d words, want 10 (clamped)", got)
	}
}

func TestGenerateIdentUsesDelimiter(t *testing.T) {
	ident := GenerateIdent(3, "-")
	if strings.Count(ident, "-") != 2 {
		t.Errorf("GenerateIdent(3, -) = %q, want two hyphens", ident)
	}
}
