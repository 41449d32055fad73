package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "senior engineer", Normalize("Senior ENGINEER"))
}

func TestNormalize_StripsSpecialCharacters(t *testing.T) {
	// Hyphens and periods survive; other punctuation becomes a space.
	assert.Equal(t, "c node.js front-end", Normalize("C++, Node.js & front-end!"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "python java go", Normalize("  python \t java\n\n go  "))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalize_OnlyPunctuation(t *testing.T) {
	assert.Equal(t, "", Normalize("!!! ??? @@@"))
}

func TestNormalize_KeepsUnicodeLetters(t *testing.T) {
	// Accented letters are word characters, not noise.
	assert.Equal(t, "résumé café engineer", Normalize("Résumé Café engineer"))
	assert.Equal(t, "señor müller josé", Normalize("Señor, Müller & José!"))
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "Señor Engineer (5+ years) — Python/Go"
	assert.Equal(t, "señor engineer 5 years python go", Normalize(input))
	assert.Equal(t, Normalize(input), Normalize(input))
}
