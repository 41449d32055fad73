package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducationLevel_Ranks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"high school", "Completed High School in 2010", 1},
		{"associate", "Associate degree in nursing", 2},
		{"bachelor", "Bachelor of Science in CS", 3},
		{"master", "Master of Engineering", 4},
		{"phd", "PhD in Computer Science", 5},
		{"doctorate", "Doctorate in Physics", 5},
		{"none", "Ten years of plumbing experience", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEducationLevel(tt.text))
		})
	}
}

func TestExtractEducationLevel_FirstVocabularyEntryWins(t *testing.T) {
	// The scan follows vocabulary order, not "highest level mentioned":
	// "master" precedes "phd" in the vocabulary, so it wins even though
	// phd outranks it.
	assert.Equal(t, 4, ExtractEducationLevel("PhD preferred, Master required"))
}

func TestExtractEducationLevel_SubstringMatch(t *testing.T) {
	// "bachelor's" contains "bachelor"; the scan is substring-based.
	assert.Equal(t, 3, ExtractEducationLevel("Bachelor's degree required"))
}
