package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// minKeywordLength is the minimum token length (exclusive) for a keyword.
const minKeywordLength = 2

// lemmatizer reduces tokens to their dictionary base form. Loaded once at
// startup; the underlying dictionary is read-only, so concurrent lookups
// are safe. Nil if the dictionary failed to load, in which case tokens
// pass through unchanged.
var lemmatizer *golem.Lemmatizer

func init() {
	l, err := golem.New(en.New())
	if err != nil {
		return
	}
	lemmatizer = l
}

// Lemma returns the dictionary base form of a token ("running" -> "run",
// "engineers" -> "engineer"). Unknown tokens are returned unchanged.
func Lemma(token string) string {
	if lemmatizer == nil {
		return token
	}
	return lemmatizer.Lemma(token)
}

// ExtractKeywords tokenizes normalized text into lemmatized content words.
// Tokens are emitted in first-seen order; duplicates are retained here and
// collapsed by set-based callers. Stopwords and tokens of length <= 2 are
// dropped.
func ExtractKeywords(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	tokens := strings.Fields(normalized)
	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if IsStopword(token) || utf8.RuneCountInString(token) <= minKeywordLength {
			continue
		}
		keywords = append(keywords, Lemma(token))
	}

	return keywords
}

// KeywordSet collapses the keyword sequence of a document into a set.
func KeywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, kw := range ExtractKeywords(text) {
		set[kw] = true
	}
	return set
}
