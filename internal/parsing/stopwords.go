package parsing

// stopwords is the fixed English stopword list used by keyword extraction.
// Tokens of length <= 2 are filtered separately, so two-letter function
// words are omitted here.
var stopwords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"ain": true, "all": true, "and": true, "any": true, "are": true,
	"aren": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "can": true,
	"couldn": true, "did": true, "didn": true, "does": true, "doesn": true,
	"doing": true, "don": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "had": true,
	"hadn": true, "has": true, "hasn": true, "have": true, "haven": true,
	"having": true, "her": true, "here": true, "hers": true, "herself": true,
	"him": true, "himself": true, "his": true, "how": true, "into": true,
	"isn": true, "its": true, "itself": true, "just": true, "more": true,
	"most": true, "mustn": true, "myself": true, "needn": true, "nor": true,
	"not": true, "now": true, "off": true, "once": true, "only": true,
	"other": true, "our": true, "ours": true, "ourselves": true, "out": true,
	"over": true, "own": true, "same": true, "shan": true, "she": true,
	"should": true, "shouldn": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "theirs": true, "them": true,
	"themselves": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "too": true, "under": true,
	"until": true, "very": true, "was": true, "wasn": true, "were": true,
	"weren": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true,
	"with": true, "won": true, "wouldn": true, "you": true, "your": true,
	"yours": true, "yourself": true, "yourselves": true,
}

// IsStopword reports whether the token is on the stopword list.
func IsStopword(token string) bool {
	return stopwords[token]
}
