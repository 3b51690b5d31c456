package classifier

import (
	"regexp"
	"strings"
)

var wordRegex = regexp.MustCompile(`[a-zA-Z]+`)

// English stop words excluded from the feature space, matching the stop
// list the training corpus was prepared with
var stopWords = map[string]bool{
	"the": true, "be": true, "to": true, "of": true, "and": true,
	"a": true, "in": true, "that": true, "have": true, "i": true,
	"it": true, "for": true, "not": true, "on": true, "with": true,
	"he": true, "as": true, "you": true, "do": true, "at": true,
	"this": true, "but": true, "his": true, "by": true, "from": true,
	"they": true, "we": true, "say": true, "her": true, "she": true,
	"or": true, "an": true, "will": true, "my": true, "one": true,
	"all": true, "would": true, "there": true, "their": true, "what": true,
	"so": true, "up": true, "out": true, "if": true, "about": true,
	"who": true, "get": true, "which": true, "go": true, "me": true,
	"when": true, "make": true, "can": true, "like": true, "no": true,
	"just": true, "him": true, "know": true, "take": true, "into": true,
	"your": true, "some": true, "could": true, "them": true, "see": true,
	"other": true, "than": true, "then": true, "now": true, "only": true,
	"its": true, "over": true, "also": true, "after": true, "use": true,
	"two": true, "how": true, "our": true, "well": true, "way": true,
	"even": true, "new": true, "because": true, "any": true, "these": true,
	"most": true, "us": true, "is": true, "are": true, "was": true,
	"were": true, "been": true, "has": true, "had": true, "did": true,
	"re": true, "fw": true, "am": true, "pm": true,
}

// Tokenize lowercases the text and returns its non-stop-word letter tokens
func Tokenize(text string) []string {
	raw := wordRegex.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) < 2 || stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
