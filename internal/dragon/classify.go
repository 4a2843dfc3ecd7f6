package dragon

// IntentResult is what the classifier extracts from one utterance.
type IntentResult struct {
	// Score is +1 per positive lexicon word present, -1 per negative
	// word present. Membership, not frequency: repeats don't stack.
	Score        int
	Intent       Intent
	HatchHinted  bool
	ProposedName string
}

// Classify maps raw text to a sentiment score, an intent tag, a hatch
// hint, and an optional proposed name. Absence of any match is not an
// error; the defaults are talk / no hint / no name.
func Classify(text string, lex Lexicon) IntentResult {
	t := Normalize(text)

	res := IntentResult{Intent: IntentTalk}
	for _, w := range lex.Positive {
		if containsWord(t, w) {
			res.Score++
		}
	}
	for _, w := range lex.Negative {
		if containsWord(t, w) {
			res.Score--
		}
	}

	// First intent category with any keyword hit wins; the table order
	// is the priority order.
	for _, entry := range lex.Intents {
		if containsAny(t, entry.Words) {
			res.Intent = entry.Tag
			break
		}
	}

	res.HatchHinted = containsAny(t, lex.HatchHints)

	// The naming pattern runs on the raw text so the captured name keeps
	// its casing.
	if m := lex.namePat.FindStringSubmatch(text); m != nil {
		res.ProposedName = m[1]
	}

	return res
}

// ElementFromText scans for element keywords and returns the matched
// element, or current if none is named. Element affinity is sticky.
func ElementFromText(text string, current Element, lex Lexicon) Element {
	t := Normalize(text)
	for _, entry := range lex.Elements {
		if containsAny(t, entry.Words) {
			return entry.Element
		}
	}
	return current
}
