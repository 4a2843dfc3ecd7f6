package dragon

import "testing"

func TestNormalizeStripsAccentsAndPunctuation(t *testing.T) {
	got := Normalize("  Réveille-toi, Dragon !  ")
	want := " reveille-toi dragon "
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n", "?!…"} {
		got := Normalize(in)
		if got != " " {
			t.Errorf("Normalize(%q) = %q, want a single space", in, got)
		}
	}
}

func TestClassifyWholeWordsOnly(t *testing.T) {
	lex := LexiconFor("en")
	// "hithere" must not match "hi"; "hi" as its own token must.
	if res := Classify("hithere dragon", lex); res.Score != 0 {
		t.Errorf("partial word matched: score = %d, want 0", res.Score)
	}
	if res := Classify("hi there dragon", lex); res.Score != 1 {
		t.Errorf("whole word missed: score = %d, want 1", res.Score)
	}
}

func TestClassifySentimentIsMembershipNotFrequency(t *testing.T) {
	lex := LexiconFor("fr")
	res := Classify("merci merci merci", lex)
	if res.Score != 1 {
		t.Errorf("repeated word stacked: score = %d, want 1", res.Score)
	}
}

func TestClassifyMixedSentiment(t *testing.T) {
	lex := LexiconFor("en")
	res := Classify("hello you evil thing", lex)
	if res.Score != 0 {
		t.Errorf("score = %d, want 0 (+1 hello, -1 evil)", res.Score)
	}
}

func TestClassifyIntentPriorityOrder(t *testing.T) {
	lex := LexiconFor("fr")
	// Both sleep and feed keywords present; sleep is declared first.
	res := Classify("dors puis mange", lex)
	if res.Intent != IntentSleep {
		t.Errorf("intent = %q, want %q", res.Intent, IntentSleep)
	}
}

func TestClassifyDefaultsToTalk(t *testing.T) {
	lex := LexiconFor("en")
	res := Classify("xyzzy blorp", lex)
	if res.Intent != IntentTalk {
		t.Errorf("intent = %q, want %q", res.Intent, IntentTalk)
	}
	if res.HatchHinted {
		t.Error("unexpected hatch hint")
	}
	if res.ProposedName != "" {
		t.Errorf("unexpected proposed name %q", res.ProposedName)
	}
}

func TestClassifyHatchHintIndependentOfIntent(t *testing.T) {
	lex := LexiconFor("en")
	res := Classify("wake up and eat", lex)
	if !res.HatchHinted {
		t.Error("expected hatch hint from 'wake'")
	}
	if res.Intent != IntentFeed {
		t.Errorf("intent = %q, want %q", res.Intent, IntentFeed)
	}
}

func TestClassifyProposedName(t *testing.T) {
	tests := []struct {
		lang, text, want string
	}{
		{"en", "I call you Spark", "Spark"},
		{"en", "your name is Ember", "Ember"},
		{"fr", "Je t'appelle Lumi", "Lumi"},
		{"fr", "ton nom est Draco", "Draco"},
		{"en", "I call you X", ""}, // one letter is too short
		{"en", "nice to meet you", ""},
	}
	for _, tt := range tests {
		res := Classify(tt.text, LexiconFor(tt.lang))
		if res.ProposedName != tt.want {
			t.Errorf("Classify(%q) name = %q, want %q", tt.text, res.ProposedName, tt.want)
		}
	}
}

func TestElementFromTextSticky(t *testing.T) {
	lex := LexiconFor("en")
	if got := ElementFromText("you are a fire dragon", ElementWind, lex); got != ElementFire {
		t.Errorf("element = %q, want %q", got, ElementFire)
	}
	// No element named: keep the current one.
	if got := ElementFromText("hello friend", ElementFire, lex); got != ElementFire {
		t.Errorf("element = %q, want %q (sticky)", got, ElementFire)
	}
}

func TestElementFromTextFrench(t *testing.T) {
	lex := LexiconFor("fr")
	if got := ElementFromText("un dragon de lumière", ElementWind, lex); got != ElementLight {
		t.Errorf("element = %q, want %q", got, ElementLight)
	}
}
