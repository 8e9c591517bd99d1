package analyzer

import (
	"strings"
	"testing"
)

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("expected empty output for empty input, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello,   World!",
		"  ปวดท้อง\t\nมาก  ",
		"a@b#c$d",
		"mixed ไทย and English 123",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("a \t\n b   @   c")
	if strings.Contains(got, "  ") {
		t.Errorf("output contains whitespace run longer than one space: %q", got)
	}
	if got != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", got)
	}
}

func TestNormalize_StripsToSpace(t *testing.T) {
	// Stripped characters become spaces, so tokens never collide.
	if got := Normalize("foo@bar"); got != "foo bar" {
		t.Errorf("expected %q, got %q", "foo bar", got)
	}
}

func TestNormalize_KeepsThaiAndPunctuation(t *testing.T) {
	in := "กระเพาะปัสสาวะอักเสบ, รักษาได้!"
	got := Normalize(in)
	if got != "กระเพาะปัสสาวะอักเสบ, รักษาได้!" {
		t.Errorf("Thai text or allowed punctuation lost: %q", got)
	}
}

func TestNormalize_Lowercases(t *testing.T) {
	if got := Normalize("HeLLo WORLD"); got != "hello world" {
		t.Errorf("expected lowercase output, got %q", got)
	}
}

func TestTokenize_WordRuns(t *testing.T) {
	tokens := Tokenize("hello world x 42")
	want := []string{"hello", "world", "42"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestTokenize_ThaiGrams(t *testing.T) {
	tokens := Tokenize("รักษา")
	// 5 runes -> 3 overlapping trigrams
	if len(tokens) != 3 {
		t.Fatalf("expected 3 trigrams, got %d: %v", len(tokens), tokens)
	}
	for _, tok := range tokens {
		if len([]rune(tok)) != 3 {
			t.Errorf("expected 3-rune gram, got %q", tok)
		}
	}
}

func TestTokenize_ThaiQueryOverlapsTitle(t *testing.T) {
	query := Tokenize("กระเพาะปัสสาวะอักเสบรักษาอย่างไร")
	title := Tokenize("กระเพาะปัสสาวะอักเสบ")

	set := make(map[string]struct{}, len(query))
	for _, tok := range query {
		set[tok] = struct{}{}
	}
	overlap := 0
	for _, tok := range title {
		if _, ok := set[tok]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		t.Error("expected Thai query grams to overlap document title grams")
	}
}

func TestTokenize_MixedScripts(t *testing.T) {
	tokens := Tokenize("covidไทย")
	if len(tokens) == 0 {
		t.Fatal("expected tokens for mixed-script run")
	}
	// The Latin run must survive as its own token.
	found := false
	for _, tok := range tokens {
		if tok == "covid" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'covid' token, got %v", tokens)
	}
}
