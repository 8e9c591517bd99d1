package analyzer

import "unicode"

// thaiGramSize is the length of the character grams emitted for runs of
// Thai script. Thai is written without spaces between words, so a whole
// phrase arrives as one run; overlapping trigrams give queries and
// documents a shared unit to match on.
const thaiGramSize = 3

// Tokenize splits normalized text into index terms. Word runs
// (letters, digits, underscore) of at least two runes become one token
// each; Thai runs are segmented into overlapping character trigrams.
// A run breaks when the script class changes, so mixed Thai/Latin text
// yields separate runs per script.
func Tokenize(text string) []string {
	var tokens []string
	var run []rune
	runThai := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runThai {
			tokens = append(tokens, thaiGrams(run)...)
		} else if len(run) >= 2 {
			tokens = append(tokens, string(run))
		}
		run = run[:0]
	}

	for _, r := range text {
		switch {
		case isThai(r):
			if !runThai {
				flush()
				runThai = true
			}
			run = append(run, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if runThai {
				flush()
				runThai = false
			}
			run = append(run, r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// thaiGrams returns the overlapping trigrams of a Thai rune run. Runs
// shorter than the gram size are emitted whole when at least two runes
// long.
func thaiGrams(run []rune) []string {
	if len(run) < thaiGramSize {
		if len(run) < 2 {
			return nil
		}
		return []string{string(run)}
	}
	grams := make([]string, 0, len(run)-thaiGramSize+1)
	for i := 0; i+thaiGramSize <= len(run); i++ {
		grams = append(grams, string(run[i:i+thaiGramSize]))
	}
	return grams
}
