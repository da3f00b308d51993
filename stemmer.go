package corpusdex

import "strings"

// ruSuffixes is the Russian suffix list, longest-first, with ties broken by
// list order — see GLOSSARY in spec.md. Stripping stops at the first match.
var ruSuffixes = []string{
	"ивший", "ывший", "ующий", "ающий",
	"ённый", "анный", "енный",
	"ость", "ести", "ости",
	"ами", "ями", "ому", "ему",
	"ого", "его", "ых", "их",
	"ать", "ять", "еть", "ить",
	"ал", "ял", "ел", "ил",
	"ет", "ит", "ат", "ят",
	"ой", "ый", "ий", "ая", "яя",
	"ов", "ев", "ей",
	"ам", "ям", "ом", "ем",
	"ах", "ях", "ую", "юю",
	"ть", "ся",
	"а", "я", "о", "е", "и", "ы", "у", "ю",
}

// enSuffixes is the English step-4 suffix list, longest-first.
var enSuffixes = []string{
	"ational", "ization", "fulness", "ousness", "iveness",
	"ation", "ness", "ment", "able", "ible", "ence", "ance",
	"ful", "ous", "ive", "ize", "ise", "ant", "ent",
	"al", "er", "or", "ly",
}

// Stem reduces a non-empty lowercase token to its canonical stem. It is
// purely suffix-based, never lengthens its input, and is idempotent on
// anything it has already stemmed — see §4.B and the idempotence property
// in §8. The input is assumed already produced by Tokenize (lowercase,
// non-empty); Stem itself tolerates an empty string by returning it as-is.
func Stem(word string) string {
	if word == "" {
		return word
	}
	if isCyrillicStart(word) {
		return stemRussian(word)
	}
	return stemEnglish(word)
}

func isCyrillicStart(word string) bool {
	c := word[0]
	return c == 0xD0 || c == 0xD1
}

func charCount(s string) int {
	n := 0
	for i := 0; i < len(s); i += utf8LeadLen(s[i]) {
		n++
	}
	return n
}

// stemRussian strips at most one suffix from ruSuffixes, tried longest
// first, provided the word has more characters than the suffix plus one
// (char_count(word) > char_count(suffix) + 1, so at least two characters
// remain). Words under 4 bytes are returned unchanged.
func stemRussian(word string) string {
	if len(word) < 4 {
		return word
	}

	for _, suf := range ruSuffixes {
		if strings.HasSuffix(word, suf) && charCount(word) > charCount(suf)+1 {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// stemEnglish applies four sequential steps derived from a simplified
// Porter variant: plural stripping, past/progressive stripping with a
// doubled-consonant check, y->i replacement, then one suffix from
// enSuffixes. Words under 3 bytes are returned unchanged.
func stemEnglish(word string) string {
	if len(word) < 3 {
		return word
	}

	result := word

	// Step 1: plural
	switch {
	case strings.HasSuffix(result, "sses"):
		result = result[:len(result)-2] // strip "es"
	case strings.HasSuffix(result, "ies"):
		result = result[:len(result)-3] + "i"
	case strings.HasSuffix(result, "ss"):
		// leave unchanged
	case strings.HasSuffix(result, "s") && len(result) > 3:
		result = result[:len(result)-1]
	}

	// Step 2: past tense / progressive
	switch {
	case strings.HasSuffix(result, "eed"):
		if len(result) > 4 {
			result = result[:len(result)-2]
		}
	case strings.HasSuffix(result, "ed") && len(result) > 4:
		result = result[:len(result)-2]
		result = dropDoubledConsonant(result)
	case strings.HasSuffix(result, "ing") && len(result) > 5:
		result = result[:len(result)-3]
		result = dropDoubledConsonant(result)
	}

	// Step 3: y -> i after a consonant
	if strings.HasSuffix(result, "y") && len(result) > 2 {
		prev := result[len(result)-2]
		if !isVowel(prev) {
			result = result[:len(result)-1] + "i"
		}
	}

	// Step 4: suffix list
	for _, suf := range enSuffixes {
		if strings.HasSuffix(result, suf) && len(result) > len(suf)+2 {
			result = result[:len(result)-len(suf)]
			break
		}
	}

	return result
}

func dropDoubledConsonant(s string) string {
	if len(s) >= 2 && s[len(s)-1] == s[len(s)-2] {
		return s[:len(s)-1]
	}
	return s
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
