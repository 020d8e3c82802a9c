package hyphen

import (
	"strings"
)

// SplitGerman splits a German word into syllable parts following standard
// orthographic rules: a break falls before the last consonant of the
// cluster between two vowel groups, with inseparable onsets (ch, sch, ck,
// consonant+liquid, ...) kept together. True pattern dictionaries resolve
// morpheme boundaries this heuristic cannot see, but for display
// hyphenation a wrong-but-plausible break reads fine, and the result is
// fully deterministic.
func SplitGerman(word string) []string {
	runes := []rune(word)
	if len(runes) < minWordLength {
		return []string{word}
	}
	lower := []rune(strings.ToLower(word))

	groups := vowelGroups(lower)
	if len(groups) < 2 {
		return []string{word}
	}

	var breaks []int
	for k := 1; k < len(groups); k++ {
		consStart := groups[k-1].end
		consEnd := groups[k].start
		br, ok := clusterBreak(lower, consStart, consEnd)
		if !ok {
			continue
		}
		// Never strand fewer than two runes on either side.
		if br < 2 || len(runes)-br < 2 {
			continue
		}
		breaks = append(breaks, br)
	}
	if len(breaks) == 0 {
		return []string{word}
	}

	parts := make([]string, 0, len(breaks)+1)
	prev := 0
	for _, br := range breaks {
		parts = append(parts, string(runes[prev:br]))
		prev = br
	}
	parts = append(parts, string(runes[prev:]))
	return parts
}

type runeSpan struct {
	start, end int
}

const germanVowels = "aeiouäöüy"

func isGermanVowel(r rune) bool {
	return strings.ContainsRune(germanVowels, r)
}

// vowelGroups returns the maximal runs of vowels in the lowercased word.
// Diphthongs (au, ei, eu, ie, ...) stay inside one group.
func vowelGroups(lower []rune) []runeSpan {
	var groups []runeSpan
	i := 0
	for i < len(lower) {
		if !isGermanVowel(lower[i]) {
			i++
			continue
		}
		start := i
		for i < len(lower) && isGermanVowel(lower[i]) {
			i++
		}
		groups = append(groups, runeSpan{start: start, end: i})
	}
	return groups
}

// clusterBreak picks the break position inside the consonant cluster
// [consStart, consEnd). A single consonant moves to the next syllable; a
// longer cluster breaks before its last consonant unless the tail forms an
// onset that German never separates.
func clusterBreak(lower []rune, consStart, consEnd int) (int, bool) {
	n := consEnd - consStart
	switch {
	case n <= 0:
		// Hiatus between vowel groups, leave untouched.
		return 0, false
	case n == 1:
		return consStart, true
	}

	if n >= 3 && string(lower[consEnd-3:consEnd]) == "sch" {
		return consEnd - 3, true
	}
	tail := string(lower[consEnd-2 : consEnd])
	switch tail {
	case "ch", "ck", "ph", "th", "qu":
		return consEnd - 2, true
	}
	// Consonant + liquid onsets (br, gl, tr, ...) stay together, but
	// doubled consonants and coda clusters like rl still split.
	last := lower[consEnd-1]
	if (last == 'l' || last == 'r') && strings.ContainsRune("bcdfgkptvw", lower[consEnd-2]) {
		return consEnd - 2, true
	}
	return consEnd - 1, true
}
