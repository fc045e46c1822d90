package quiz

import "strings"

// Similarity returns a normalized [0,1] edit-similarity ratio over the
// lowercased, trimmed strings. It uses longest-matching-block sequence
// comparison: the ratio is 2*M/T where M is the total number of matched
// runes across recursively found longest common blocks and T is the sum
// of both lengths. Two empty strings are identical (1.0); exactly one
// empty string yields 0.0.
func Similarity(a, b string) float64 {
	s1 := []rune(strings.ToLower(strings.TrimSpace(a)))
	s2 := []rune(strings.ToLower(strings.TrimSpace(b)))
	if len(s1) == 0 && len(s2) == 0 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}
	matched := matchingBlocks(s1, 0, len(s1), s2, 0, len(s2))
	return 2.0 * float64(matched) / float64(len(s1)+len(s2))
}

// matchingBlocks sums matched rune counts by locating the longest common
// block in a[alo:ahi] x b[blo:bhi] and recursing on both sides of it.
func matchingBlocks(a []rune, alo, ahi int, b []rune, blo, bhi int) int {
	ai, bj, size := longestMatch(a, alo, ahi, b, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocks(a, alo, ai, b, blo, bj)
	total += matchingBlocks(a, ai+size, ahi, b, bj+size, bhi)
	return total
}

// longestMatch finds the longest contiguous matching block within the
// given windows. Among equally long blocks it prefers the one starting
// earliest in a, then earliest in b.
func longestMatch(a []rune, alo, ahi int, b []rune, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	// j2len[j] is the length of the match ending at a[i-1], b[j-1].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return besti, bestj, bestsize
}

// stopWords are dropped during keyword extraction: articles, conjunctions,
// and common prepositions carry no topical signal.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "these": true, "those": true, "are": true, "is": true,
	"a": true, "an": true, "in": true, "on": true, "of": true, "to": true,
	"by": true, "as": true, "be": true, "it": true, "will": true,
	"can": true, "from": true, "at": true,
}

// ExtractKeywords lowercases the text, strips punctuation, and returns
// the significant tokens: longer than two characters and not stop words.
func ExtractKeywords(text string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	var out []string
	for _, tok := range strings.Fields(sb.String()) {
		if len(tok) > 2 && !stopWords[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// KeywordOverlap returns the fraction of the correct answer's significant
// tokens also present in the submitted answer, or 0 when the correct
// answer has no significant tokens.
func KeywordOverlap(submitted, correct string) float64 {
	correctKW := ExtractKeywords(correct)
	if len(correctKW) == 0 {
		return 0.0
	}
	submittedSet := make(map[string]bool)
	for _, kw := range ExtractKeywords(submitted) {
		submittedSet[kw] = true
	}
	// Count distinct correct-answer keywords, matching set semantics.
	correctSet := make(map[string]bool)
	shared := 0
	for _, kw := range correctKW {
		if correctSet[kw] {
			continue
		}
		correctSet[kw] = true
		if submittedSet[kw] {
			shared++
		}
	}
	return float64(shared) / float64(len(correctSet))
}
