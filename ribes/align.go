package ribes

import (
	"strings"
	"unicode/utf8"
)

// symbolBase is the first code point handed out for token symbols. Starting
// in the Private Use Area keeps encoded sentences away from characters real
// tokens could contain; the code points themselves carry no meaning.
const symbolBase = 0xE000

// encodePair assigns every distinct token of the pair a single code point,
// reference first, and returns both sentences as symbol strings. A span of k
// tokens is then a k-rune substring, so n-gram uniqueness checks reduce to
// plain substring counting.
func encodePair(reference, hypothesis []string) (encRef, encHyp string) {
	symbols := make(map[string]rune, len(reference)+len(hypothesis))
	var ref, hyp strings.Builder
	for _, token := range reference {
		ref.WriteRune(symbolFor(symbols, token))
	}
	for _, token := range hypothesis {
		hyp.WriteRune(symbolFor(symbols, token))
	}
	return ref.String(), hyp.String()
}

func symbolFor(symbols map[string]rune, token string) rune {
	if symbol, ok := symbols[token]; ok {
		return symbol
	}
	symbol := rune(symbolBase + len(symbols))
	symbols[token] = symbol
	return symbol
}

// countOverlapping counts occurrences of sub in s, overlapping ones
// included, with an iterative cursor.
func countOverlapping(s, sub string) int {
	if sub == "" {
		return 0
	}
	count, from := 0, 0
	for {
		idx := strings.Index(s[from:], sub)
		if idx < 0 {
			return count
		}
		count++
		from += idx + 1
	}
}

// tokenIndex returns the token position of the first occurrence of sub in
// the symbol string s, or -1 when absent.
func tokenIndex(s, sub string) int {
	idx := strings.Index(s, sub)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:idx])
}

// Align maps hypothesis tokens to reference positions. A token unique in
// both sentences aligns directly. A repeated token is disambiguated by
// growing a context window around it until the window occurs exactly once in
// both sentences; a window ending at the token aligns it to the window's
// last reference position, a window starting at it to the first. Tokens
// absent from the reference, and ambiguous tokens no window pins down, are
// dropped, so the result is in hypothesis order but may be shorter than the
// hypothesis.
func Align(reference, hypothesis []string) []int {
	encRef, encHyp := encodePair(reference, hypothesis)
	hypSymbols := []rune(encHyp)
	hypLen := len(hypothesis)
	alignment := make([]int, 0, hypLen)

	for i := 0; i < hypLen; i++ {
		symbol := string(hypSymbols[i])
		switch countOverlapping(encRef, symbol) {
		case 0:
			continue
		case 1:
			if countOverlapping(encHyp, symbol) == 1 {
				alignment = append(alignment, tokenIndex(encRef, symbol))
				continue
			}
		}

		bound := hypLen - i
		if i+1 > bound {
			bound = i + 1
		}
		for w := 1; w < bound; w++ {
			if w <= i {
				window := string(hypSymbols[i-w : i+1])
				if countOverlapping(encRef, window) == 1 && countOverlapping(encHyp, window) == 1 {
					alignment = append(alignment, tokenIndex(encRef, window)+w)
					break
				}
			} else if i+w < hypLen {
				window := string(hypSymbols[i : i+w+1])
				if countOverlapping(encRef, window) == 1 && countOverlapping(encHyp, window) == 1 {
					alignment = append(alignment, tokenIndex(encRef, window))
					break
				}
			}
		}
	}
	return alignment
}
