// Package extraction tokenizes document text and extracts candidate keywords.
// Extraction is pure: identical text and reference data always produce the
// same ordered keyword sequence.
package extraction

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// defaultKeywordWeight is the importance assigned to plain single-token terms.
const defaultKeywordWeight = 1.0

// stopwords are excluded from single-token extraction. Phrase-lexicon entries
// are matched before this filter applies.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "our": true, "that": true, "the": true, "their": true,
	"this": true, "to": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "you": true, "your": true,
}

// Normalize case-folds text and collapses all whitespace runs to single
// spaces. Punctuation inside tokens (c++, node.js, ci/cd) is preserved.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	return strings.Join(strings.Fields(lower), " ")
}

// trimTokenPunct strips punctuation at token boundaries while keeping
// interior characters intact.
func trimTokenPunct(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		if r == '+' || r == '#' {
			return false
		}
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

type positioned struct {
	pos int
	kw  types.Keyword
}

// ExtractKeywords extracts an ordered, deduplicated keyword sequence from raw
// document text. Multi-word terms and credentials from the phrase lexicon are
// recognized first; remaining text falls back to single-token extraction.
// Empty or whitespace-only input yields an empty sequence.
func ExtractKeywords(text string, origin types.DocumentKind, ref *refdata.Data) []types.Keyword {
	normalized := Normalize(text)
	if normalized == "" {
		return []types.Keyword{}
	}

	seen := make(map[string]bool)
	var found []positioned

	// Phrase lexicon pass: multi-word technical terms and credentials.
	for _, entry := range ref.Phrases {
		idx := strings.Index(normalized, entry.Phrase)
		if idx < 0 || seen[entry.Phrase] {
			continue
		}
		seen[entry.Phrase] = true
		found = append(found, positioned{pos: idx, kw: types.Keyword{
			Term:     entry.Phrase,
			Origin:   origin,
			Weight:   entry.Weight,
			Category: entry.Category,
		}})
	}

	// Single-token pass over the remaining vocabulary.
	cursor := 0
	for _, raw := range strings.Fields(normalized) {
		idx := strings.Index(normalized[cursor:], raw) + cursor
		cursor = idx + len(raw)

		tok := trimTokenPunct(raw)
		if len(tok) < 2 || stopwords[tok] || isNumeric(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		found = append(found, positioned{pos: idx, kw: types.Keyword{
			Term:   tok,
			Origin: origin,
			Weight: defaultKeywordWeight,
		}})
	}

	// First-seen document order, with position ties broken by term for
	// reproducibility.
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].pos != found[j].pos {
			return found[i].pos < found[j].pos
		}
		return found[i].kw.Term < found[j].kw.Term
	})

	keywords := make([]types.Keyword, 0, len(found))
	for _, f := range found {
		keywords = append(keywords, f.kw)
	}
	return keywords
}

// TokenSet returns the set of normalized tokens in text, used by the ATS
// simulator to cross-reference target keywords against the whole document.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, raw := range strings.Fields(Normalize(text)) {
		tok := trimTokenPunct(raw)
		if tok != "" {
			set[tok] = true
		}
	}
	return set
}

// ContainsTerm reports whether a term (single- or multi-word) appears in the
// normalized document. Multi-word terms are matched as substrings of the
// normalized text; single tokens against the token set.
func ContainsTerm(normalizedText string, tokens map[string]bool, term string) bool {
	term = Normalize(term)
	if term == "" {
		return false
	}
	if strings.Contains(term, " ") {
		return strings.Contains(normalizedText, term)
	}
	return tokens[term] || strings.Contains(normalizedText, term)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
