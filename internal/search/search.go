package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// New returns the Searcher matching the requested case sensitivity.
func New(caseSensitive bool) Searcher {
	if caseSensitive {
		return MatchFunc(CaseSensitive)
	}
	return MatchFunc(CaseInsensitive)
}

// CaseSensitive returns, in order, every line of content that contains query
// as an exact substring. Returned lines share memory with content.
func CaseSensitive(query, content string) []string {
	var matches []string
	for line := range lines(content) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// CaseInsensitive is like CaseSensitive but compares the Unicode lower-case
// forms of query and each line. The original lines are returned.
func CaseInsensitive(query, content string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var matches []string
	for line := range lines(content) {
		if strings.Contains(lower.String(line), query) {
			matches = append(matches, line)
		}
	}
	return matches
}
