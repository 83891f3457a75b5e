package search

// Searcher describes the behaviour required from a line matcher.
type Searcher interface {
	Search(query, content string) []string
}

// MatchFunc adapts a plain function to the Searcher interface.
type MatchFunc func(query, content string) []string

// Search calls f(query, content).
func (f MatchFunc) Search(query, content string) []string {
	return f(query, content)
}
