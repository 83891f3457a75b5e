package search

import (
	"iter"
	"strings"
)

// lines yields each line of s without its terminator. Lines end at "\n" or
// "\r\n"; a bare "\r" is kept. A trailing terminator does not produce an
// empty final line.
func lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
