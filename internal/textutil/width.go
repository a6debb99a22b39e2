package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Width returns the display width of value in character cells.
func Width(value string) int {
	return runewidth.StringWidth(value)
}

// Normalize prepares transcription text for layout: NFC normalization and
// whitespace runs collapsed to single spaces.
func Normalize(value string) string {
	value = norm.NFC.String(value)
	return strings.Join(strings.Fields(value), " ")
}

// JoinedWidth returns the display width of words joined by single spaces
// without building the joined string.
func JoinedWidth(words []string) int {
	if len(words) == 0 {
		return 0
	}
	total := len(words) - 1
	for _, word := range words {
		total += Width(word)
	}
	return total
}
