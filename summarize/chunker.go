package summarize

import (
	"strings"
	"unicode/utf8"
)

// SplitChunks partitions text into pieces of at most size bytes, cutting at
// the last whitespace inside the budget when one exists. The chunks are an
// exact partition: concatenating them reproduces the input.
func SplitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 || len(text) <= size {
		return []string{text}
	}

	var chunks []string
	for len(text) > size {
		cut := lastSpaceWithin(text, size)
		if cut <= 0 {
			// No whitespace in the window; cut at a rune boundary instead.
			cut = size
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				cut = size
			}
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

// lastSpaceWithin returns the index just past the last whitespace rune in
// text[:size], or -1 when there is none.
func lastSpaceWithin(text string, size int) int {
	window := text[:size]
	idx := strings.LastIndexFunc(window, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t'
	})
	if idx < 0 {
		return -1
	}
	return idx + 1
}
