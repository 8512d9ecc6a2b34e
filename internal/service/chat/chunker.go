package chat

import (
	"regexp"
	"strings"
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

const (
	// Paragraphs under this length pass through as a single chunk even
	// when they contain sentence punctuation.
	shortParagraphLimit = 100
	// Accumulated sentences flush once appending the next one would
	// reach this size. A single longer sentence is still emitted whole.
	chunkFlushLimit = 120
)

// SplitMessage breaks a generated reply into human-feeling message
// fragments: paragraphs first, then sentence groups for long paragraphs.
// Deterministic for a given input. Non-blank input always yields at
// least one chunk.
func SplitMessage(text string) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	for _, p := range paragraphBreak.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if len(p) < shortParagraphLimit {
			chunks = append(chunks, p)
			continue
		}

		current := ""
		for _, s := range splitSentences(p) {
			if current == "" {
				current = s
				continue
			}
			if len(current)+len(s) < chunkFlushLimit {
				current += " " + s
			} else {
				chunks = append(chunks, current)
				current = s
			}
		}
		if current != "" {
			chunks = append(chunks, current)
		}
	}

	if len(chunks) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}
	return chunks
}

// splitSentences cuts after '.', '!' or '?' followed by whitespace,
// keeping the punctuation attached to the preceding sentence.
func splitSentences(p string) []string {
	var out []string
	start := 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(p) && isSpaceByte(p[i+1]) {
			if s := strings.TrimSpace(p[start : i+1]); s != "" {
				out = append(out, s)
			}
			j := i + 1
			for j < len(p) && isSpaceByte(p[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if s := strings.TrimSpace(p[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
