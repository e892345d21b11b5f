package imkit

import "strings"

// WrapText splits text into lines no wider than maxWidth at the theme scale.
// Lines break at spaces; a single word wider than maxWidth is split by rune.
// Explicit newlines are kept.
func WrapText(ctx *Context, text string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(ctx, para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(ctx *Context, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string
	for _, word := range words {
		for ctx.MeasureText(word).X > maxWidth {
			head, tail := splitRunesToWidth(ctx, word, maxWidth)
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, head)
			word = tail
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if ctx.MeasureText(candidate).X > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitRunesToWidth returns the longest prefix of s (at least one rune) that
// fits in maxWidth, and the rest.
func splitRunesToWidth(ctx *Context, s string, maxWidth float32) (string, string) {
	runes := []rune(s)
	n := 1
	for n < len(runes) && ctx.MeasureText(string(runes[:n+1])).X <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// truncateText shortens text with a ".." suffix so it fits in maxWidth when
// drawn at scale. Text that already fits is returned unchanged.
func truncateText(ctx *Context, text string, maxWidth, scale float32) string {
	const suffix = ".."
	if maxWidth <= 0 {
		return ""
	}
	if ctx.measureTextScaled(text, scale).X <= maxWidth {
		return text
	}

	target := maxWidth - ctx.measureTextScaled(suffix, scale).X
	runes := []rune(text)
	for len(runes) > 0 {
		if ctx.measureTextScaled(string(runes), scale).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}
