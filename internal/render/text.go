package render

import (
	"strings"
	"unicode/utf8"
)

// estimateTextWidth estimates the width of text in pixels based on character count.
// Average character width is about 0.6 * font size.
func estimateTextWidth(text string, fontSize int) int {
	avgCharWidth := float64(fontSize) * 0.6
	return int(float64(utf8.RuneCountInString(text)) * avgCharWidth)
}

// truncate shortens text with an ellipsis so that it fits maxWidth pixels.
func truncate(text string, fontSize, maxWidth int) string {
	if estimateTextWidth(text, fontSize) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if estimateTextWidth(candidate, fontSize) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// escapeXML escapes special XML characters in a string to ensure valid SVG output.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
