// Package textutil cleans up pasted multi-line text before bulk add.
// Pasted lists commonly carry bullets, checkboxes, or numbering from the
// source document; each line is stripped down to its bare text.
package textutil

import (
	"regexp"
	"strings"
)

// Leading decorations stripped from pasted lines.
var (
	bulletPrefix   = regexp.MustCompile(`^\s*[-•▪▫◦‣⁃]\s*`)
	checkboxPrefix = regexp.MustCompile(`^\s*[⬜☐☑✅✓]\s*`)
	numberPrefix   = regexp.MustCompile(`^\s*\d+[.)]\s*`)
)

// CleanLine trims a single line and strips one leading bullet, checkbox,
// or numbering decoration. Returns "" when nothing remains.
func CleanLine(line string) string {
	cleaned := strings.TrimSpace(line)
	if cleaned == "" {
		return ""
	}
	cleaned = bulletPrefix.ReplaceAllString(cleaned, "")
	cleaned = checkboxPrefix.ReplaceAllString(cleaned, "")
	cleaned = numberPrefix.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// CleanLines splits pasted text into lines, cleans each one, and drops
// lines that are empty before or after cleaning.
func CleanLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if cleaned := CleanLine(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
