package docgen

import (
	"strings"
	"unicode/utf8"
)

// Character budgets for the header band
const (
	maxNameRunes   = 30
	nameLineBudget = 24
)

// truncateName caps the project name at maxNameRunes and appends an
// ellipsis. Truncation happens before any line wrapping.
func truncateName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= maxNameRunes {
		return name
	}
	runes := []rune(name)
	return string(runes[:maxNameRunes]) + "..."
}

// wrapWords wraps s greedily by words into lines of at most budget runes.
// Greedy packing keeps lines as long as possible, so the result favors
// fewer, longer lines. A single word longer than the budget gets a line
// of its own.
func wrapWords(s string, budget int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= budget {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}

// HeaderNameLines produces the final header lines for a project name:
// truncate first, then wrap if the truncated name still exceeds the
// per-line budget. The preview card uses the same function so the
// terminal and the document always agree.
func HeaderNameLines(name string) []string {
	name = truncateName(name)
	if utf8.RuneCountInString(name) <= nameLineBudget {
		return []string{name}
	}
	return wrapWords(name, nameLineBudget)
}

// truncate caps s at max runes, appending an ellipsis when shortened
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// capLines keeps at most max lines, marking the last kept line when
// content was dropped
func capLines(lines []string, max int) []string {
	if len(lines) <= max {
		return lines
	}
	capped := append([]string(nil), lines[:max]...)
	capped[max-1] = capped[max-1] + " ..."
	return capped
}
