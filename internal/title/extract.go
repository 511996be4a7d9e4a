// Package title derives a plausible paper title from unstructured first-page
// text and normalizes it for fuzzy comparison.
package title

import "strings"

const (
	// maxScanLines caps how deep into the page the heuristics look; real
	// titles sit in the first few lines.
	maxScanLines = 10
	// maxTitleLines is the most candidate lines joined into one title.
	maxTitleLines = 3
	// minScanIndex is the last line index that is always inspected before
	// the scan may stop early.
	minScanIndex = 2
	// fallbackTitleLen is the prefix length used when no candidate line
	// survives but the page carries enough text to be worth something.
	fallbackTitleLen = 100
)

// Record holds the extracted and normalized title of one document. An empty
// Raw means extraction failed; such records never participate in matching.
type Record struct {
	Raw        string
	Normalized string
}

// PageSource yields the plain text of individual document pages. It is
// implemented by pdftext.Document and by test doubles.
type PageSource interface {
	NumPages() int
	PageText(index int) (string, error)
}

// Extract derives a title from the first readable page of src. The second
// page is tried when the first has no text. The boolean is false when no
// title could be derived; that is an expected outcome, not an error.
func Extract(src PageSource) (string, bool) {
	if src.NumPages() == 0 {
		return "", false
	}
	text, err := src.PageText(0)
	if (err != nil || strings.TrimSpace(text) == "") && src.NumPages() > 1 {
		text, err = src.PageText(1)
	}
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return FromPageText(text)
}

// FromPageText applies the line heuristics to raw page text: the first
// maxScanLines non-empty lines are filtered through the discard rules and
// the survivors form the title. The scan always inspects lines up to
// minScanIndex, then stops as soon as a candidate has been collected;
// titles are compact blocks, and scanning further would pull in section
// text. When nothing survives, a long page falls back to its first
// fallbackTitleLen runes.
func FromPageText(text string) (string, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > maxScanLines {
		lines = lines[:maxScanLines]
	}

	var candidates []string
	for i, line := range lines {
		if discardLine(line) {
			continue
		}
		candidates = append(candidates, line)
		if i >= minScanIndex {
			break
		}
	}
	if len(candidates) > maxTitleLines {
		candidates = candidates[:maxTitleLines]
	}
	if len(candidates) > 0 {
		return strings.Join(candidates, " "), true
	}

	if runes := []rune(text); len(runes) > fallbackTitleLen {
		return string(runes[:fallbackTitleLen]), true
	}
	return "", false
}
