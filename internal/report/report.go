// Package report renders the ranked match list for the console and for the
// persisted result file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaywantadh/papermatch/internal/matcher"
)

const (
	// previewTitleLen is the console-only truncation width; the persisted
	// report always carries full titles.
	previewTitleLen = 80

	timeFormat = "2006-01-02 15:04:05"
	separator  = "--------------------------------------------------"
)

// Report is the ranked outcome of one comparison run. Matches keep the
// order produced by the matcher; both renderings preserve it exactly.
type Report struct {
	RunID     string
	FolderA   string
	FolderB   string
	Threshold float64
	Generated time.Time
	Matches   []matcher.Candidate
}

// New stamps a report with a fresh run id and the current time.
func New(folderA, folderB string, threshold float64, matches []matcher.Candidate) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		FolderA:   folderA,
		FolderB:   folderB,
		Threshold: threshold,
		Generated: time.Now(),
		Matches:   matches,
	}
}

// Preview writes the top n matches to w in the compact console form, with
// titles truncated for display.
func (r *Report) Preview(w io.Writer, n int) {
	if len(r.Matches) == 0 {
		fmt.Fprintln(w, "No papers with similar titles were found.")
		return
	}
	fmt.Fprintf(w, "Found %d pairs of papers with similar titles:\n", len(r.Matches))
	shown := len(r.Matches)
	if n > 0 && shown > n {
		shown = n
	}
	for i, m := range r.Matches[:shown] {
		fmt.Fprintf(w, "%d. Similarity: %.2f\n", i+1, m.Similarity)
		fmt.Fprintf(w, "   Folder A: %s\n", m.PathA)
		fmt.Fprintf(w, "   Title A: %s\n", truncate(m.TitleA))
		fmt.Fprintf(w, "   Folder B: %s\n", m.PathB)
		fmt.Fprintf(w, "   Title B: %s\n", truncate(m.TitleB))
		fmt.Fprintln(w)
	}
	if rest := len(r.Matches) - shown; rest > 0 {
		fmt.Fprintf(w, "... %d more pairs not shown\n", rest)
	}
}

// Write renders the full persisted report to w: header, match count, and
// one block per match in rank order.
func (r *Report) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Paper Title Similarity Finder - Results")
	fmt.Fprintln(bw, "=======================================")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(bw, "Date: %s\n", r.Generated.Format(timeFormat))
	fmt.Fprintf(bw, "Folder A: %s\n", r.FolderA)
	fmt.Fprintf(bw, "Folder B: %s\n", r.FolderB)
	fmt.Fprintf(bw, "Threshold: %.2f\n", r.Threshold)
	fmt.Fprintln(bw)

	if len(r.Matches) == 0 {
		fmt.Fprintln(bw, "No papers with similar titles were found.")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Found %d pairs of papers with similar titles:\n", len(r.Matches))
	fmt.Fprintln(bw)
	for i, m := range r.Matches {
		fmt.Fprintf(bw, "Pair #%d (similarity: %.2f):\n", i+1, m.Similarity)
		fmt.Fprintf(bw, "Folder A: %s\n", m.PathA)
		fmt.Fprintf(bw, "Title A: %s\n", m.TitleA)
		fmt.Fprintf(bw, "Folder B: %s\n", m.PathB)
		fmt.Fprintf(bw, "Title B: %s\n", m.TitleB)
		fmt.Fprintln(bw, separator)
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// Save persists the report to path. A failure here is fatal for the
// persistence step only; the in-memory report stays intact.
func (r *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= previewTitleLen {
		return s
	}
	return strings.TrimRight(string(runes[:previewTitleLen]), " ") + "..."
}
