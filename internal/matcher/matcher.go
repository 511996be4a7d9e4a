// Package matcher scores pairs of normalized titles across two collections
// and keeps the pairs above a similarity threshold.
package matcher

import (
	"sort"
	"sync"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jaywantadh/papermatch/internal/scanner"
	"github.com/jaywantadh/papermatch/internal/title"
)

// Candidate pairs one document from each collection with the similarity of
// their normalized titles. Immutable once produced.
type Candidate struct {
	PathA      string
	PathB      string
	TitleA     string
	TitleB     string
	Similarity float64
}

// Ratio is the difflib sequence ratio of two normalized titles over their
// runes: 2*M/T where M is the total length of matching blocks and T the
// combined length. Symmetric, in [0,1], and 1.0 only for identical strings.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Match compares every titled document of indexB against every titled
// document of indexA and returns the pairs whose similarity reaches
// threshold. Documents with an empty normalized title are skipped on both
// sides. The cross product is inherent to fuzzy matching; workers > 1
// spreads it over a bounded pool without changing the result, which is
// always sorted by similarity descending, then PathA, then PathB.
func Match(indexA, indexB scanner.Index, threshold float64, workers int) []Candidate {
	pathsA := titledPaths(indexA)
	pathsB := titledPaths(indexB)

	var out []Candidate
	if workers > 1 && len(pathsB) > 1 {
		out = matchParallel(indexA, indexB, pathsA, pathsB, threshold, workers)
	} else {
		for _, pb := range pathsB {
			out = append(out, compareAgainstA(indexA, pathsA, pb, indexB[pb], threshold)...)
		}
	}
	sortCandidates(out)
	return out
}

// titledPaths returns the sorted paths of all index entries that carry a
// non-empty normalized title.
func titledPaths(idx scanner.Index) []string {
	paths := make([]string, 0, len(idx))
	for p, rec := range idx {
		if rec.Normalized != "" {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

func compareAgainstA(indexA scanner.Index, pathsA []string, pathB string, recB title.Record, threshold float64) []Candidate {
	var out []Candidate
	for _, pa := range pathsA {
		recA := indexA[pa]
		if sim := Ratio(recA.Normalized, recB.Normalized); sim >= threshold {
			out = append(out, Candidate{
				PathA:      pa,
				PathB:      pathB,
				TitleA:     recA.Raw,
				TitleB:     recB.Raw,
				Similarity: sim,
			})
		}
	}
	return out
}

// matchParallel fans the B-side entries over a bounded worker pool. The two
// indexes are read-only here, so the only shared mutation is the guarded
// result slice; ordering is restored by the caller's sort.
func matchParallel(indexA, indexB scanner.Index, pathsA, pathsB []string, threshold float64, workers int) []Candidate {
	taskChan := make(chan string, workers*2)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var out []Candidate

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pb := range taskChan {
				found := compareAgainstA(indexA, pathsA, pb, indexB[pb], threshold)
				if len(found) == 0 {
					continue
				}
				mu.Lock()
				out = append(out, found...)
				mu.Unlock()
			}
		}()
	}
	for _, pb := range pathsB {
		taskChan <- pb
	}
	close(taskChan)
	wg.Wait()
	return out
}

func sortCandidates(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Similarity != cs[j].Similarity {
			return cs[i].Similarity > cs[j].Similarity
		}
		if cs[i].PathA != cs[j].PathA {
			return cs[i].PathA < cs[j].PathA
		}
		return cs[i].PathB < cs[j].PathB
	})
}
