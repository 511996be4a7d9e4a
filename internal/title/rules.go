package title

import "regexp"

// minTitleLineLen is the shortest line (in runes) considered a title
// fragment; anything shorter is usually an author name or affiliation.
const minTitleLineLen = 10

var (
	reBareInteger = regexp.MustCompile(`^\d+$`)
	reVolume      = regexp.MustCompile(`(?i)^Vol\.`)
	reAbstract    = regexp.MustCompile(`(?i)^Abstract`)
	rePages       = regexp.MustCompile(`(?i)^Pages`)
	reBareYear    = regexp.MustCompile(`^\d{4}$`)
	reJournal     = regexp.MustCompile(`(?i)^Journal of`)
	reFrontMatter = regexp.MustCompile(`(?i)^(Received|Submitted|Accepted|Published|Copyright|DOI)`)
)

// discardRule rejects one class of line that cannot be part of a title.
type discardRule struct {
	name string
	drop func(line string) bool
}

// discardRules is evaluated in order; the first matching rule rejects the
// line. Each rule is independently unit-tested.
var discardRules = []discardRule{
	{"bare-integer", reBareInteger.MatchString},
	{"volume-marker", reVolume.MatchString},
	{"abstract-heading", reAbstract.MatchString},
	{"pages-marker", rePages.MatchString},
	{"bare-year", reBareYear.MatchString},
	{"journal-banner", reJournal.MatchString},
	{"too-short", tooShort},
	{"front-matter", reFrontMatter.MatchString},
}

func tooShort(line string) bool {
	return len([]rune(line)) < minTitleLineLen
}

// discardLine reports whether any rule rejects the line.
func discardLine(line string) bool {
	for _, r := range discardRules {
		if r.drop(line) {
			return true
		}
	}
	return false
}
