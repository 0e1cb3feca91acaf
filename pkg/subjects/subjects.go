// Package subjects scores free text against a fixed table of study subjects.
package subjects

import (
	"math"
	"regexp"
	"strings"
)

const phraseWeight = 2

type matcher struct {
	subject string
	phrase  string
	word    *regexp.Regexp
}

var matchers = buildMatchers()

func buildMatchers() []matcher {
	var out []matcher
	for _, subject := range Subjects {
		for _, kw := range keywords[subject] {
			if strings.Contains(kw, " ") {
				out = append(out, matcher{subject: subject, phrase: kw})
				continue
			}
			out = append(out, matcher{subject: subject, word: regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)})
		}
	}
	return out
}

// Score returns the raw keyword weight per subject for one text. A phrase
// keyword adds 2 when present; a single-word keyword adds 1 per whole-word
// occurrence. Subjects with no match are absent.
func Score(text string) map[string]int {
	lower := strings.ToLower(text)
	scores := map[string]int{}
	for _, m := range matchers {
		var n int
		if m.word == nil {
			if strings.Contains(lower, m.phrase) {
				n = phraseWeight
			}
		} else {
			n = len(m.word.FindAllStringIndex(lower, -1))
		}
		if n > 0 {
			scores[m.subject] += n
		}
	}
	return scores
}

// Normalize scales scores to 0..100 against the largest one, rounding half away
// from zero. An empty or all-zero input yields an empty map.
func Normalize(scores map[string]int) map[string]int {
	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	out := make(map[string]int, len(scores))
	if maxScore == 0 {
		return out
	}
	for subject, s := range scores {
		if s <= 0 {
			continue
		}
		out[subject] = int(math.Round(float64(s) / float64(maxScore) * 100))
	}
	return out
}

// Detect is Score followed by Normalize.
func Detect(text string) map[string]int {
	return Normalize(Score(text))
}

// Accumulator sums raw per-message scores across many texts.
type Accumulator struct {
	totals map[string]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{totals: map[string]int{}}
}

func (a *Accumulator) Add(text string) {
	for subject, n := range Score(text) {
		a.totals[subject] += n
	}
}

// Distribution returns the accumulated scores normalized to 0..100.
func (a *Accumulator) Distribution() map[string]int {
	return Normalize(a.totals)
}
