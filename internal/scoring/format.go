package scoring

import "strings"

// Format quality penalties. The heuristic is local: it looks only at the
// resume text and the detected section boundaries.
const (
	missingSectionPenalty = 0.15
	tooShortPenalty       = 0.2
	tooLongPenalty        = 0.15
	longLinePenalty       = 0.1
	sparseLinesPenalty    = 0.1

	minWords   = 100
	maxWords   = 1200
	maxLineLen = 240
	minLines   = 10
)

// coreSections are the sections every parseable resume is expected to label.
var coreSections = []string{"experience", "education", "skills"}

// formatScore computes the base structural/format quality score: it penalizes
// missing core sections, irregular document length, and layout that resists
// line-oriented parsing. The result is in [0,1].
func formatScore(resumeText string, sections []string) float64 {
	score := 1.0

	detected := make(map[string]bool, len(sections))
	for _, s := range sections {
		detected[s] = true
	}
	for _, core := range coreSections {
		if !detected[core] {
			score -= missingSectionPenalty
		}
	}

	words := len(strings.Fields(resumeText))
	if words < minWords {
		score -= tooShortPenalty
	} else if words > maxWords {
		score -= tooLongPenalty
	}

	lines := strings.Split(resumeText, "\n")
	if len(lines) < minLines {
		score -= sparseLinesPenalty
	}
	for _, line := range lines {
		if len(line) > maxLineLen {
			score -= longLinePenalty
			break
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}
