package ats

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Contact patterns and the extraction confidence each one warrants. The email
// pattern is RFC-shaped and therefore specific; the phone heuristic accepts
// loose digit runs and earns less confidence.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
)

const (
	emailConfidence = 0.95
	phoneConfidence = 0.7
)

// analyzeStructure detects contact fields via pattern matching and section
// boundaries via the heading lexicon.
func (s *Simulator) analyzeStructure(resumeText string) types.ParsingAnalysis {
	analysis := types.ParsingAnalysis{
		SectionsDetected: s.ref.DetectSections(resumeText),
	}

	if emailPattern.MatchString(resumeText) {
		analysis.EmailDetected = true
		analysis.EmailConfidence = emailConfidence
	}
	if phonePattern.MatchString(resumeText) {
		analysis.PhoneDetected = true
		analysis.PhoneConfidence = phoneConfidence
	}
	return analysis
}
