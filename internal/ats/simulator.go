// Package ats replays a resume through independently configured emulations of
// real-world applicant tracking systems and reports per-system and aggregate
// compatibility.
package ats

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type compiledPattern struct {
	spec types.DetectionPattern
	re   *regexp.Regexp
}

type compiledProfile struct {
	profile  types.ATSSystemProfile
	patterns []compiledPattern
}

// Simulator holds the immutable registry of compiled system profiles. It is
// safe for concurrent use; Simulate never mutates a profile.
type Simulator struct {
	profiles []compiledProfile
	ref      *refdata.Data
	log      *zap.Logger
}

// NewSimulator compiles every registered profile's detection patterns once.
func NewSimulator(ref *refdata.Data, log *zap.Logger) (*Simulator, error) {
	profiles := make([]compiledProfile, 0, len(ref.ATSProfiles))
	for _, p := range ref.ATSProfiles {
		cp := compiledProfile{profile: p}
		for _, pat := range p.Patterns {
			re, err := regexp.Compile(pat.Pattern)
			if err != nil {
				return nil, types.NewConfigurationError(
					"ATS profile %q pattern %q does not compile: %v", p.SystemID, pat.ID, err)
			}
			cp.patterns = append(cp.patterns, compiledPattern{spec: pat, re: re})
		}
		profiles = append(profiles, cp)
	}
	return &Simulator{profiles: profiles, ref: ref, log: log}, nil
}

// Simulate runs the resume through every registered system profile. The
// aggregate score is the arithmetic mean of per-system scores: all systems
// are treated as equally representative. It fails with a document-parsing
// error only when the resume text is empty.
func (s *Simulator) Simulate(ctx context.Context, resumeText string, targetKeywords []string) (*types.ATSSimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(resumeText) == "" {
		err := types.NewDocumentParsingError("resume text is empty; nothing to parse")
		s.log.Error("ats simulation failed", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
		return nil, err
	}

	parsing := s.analyzeStructure(resumeText)
	detected := make(map[string]bool, len(parsing.SectionsDetected))
	for _, sec := range parsing.SectionsDetected {
		detected[sec] = true
	}

	systems := make([]types.ATSSystemSimulationResult, 0, len(s.profiles))
	var allTriggered []types.TriggeredRule
	total := 0.0

	for _, cp := range s.profiles {
		result := simulateSystem(cp, resumeText, detected)
		systems = append(systems, result)
		allTriggered = append(allTriggered, result.TriggeredRules...)
		total += result.Score
	}

	overall := 0.0
	if len(systems) > 0 {
		overall = total / float64(len(systems))
	}

	return &types.ATSSimulationResult{
		Systems:           systems,
		OverallATSScore:   overall,
		Parsing:           parsing,
		KeywordExtraction: extractTargetKeywords(resumeText, targetKeywords),
		Recommendations:   buildRecommendations(allTriggered, s.adviceIndex()),
	}, nil
}

// simulateSystem scores the resume against one profile: each triggered
// detection pattern and each missing required section reduces the score by
// its configured penalty, floored at 0.
func simulateSystem(cp compiledProfile, resumeText string, detected map[string]bool) types.ATSSystemSimulationResult {
	score := 1.0
	var triggered []types.TriggeredRule

	for _, pat := range cp.patterns {
		if !pat.re.MatchString(resumeText) {
			continue
		}
		score -= pat.spec.Penalty
		triggered = append(triggered, types.TriggeredRule{
			PatternID: pat.spec.ID,
			Category:  pat.spec.Category,
			Severity:  pat.spec.Severity,
			Penalty:   pat.spec.Penalty,
		})
	}

	for _, section := range cp.profile.RequiredSections {
		if detected[section] {
			continue
		}
		score -= cp.profile.SectionPenalty
		triggered = append(triggered, types.TriggeredRule{
			PatternID: cp.profile.SystemID + "_missing_" + section,
			Category:  "missing_section_" + section,
			Severity:  types.SeverityMedium,
			Penalty:   cp.profile.SectionPenalty,
		})
	}

	if score < 0 {
		score = 0
	}
	return types.ATSSystemSimulationResult{
		SystemID:       cp.profile.SystemID,
		Score:          score,
		TriggeredRules: triggered,
	}
}

// extractTargetKeywords cross-references target keywords against the whole
// document token set, independent of semantic matching. Input order is
// preserved in both output lists.
func extractTargetKeywords(resumeText string, targetKeywords []string) types.KeywordExtraction {
	normalized := extraction.Normalize(resumeText)
	tokens := extraction.TokenSet(resumeText)

	extracted := types.KeywordExtraction{
		KeywordsFound:   []string{},
		KeywordsMissing: []string{},
	}
	for _, kw := range targetKeywords {
		if extraction.ContainsTerm(normalized, tokens, kw) {
			extracted.KeywordsFound = append(extracted.KeywordsFound, kw)
		} else {
			extracted.KeywordsMissing = append(extracted.KeywordsMissing, kw)
		}
	}
	return extracted
}

// adviceIndex maps pattern categories to the configured remediation advice,
// taking the highest-penalty rule's advice per category.
func (s *Simulator) adviceIndex() map[string]string {
	advice := make(map[string]string)
	best := make(map[string]float64)
	for _, cp := range s.profiles {
		for _, pat := range cp.patterns {
			if pat.spec.Penalty > best[pat.spec.Category] {
				best[pat.spec.Category] = pat.spec.Penalty
				advice[pat.spec.Category] = pat.spec.Advice
			}
		}
	}
	return advice
}
