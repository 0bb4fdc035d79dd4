// Package industry infers the industry and seniority level implied by a
// resume/job-description pair using lexical overlap against registered
// industry profiles.
package industry

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// defaultLevel is reported when no level lexicon produces any signal.
const defaultLevel = types.LevelMid

// Classifier scores documents against the registered industry profiles.
type Classifier struct {
	ref *refdata.Data
	log *zap.Logger
}

// NewClassifier creates a Classifier over the given reference data.
func NewClassifier(ref *refdata.Data, log *zap.Logger) *Classifier {
	return &Classifier{ref: ref, log: log}
}

// Classify selects the industry with the highest lexical-overlap score
// against both documents combined, then the seniority level within that
// industry's level lexicons. Ties are broken by profile registration order.
// Confidence is the normalized margin between the top score and the
// runner-up, so an ambiguous pair yields low confidence even when the raw
// overlap is high.
func (c *Classifier) Classify(ctx context.Context, resumeText, jobText string) (*types.IndustryAssessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	combined := extraction.Normalize(resumeText + " " + jobText)
	if combined == "" {
		err := types.NewValidationError("both documents are empty; cannot classify")
		c.log.Warn("industry classification rejected", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
		return nil, err
	}
	tokens := extraction.TokenSet(combined)

	bestIdx, bestScore, secondScore := 0, 0.0, 0.0
	for i, profile := range c.ref.Industries {
		score := overlapScore(combined, tokens, profile.Keywords)
		// Strict comparison keeps registration order as the tie-break.
		if score > bestScore {
			secondScore = bestScore
			bestIdx, bestScore = i, score
		} else if score > secondScore {
			secondScore = score
		}
	}

	winner := c.ref.Industries[bestIdx]
	level, levelConfidence := c.classifyLevel(combined, tokens, &winner)

	return &types.IndustryAssessment{
		DetectedIndustry: winner.Name,
		Confidence:       marginConfidence(bestScore, secondScore),
		RoleLevel: types.RoleLevelAssessment{
			DetectedLevel: level,
			Confidence:    levelConfidence,
		},
	}, nil
}

// classifyLevel runs the same overlap-and-margin procedure within the winning
// industry's level lexicons, counting seniority signal words.
func (c *Classifier) classifyLevel(combined string, tokens map[string]bool, profile *refdata.IndustryProfile) (types.RoleLevel, float64) {
	bestLevel := defaultLevel
	bestScore, secondScore := 0.0, 0.0
	for _, lexicon := range profile.Levels {
		score := overlapScore(combined, tokens, lexicon.Signals)
		if score > bestScore {
			secondScore = bestScore
			bestLevel, bestScore = lexicon.Level, score
		} else if score > secondScore {
			secondScore = score
		}
	}
	if bestScore == 0 {
		return defaultLevel, 0
	}
	return bestLevel, marginConfidence(bestScore, secondScore)
}

// overlapScore counts lexicon entries present in the combined document text.
// Multi-word entries match as substrings of the normalized text.
func overlapScore(combined string, tokens map[string]bool, lexicon []string) float64 {
	score := 0.0
	for _, entry := range lexicon {
		entry = strings.ToLower(entry)
		if extraction.ContainsTerm(combined, tokens, entry) {
			score++
		}
	}
	return score
}

// marginConfidence normalizes the winner's lead over the runner-up to [0,1].
func marginConfidence(top, second float64) float64 {
	if top <= 0 {
		return 0
	}
	margin := (top - second) / top
	if margin < 0 {
		return 0
	}
	if margin > 1 {
		return 1
	}
	return margin
}
