// Package semantic scores keyword overlap between a resume and a job
// description using exact, synonym, and fuzzy matching.
package semantic

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Match-kind discounts applied to keyword weights when computing similarity.
// Synonym and fuzzy matches are real but weaker signals than exact matches.
const (
	exactDiscount   = 1.0
	synonymDiscount = 0.85
	fuzzyDiscount   = 0.6

	// fuzzyThreshold is the minimum normalized string similarity for a
	// fuzzy match.
	fuzzyThreshold = 0.8

	// Confidence combines a fixed base with coverage and the exact-match
	// fraction, so it is nonzero whenever job keywords exist and
	// non-decreasing in the fraction of exact matches.
	confidenceBase       = 0.2
	confidenceCoverageW  = 0.4
	confidenceExactFracW = 0.4
)

// Matcher performs semantic analysis against shared reference data.
type Matcher struct {
	ref *refdata.Data
	log *zap.Logger
}

// NewMatcher creates a Matcher over the given reference data.
func NewMatcher(ref *refdata.Data, log *zap.Logger) *Matcher {
	return &Matcher{ref: ref, log: log}
}

// Analyze compares the extracted keyword sets of both documents. It fails
// with a validation error when either set is empty after normalization.
func (m *Matcher) Analyze(ctx context.Context, resumeText, jobText, industry string) (*types.SemanticAnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resumeKeywords := extraction.ExtractKeywords(resumeText, types.DocumentResume, m.ref)
	jobKeywords := extraction.ExtractKeywords(jobText, types.DocumentJobDescription, m.ref)

	if len(resumeKeywords) == 0 {
		err := types.NewValidationError("no keywords extracted from resume; nothing to compare")
		m.log.Warn("semantic analysis rejected", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
		return nil, err
	}
	if len(jobKeywords) == 0 {
		err := types.NewValidationError("no keywords extracted from job description; nothing to compare")
		m.log.Warn("semantic analysis rejected", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
		return nil, err
	}

	resumeTerms := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeTerms[kw.Term] = true
	}
	synonyms := m.ref.SynonymsFor(industry)

	matches := make([]types.KeywordMatch, 0, len(jobKeywords))
	totalWeight := 0.0
	matchedWeight := 0.0
	exactCount := 0
	matchedCount := 0

	for _, jobKw := range jobKeywords {
		match := matchKeyword(jobKw.Term, resumeTerms, resumeKeywords, synonyms)
		matches = append(matches, match)

		totalWeight += jobKw.Weight
		switch match.Kind {
		case types.MatchExact:
			matchedWeight += jobKw.Weight * exactDiscount
			exactCount++
			matchedCount++
		case types.MatchSynonym:
			matchedWeight += jobKw.Weight * synonymDiscount
			matchedCount++
		case types.MatchFuzzy:
			matchedWeight += jobKw.Weight * fuzzyDiscount
			matchedCount++
		}
	}

	similarity := 0.0
	if totalWeight > 0 {
		similarity = matchedWeight / totalWeight
	}

	total := len(jobKeywords)
	coverage := float64(matchedCount) / float64(total)
	exactFrac := float64(exactCount) / float64(total)

	confidence := confidenceBase + confidenceCoverageW*coverage + confidenceExactFracW*exactFrac
	if confidence > 1.0 {
		confidence = 1.0
	}

	return &types.SemanticAnalysisResult{
		Matches:           matches,
		SimilarityScore:   clamp01(similarity),
		IndustryRelevance: m.industryRelevance(matches, industry),
		ConfidenceScore:   confidence,
	}, nil
}

// matchKeyword resolves one job keyword against the resume keyword set:
// exact first, then the industry-scoped synonym table, then fuzzy string
// relatedness, otherwise missing.
func matchKeyword(jobTerm string, resumeTerms map[string]bool, resumeKeywords []types.Keyword, synonyms refdata.SynonymTable) types.KeywordMatch {
	if resumeTerms[jobTerm] {
		return types.KeywordMatch{
			JobKeyword:    jobTerm,
			ResumeKeyword: jobTerm,
			Kind:          types.MatchExact,
			Confidence:    1.0,
		}
	}

	if equiv, ok := synonymFor(jobTerm, resumeTerms, synonyms); ok {
		return types.KeywordMatch{
			JobKeyword:    jobTerm,
			ResumeKeyword: equiv,
			Kind:          types.MatchSynonym,
			Confidence:    synonymDiscount,
		}
	}

	bestTerm, bestSim := "", 0.0
	for _, kw := range resumeKeywords {
		sim := Similarity(jobTerm, kw.Term)
		if sim > bestSim {
			bestTerm, bestSim = kw.Term, sim
		}
	}
	if bestSim >= fuzzyThreshold {
		return types.KeywordMatch{
			JobKeyword:    jobTerm,
			ResumeKeyword: bestTerm,
			Kind:          types.MatchFuzzy,
			Confidence:    bestSim,
		}
	}

	return types.KeywordMatch{JobKeyword: jobTerm, Kind: types.MatchMissing, Confidence: 0}
}

// synonymFor checks the synonym table in both directions: the job term may be
// a canonical entry whose synonym appears in the resume, or a synonym of a
// canonical term the resume uses.
func synonymFor(jobTerm string, resumeTerms map[string]bool, synonyms refdata.SynonymTable) (string, bool) {
	for _, syn := range synonyms[jobTerm] {
		if resumeTerms[syn] {
			return syn, true
		}
	}
	for canonical, syns := range synonyms {
		for _, syn := range syns {
			if syn == jobTerm && resumeTerms[canonical] {
				return canonical, true
			}
		}
	}
	return "", false
}

// industryRelevance is the fraction of matched job keywords that belong to
// the target industry's reference lexicon.
func (m *Matcher) industryRelevance(matches []types.KeywordMatch, industry string) float64 {
	profile, ok := m.ref.Industry(industry)
	if !ok {
		return 0
	}
	lexicon := make(map[string]bool, len(profile.Keywords))
	for _, kw := range profile.Keywords {
		lexicon[kw] = true
	}

	matched := 0
	relevant := 0
	for _, match := range matches {
		if match.Kind == types.MatchMissing {
			continue
		}
		matched++
		if lexicon[match.JobKeyword] {
			relevant++
		}
	}
	if matched == 0 {
		return 0
	}
	return float64(relevant) / float64(matched)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
