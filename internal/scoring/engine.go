// Package scoring orchestrates the analysis pipeline and fuses its signals
// into a single explainable composite score.
package scoring

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/industry"
	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/semantic"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Options are the engine's feature toggles, supplied by configuration at
// process start.
type Options struct {
	IndustryAnalysis bool
	ATSChecks        bool
}

// DefaultOptions enables the full pipeline.
func DefaultOptions() Options {
	return Options{IndustryAnalysis: true, ATSChecks: true}
}

// Engine composes the semantic matcher, industry classifier, and ATS
// simulator. It holds only immutable collaborators and shared reference
// data, so a single Engine serves arbitrarily many concurrent evaluations.
type Engine struct {
	ref        *refdata.Data
	matcher    *semantic.Matcher
	classifier *industry.Classifier
	simulator  *ats.Simulator
	opts       Options
	log        *zap.Logger
}

// NewEngine wires the pipeline components over shared reference data.
func NewEngine(ref *refdata.Data, opts Options, log *zap.Logger) (*Engine, error) {
	simulator, err := ats.NewSimulator(ref, log)
	if err != nil {
		return nil, err
	}
	return &Engine{
		ref:        ref,
		matcher:    semantic.NewMatcher(ref, log),
		classifier: industry.NewClassifier(ref, log),
		simulator:  simulator,
		opts:       opts,
		log:        log,
	}, nil
}

// ComprehensiveAnalysis runs the full pipeline: semantic matching and
// industry classification concurrently, then ATS simulation seeded with the
// job description's keyword set, then format scoring and weighted
// aggregation. The first sub-step failure is propagated verbatim with its
// kind preserved; partial results are never returned.
func (e *Engine) ComprehensiveAnalysis(ctx context.Context, resumeText, jobText, targetIndustry string, targetLevel types.RoleLevel) (*types.ComprehensiveAnalysisResult, error) {
	// The simulator owns the empty-resume contract; surface its kind before
	// any sub-step can mask it with a different one.
	if strings.TrimSpace(resumeText) == "" {
		err := types.NewDocumentParsingError("resume text is empty; nothing to parse")
		e.log.Error("comprehensive analysis failed", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
		return nil, err
	}

	// Semantic matching and industry classification are independent; run
	// them as one task group so the first failure cancels the sibling.
	var semResult *types.SemanticAnalysisResult
	var indResult *types.IndustryAssessment

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := e.matcher.Analyze(gCtx, resumeText, jobText, targetIndustry)
		if err != nil {
			return err
		}
		semResult = result
		return nil
	})
	if e.opts.IndustryAnalysis {
		g.Go(func() error {
			result, err := e.classifier.Classify(gCtx, resumeText, jobText)
			if err != nil {
				return err
			}
			indResult = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The ATS stage depends on the semantic stage's job keyword set.
	var atsResult *types.ATSSimulationResult
	if e.opts.ATSChecks {
		targetKeywords := make([]string, 0, len(semResult.Matches))
		for _, m := range semResult.Matches {
			targetKeywords = append(targetKeywords, m.JobKeyword)
		}
		var err error
		atsResult, err = e.simulator.Simulate(ctx, resumeText, targetKeywords)
		if err != nil {
			return nil, err
		}
	}

	weightIndustry, weightLevel := e.resolveTargets(targetIndustry, targetLevel, indResult)
	subScores := e.subScores(resumeText, targetLevel, semResult, indResult, atsResult)
	breakdown, overall := e.aggregate(weightIndustry, weightLevel, subScores)

	return &types.ComprehensiveAnalysisResult{
		OverallScore: overall,
		Semantic:     semResult,
		Industry:     indResult,
		ATS:          atsResult,
		Breakdown:    breakdown,
	}, nil
}

// resolveTargets picks the (industry, level) pair used for weight-table
// selection: explicit targets win, detected values fill the gaps.
func (e *Engine) resolveTargets(targetIndustry string, targetLevel types.RoleLevel, ind *types.IndustryAssessment) (string, types.RoleLevel) {
	industryName := strings.ToLower(strings.TrimSpace(targetIndustry))
	if industryName == "" && ind != nil {
		industryName = ind.DetectedIndustry
	}
	level := targetLevel
	if level == "" && ind != nil {
		level = ind.RoleLevel.DetectedLevel
	}
	return industryName, level
}

// subScores computes the per-dimension signals in [0,1]. Dimensions whose
// producing stage is toggled off are absent; aggregate renormalizes the
// remaining weights.
func (e *Engine) subScores(resumeText string, targetLevel types.RoleLevel, sem *types.SemanticAnalysisResult, ind *types.IndustryAssessment, atsRes *types.ATSSimulationResult) map[string]float64 {
	scores := map[string]float64{
		"skills": sem.SimilarityScore,
	}

	sections := e.ref.DetectSections(resumeText)
	if atsRes != nil {
		scores["ats_compatibility"] = atsRes.OverallATSScore
		scores["keywords"] = keywordCoverage(atsRes.KeywordExtraction)
	}
	scores["format"] = formatScore(resumeText, sections)
	scores["education"] = educationScore(resumeText, sections, e.ref)

	if ind != nil {
		scores["experience"] = experienceAlignment(ind.RoleLevel, targetLevel)
	}
	return scores
}

// aggregate applies the weight table for (industry, level) and produces the
// clamped overall score on the 0-100 scale. Weights for absent dimensions are
// redistributed proportionally so the breakdown always sums to 1.
func (e *Engine) aggregate(industryName string, level types.RoleLevel, subScores map[string]float64) (types.ScoringBreakdown, float64) {
	table := e.ref.WeightsFor(industryName, level)

	activeWeight := 0.0
	for _, w := range table {
		if _, ok := subScores[w.Name]; ok {
			activeWeight += w.Weight
		}
	}

	breakdown := types.ScoringBreakdown{
		Industry:   industryName,
		RoleLevel:  level,
		Dimensions: make([]types.DimensionScore, 0, len(table)),
	}
	overall := 0.0
	for _, w := range table {
		score, ok := subScores[w.Name]
		if !ok {
			continue
		}
		weight := w.Weight
		if activeWeight > 0 {
			weight = w.Weight / activeWeight
		}
		weighted := weight * score
		overall += weighted
		breakdown.Dimensions = append(breakdown.Dimensions, types.DimensionScore{
			Name:     w.Name,
			Score:    score,
			Weight:   weight,
			Weighted: weighted,
		})
	}

	overall *= 100
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}
	return breakdown, overall
}

func keywordCoverage(extraction types.KeywordExtraction) float64 {
	total := len(extraction.KeywordsFound) + len(extraction.KeywordsMissing)
	if total == 0 {
		return 0
	}
	return float64(len(extraction.KeywordsFound)) / float64(total)
}

var levelRank = map[types.RoleLevel]int{
	types.LevelJunior: 0,
	types.LevelMid:    1,
	types.LevelSenior: 2,
	types.LevelLead:   3,
}

// experienceAlignment scores how well the detected seniority matches the
// target band. Without an explicit target, the detection confidence itself
// carries the signal.
func experienceAlignment(detected types.RoleLevelAssessment, target types.RoleLevel) float64 {
	if target == "" {
		return 0.5 + 0.5*detected.Confidence
	}
	distance := levelRank[detected.DetectedLevel] - levelRank[target]
	if distance < 0 {
		distance = -distance
	}
	return 1.0 - float64(distance)/3.0
}

// educationScore combines education-section presence with recognized
// credentials from the phrase lexicon.
func educationScore(resumeText string, sections []string, ref *refdata.Data) float64 {
	score := 0.0
	for _, sec := range sections {
		if sec == "education" {
			score += 0.6
			break
		}
	}
	for _, kw := range extraction.ExtractKeywords(resumeText, types.DocumentResume, ref) {
		if kw.Category == types.CategoryCredential {
			score += 0.4
			break
		}
	}
	return score
}
