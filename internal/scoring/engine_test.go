package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const testResume = `John Smith
john.smith@email.com
(555) 123-4567

Summary
Senior software engineer with 8 years building backend systems.

Experience
Software Engineer, Acme Corp
- Built REST APIs in python serving high traffic
- Deployed docker containers to aws with automated pipelines
- Mentored junior engineers and led code review

Education
BS Computer Science, State University

Skills
python, docker, aws, postgresql, kubernetes
`

const testJob = `Senior Backend Engineer

We are hiring a senior engineer with python, docker, aws and kubernetes
experience to build distributed systems. Mentoring and code review are part
of the role.
`

func testEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	ref, err := refdata.Shared()
	require.NoError(t, err)
	engine, err := NewEngine(ref, opts, zap.NewNop())
	require.NoError(t, err)
	return engine
}

func TestComprehensiveAnalysis_FullPipeline(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	result, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
	require.NoError(t, err)

	require.NotNil(t, result.Semantic)
	require.NotNil(t, result.Industry)
	require.NotNil(t, result.ATS)

	assert.Equal(t, "technology", result.Industry.DetectedIndustry)
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.Greater(t, result.OverallScore, 50.0, "a well-matched resume should score above the midpoint")
}

func TestComprehensiveAnalysis_BreakdownWeightsSumToOne(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	result, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Breakdown.TotalWeight(), 1e-9)

	for _, dim := range result.Breakdown.Dimensions {
		assert.GreaterOrEqual(t, dim.Score, 0.0, dim.Name)
		assert.LessOrEqual(t, dim.Score, 1.0, dim.Name)
		assert.InDelta(t, dim.Score*dim.Weight, dim.Weighted, 1e-9, dim.Name)
	}

	for _, name := range []string{"skills", "experience", "keywords", "education", "format", "ats_compatibility"} {
		_, ok := result.Breakdown.Dimension(name)
		assert.True(t, ok, "dimension %s present", name)
	}
}

func TestComprehensiveAnalysis_Deterministic(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	first, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComprehensiveAnalysis_EmptyResume(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	_, err := engine.ComprehensiveAnalysis(context.Background(), "  \n ", testJob, "", "")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindDocumentParsing))
}

func TestComprehensiveAnalysis_EmptyJobDescription(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	_, err := engine.ComprehensiveAnalysis(context.Background(), testResume, "", "", "")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindValidation))
}

func TestComprehensiveAnalysis_ATSDisabled(t *testing.T) {
	engine := testEngine(t, Options{IndustryAnalysis: true, ATSChecks: false})

	result, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
	require.NoError(t, err)

	assert.Nil(t, result.ATS)
	_, ok := result.Breakdown.Dimension("ats_compatibility")
	assert.False(t, ok)
	_, ok = result.Breakdown.Dimension("keywords")
	assert.False(t, ok)

	// Remaining weights are renormalized, not left short.
	assert.InDelta(t, 1.0, result.Breakdown.TotalWeight(), 1e-9)
}

func TestComprehensiveAnalysis_IndustryDisabled(t *testing.T) {
	engine := testEngine(t, Options{IndustryAnalysis: false, ATSChecks: true})

	result, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
	require.NoError(t, err)

	assert.Nil(t, result.Industry)
	_, ok := result.Breakdown.Dimension("experience")
	assert.False(t, ok)
	assert.InDelta(t, 1.0, result.Breakdown.TotalWeight(), 1e-9)
}

func TestComprehensiveAnalysis_ExplicitTargetsWin(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	result, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "Finance", types.LevelJunior)
	require.NoError(t, err)

	assert.Equal(t, "finance", result.Breakdown.Industry)
	assert.Equal(t, types.LevelJunior, result.Breakdown.RoleLevel)
	// Detection still runs and reports its own verdict.
	assert.Equal(t, "technology", result.Industry.DetectedIndustry)
}

func TestComprehensiveAnalysis_DetectedTargetsFillGaps(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	result, err := engine.ComprehensiveAnalysis(context.Background(), testResume, testJob, "", "")
	require.NoError(t, err)

	assert.Equal(t, result.Industry.DetectedIndustry, result.Breakdown.Industry)
	assert.Equal(t, result.Industry.RoleLevel.DetectedLevel, result.Breakdown.RoleLevel)
}

func TestComprehensiveAnalysis_CancelledContext(t *testing.T) {
	engine := testEngine(t, DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ComprehensiveAnalysis(ctx, testResume, testJob, "", "")
	assert.ErrorIs(t, err, context.Canceled)
}
