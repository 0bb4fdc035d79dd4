package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestFormatScore_WellFormedResume(t *testing.T) {
	lines := make([]string, 0, 30)
	lines = append(lines, "Experience")
	for i := 0; i < 12; i++ {
		lines = append(lines, "- Delivered project work across several production systems every quarter")
	}
	lines = append(lines, "Education", "BS Computer Science", "Skills", "Go SQL Docker")
	text := strings.Join(lines, "\n")

	score := formatScore(text, []string{"experience", "education", "skills"})
	assert.Equal(t, 1.0, score)
}

func TestFormatScore_MissingCoreSections(t *testing.T) {
	full := formatScore("text", []string{"experience", "education", "skills"})
	partial := formatScore("text", []string{"experience"})

	assert.InDelta(t, 2*missingSectionPenalty, full-partial, 1e-9)
}

func TestFormatScore_ShortDocument(t *testing.T) {
	short := formatScore("too short", []string{"experience", "education", "skills"})
	assert.Less(t, short, 1.0)
}

func TestFormatScore_LongLine(t *testing.T) {
	base := strings.Repeat("word word word word word word word word word word\n", 15)
	withLongLine := strings.Repeat("x", maxLineLen+1) + "\n" + base

	assert.Less(t,
		formatScore(withLongLine, []string{"experience", "education", "skills"}),
		formatScore(base, []string{"experience", "education", "skills"}))
}

func TestFormatScore_NeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, formatScore("", nil), 0.0)
}

func TestExperienceAlignment(t *testing.T) {
	detected := types.RoleLevelAssessment{DetectedLevel: types.LevelSenior, Confidence: 0.8}

	// Exact target hit scores full marks; distance degrades linearly.
	assert.Equal(t, 1.0, experienceAlignment(detected, types.LevelSenior))
	assert.InDelta(t, 1.0-1.0/3.0, experienceAlignment(detected, types.LevelMid), 1e-9)
	assert.InDelta(t, 1.0-3.0/3.0, experienceAlignment(
		types.RoleLevelAssessment{DetectedLevel: types.LevelJunior}, types.LevelLead), 1e-9)

	// Without a target the detection confidence carries the signal.
	assert.InDelta(t, 0.9, experienceAlignment(detected, ""), 1e-9)
}

func TestEducationScore(t *testing.T) {
	ref, err := refdata.Shared()
	require.NoError(t, err)

	none := educationScore("I fix bicycles.", nil, ref)
	sectionOnly := educationScore("Education\nBS Mathematics", []string{"education"}, ref)

	assert.Equal(t, 0.0, none)
	assert.InDelta(t, 0.6, sectionOnly, 1e-9)
}

func TestKeywordCoverage(t *testing.T) {
	assert.Equal(t, 0.0, keywordCoverage(types.KeywordExtraction{}))
	assert.InDelta(t, 0.5, keywordCoverage(types.KeywordExtraction{
		KeywordsFound:   []string{"python"},
		KeywordsMissing: []string{"kafka"},
	}), 1e-9)
	assert.Equal(t, 1.0, keywordCoverage(types.KeywordExtraction{
		KeywordsFound: []string{"python", "go"},
	}))
}
