package ats

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// cleanResume is well-formed: labeled sections, contact details, no layout
// traps any registered system penalizes.
const cleanResume = `John Smith
john.smith@email.com
(555) 123-4567

Summary
Software engineer with five years building web applications.

Experience
Software Engineer, Acme Corp
- Built REST APIs in Python serving 10k requests per minute
- Developed React dashboards for internal analytics
- Deployed services to AWS with automated pipelines

Education
BS Computer Science, State University

Skills
Python, React, AWS, PostgreSQL, Docker
`

func testSimulator(t *testing.T) *Simulator {
	t.Helper()
	ref, err := refdata.Shared()
	require.NoError(t, err)
	s, err := NewSimulator(ref, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestSimulate_WellFormedResume(t *testing.T) {
	s := testSimulator(t)

	result, err := s.Simulate(context.Background(), cleanResume, []string{"Python", "React", "AWS"})
	require.NoError(t, err)

	assert.True(t, result.Parsing.EmailDetected)
	assert.Equal(t, 0.95, result.Parsing.EmailConfidence)
	assert.True(t, result.Parsing.PhoneDetected)
	assert.Equal(t, 0.7, result.Parsing.PhoneConfidence)

	assert.Contains(t, result.Parsing.SectionsDetected, "experience")
	assert.Contains(t, result.Parsing.SectionsDetected, "education")
	assert.Contains(t, result.Parsing.SectionsDetected, "skills")

	assert.Equal(t, []string{"Python", "React", "AWS"}, result.KeywordExtraction.KeywordsFound)
	assert.Empty(t, result.KeywordExtraction.KeywordsMissing)

	assert.Greater(t, result.OverallATSScore, 0.5)
}

func TestSimulate_EmptyResume(t *testing.T) {
	s := testSimulator(t)

	_, err := s.Simulate(context.Background(), "   \n\t ", nil)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindDocumentParsing))
}

func TestSimulate_OverallIsMeanOfSystems(t *testing.T) {
	s := testSimulator(t)

	result, err := s.Simulate(context.Background(), cleanResume, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Systems)

	total := 0.0
	for _, sys := range result.Systems {
		assert.GreaterOrEqual(t, sys.Score, 0.0)
		assert.LessOrEqual(t, sys.Score, 1.0)
		total += sys.Score
	}
	assert.InDelta(t, total/float64(len(result.Systems)), result.OverallATSScore, 1e-9)
}

func TestSimulate_TablePenalty(t *testing.T) {
	s := testSimulator(t)

	tableResume := strings.Replace(cleanResume,
		"Python, React, AWS, PostgreSQL, Docker",
		"| Python | React | AWS |", 1)

	clean, err := s.Simulate(context.Background(), cleanResume, nil)
	require.NoError(t, err)
	tabled, err := s.Simulate(context.Background(), tableResume, nil)
	require.NoError(t, err)

	assert.Less(t, tabled.OverallATSScore, clean.OverallATSScore)

	var categories []string
	for _, rec := range tabled.Recommendations {
		categories = append(categories, rec.Category)
	}
	assert.Contains(t, categories, "tables")
}

func TestSimulate_MissingSections(t *testing.T) {
	s := testSimulator(t)

	result, err := s.Simulate(context.Background(), "Jane Doe\njane@example.com\nI write software and fix things.", nil)
	require.NoError(t, err)

	found := false
	for _, sys := range result.Systems {
		for _, rule := range sys.TriggeredRules {
			if rule.Category == "missing_section_experience" {
				found = true
				assert.Equal(t, types.SeverityMedium, rule.Severity)
				assert.Greater(t, rule.Penalty, 0.0)
			}
		}
	}
	assert.True(t, found, "unlabeled resume should trigger missing-section rules")

	var categories []string
	for _, rec := range result.Recommendations {
		categories = append(categories, rec.Category)
	}
	assert.Contains(t, categories, "missing_section_experience")
}

func TestSimulate_ScoreFloorsAtZero(t *testing.T) {
	s := testSimulator(t)

	// Tables, decorative glyphs, tab columns, no labeled sections.
	hostile := "| ★ NAME ★ | JOHN |\n\t\tjack of all trades\n| skills | many |\n| more | rows |"
	result, err := s.Simulate(context.Background(), hostile, nil)
	require.NoError(t, err)

	for _, sys := range result.Systems {
		assert.GreaterOrEqual(t, sys.Score, 0.0, "system %s", sys.SystemID)
	}
}

func TestSimulate_KeywordExtractionPreservesOrder(t *testing.T) {
	s := testSimulator(t)

	result, err := s.Simulate(context.Background(), cleanResume,
		[]string{"AWS", "kafka", "Python", "terraform"})
	require.NoError(t, err)

	assert.Equal(t, []string{"AWS", "Python"}, result.KeywordExtraction.KeywordsFound)
	assert.Equal(t, []string{"kafka", "terraform"}, result.KeywordExtraction.KeywordsMissing)
}

func TestSimulate_NoTargetKeywords(t *testing.T) {
	s := testSimulator(t)

	result, err := s.Simulate(context.Background(), cleanResume, nil)
	require.NoError(t, err)

	assert.Empty(t, result.KeywordExtraction.KeywordsFound)
	assert.Empty(t, result.KeywordExtraction.KeywordsMissing)
	assert.NotNil(t, result.KeywordExtraction.KeywordsFound)
}

func TestSimulate_Deterministic(t *testing.T) {
	s := testSimulator(t)

	first, err := s.Simulate(context.Background(), cleanResume, []string{"Python"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := s.Simulate(context.Background(), cleanResume, []string{"Python"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
