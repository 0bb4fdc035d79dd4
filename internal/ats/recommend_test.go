package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestBuildRecommendations_AggregatesByCategory(t *testing.T) {
	triggered := []types.TriggeredRule{
		{PatternID: "workday_table", Category: "tables", Severity: types.SeverityHigh, Penalty: 0.2},
		{PatternID: "lever_table", Category: "tables", Severity: types.SeverityMedium, Penalty: 0.12},
		{PatternID: "workday_tabs", Category: "layout", Severity: types.SeverityLow, Penalty: 0.05},
	}

	recs := buildRecommendations(triggered, map[string]string{"tables": "Remove table layouts."})

	require.Len(t, recs, 2)
	assert.Equal(t, "tables", recs[0].Category)
	assert.InDelta(t, 0.32, recs[0].TotalPenalty, 1e-9)
	assert.Equal(t, "Remove table layouts.", recs[0].Message)
	assert.Equal(t, "layout", recs[1].Category)
}

func TestBuildRecommendations_KeepsHighestSeverity(t *testing.T) {
	triggered := []types.TriggeredRule{
		{Category: "tables", Severity: types.SeverityLow, Penalty: 0.05},
		{Category: "tables", Severity: types.SeverityCritical, Penalty: 0.25},
		{Category: "tables", Severity: types.SeverityMedium, Penalty: 0.1},
	}

	recs := buildRecommendations(triggered, nil)

	require.Len(t, recs, 1)
	assert.Equal(t, types.SeverityCritical, recs[0].Severity)
	assert.InDelta(t, 0.4, recs[0].TotalPenalty, 1e-9)
}

func TestBuildRecommendations_OrderByPenaltyThenCategory(t *testing.T) {
	triggered := []types.TriggeredRule{
		{Category: "layout", Severity: types.SeverityLow, Penalty: 0.1},
		{Category: "formatting", Severity: types.SeverityLow, Penalty: 0.1},
		{Category: "tables", Severity: types.SeverityHigh, Penalty: 0.3},
	}

	recs := buildRecommendations(triggered, nil)

	require.Len(t, recs, 3)
	assert.Equal(t, "tables", recs[0].Category)
	// Equal penalties fall back to category name order.
	assert.Equal(t, "formatting", recs[1].Category)
	assert.Equal(t, "layout", recs[2].Category)
}

func TestBuildRecommendations_Empty(t *testing.T) {
	assert.Empty(t, buildRecommendations(nil, nil))
}

func TestMessageFor_MissingSectionFallback(t *testing.T) {
	msg := messageFor("missing_section_skills", nil)
	assert.Contains(t, msg, "skills")

	generic := messageFor("something_else", nil)
	assert.Contains(t, generic, "something_else")
}
