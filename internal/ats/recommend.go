package ats

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var severityRank = map[types.PatternSeverity]int{
	types.SeverityLow:      1,
	types.SeverityMedium:   2,
	types.SeverityHigh:     3,
	types.SeverityCritical: 4,
}

// buildRecommendations turns the union of triggered penalty rules across all
// systems into optimization guidance: one recommendation per rule category,
// ordered by the total penalty weight that category represents, descending.
// The fixes with the greatest aggregate score impact surface first.
func buildRecommendations(triggered []types.TriggeredRule, advice map[string]string) []types.Recommendation {
	byCategory := make(map[string]*types.Recommendation)
	var order []string

	for _, rule := range triggered {
		rec, ok := byCategory[rule.Category]
		if !ok {
			rec = &types.Recommendation{
				Category: rule.Category,
				Message:  messageFor(rule.Category, advice),
				Severity: rule.Severity,
			}
			byCategory[rule.Category] = rec
			order = append(order, rule.Category)
		}
		rec.TotalPenalty += rule.Penalty
		if severityRank[rule.Severity] > severityRank[rec.Severity] {
			rec.Severity = rule.Severity
		}
	}

	recommendations := make([]types.Recommendation, 0, len(order))
	for _, category := range order {
		recommendations = append(recommendations, *byCategory[category])
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].TotalPenalty != recommendations[j].TotalPenalty {
			return recommendations[i].TotalPenalty > recommendations[j].TotalPenalty
		}
		return recommendations[i].Category < recommendations[j].Category
	})
	return recommendations
}

func messageFor(category string, advice map[string]string) string {
	if msg, ok := advice[category]; ok {
		return msg
	}
	if section, ok := strings.CutPrefix(category, "missing_section_"); ok {
		return "Add a clearly labeled " + section + " section; several systems require it for parsing."
	}
	return "Review formatting flagged under category " + category + "."
}
