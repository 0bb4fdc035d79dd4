package types

// DimensionScore is one named component of the composite score. Weight comes
// from the active weight table; Weighted = Score * Weight.
type DimensionScore struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// ScoringBreakdown maps dimension names to weighted sub-scores. Dimensions
// preserves weight-table order so identical inputs serialize identically.
type ScoringBreakdown struct {
	Industry   string           `json:"industry"`
	RoleLevel  RoleLevel        `json:"role_level"`
	Dimensions []DimensionScore `json:"dimensions"`
}

// Dimension returns the named dimension and whether it exists.
func (b *ScoringBreakdown) Dimension(name string) (DimensionScore, bool) {
	for _, d := range b.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return DimensionScore{}, false
}

// TotalWeight sums the configured weights; for a valid table this is ~1.0.
func (b *ScoringBreakdown) TotalWeight() float64 {
	total := 0.0
	for _, d := range b.Dimensions {
		total += d.Weight
	}
	return total
}

// ComprehensiveAnalysisResult is the terminal artifact of one evaluation. It
// is constructed once per request and never mutated; downstream consumers
// only read it.
type ComprehensiveAnalysisResult struct {
	OverallScore float64                 `json:"overall_score"`
	Semantic     *SemanticAnalysisResult `json:"semantic_analysis"`
	Industry     *IndustryAssessment     `json:"industry_assessment"`
	ATS          *ATSSimulationResult    `json:"ats_simulation"`
	Breakdown    ScoringBreakdown        `json:"scoring_breakdown"`
}
