package types

// PatternSeverity classifies how badly a triggered detection pattern hurts
// parseability in the emulated system.
type PatternSeverity string

const (
	SeverityLow      PatternSeverity = "low"
	SeverityMedium   PatternSeverity = "medium"
	SeverityHigh     PatternSeverity = "high"
	SeverityCritical PatternSeverity = "critical"
)

// DetectionPattern is a single structural rule inside an ATS profile. Pattern
// is an uncompiled regular expression; Penalty is subtracted from the system
// score when it matches.
type DetectionPattern struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Pattern  string          `json:"pattern"`
	Severity PatternSeverity `json:"severity"`
	Penalty  float64         `json:"penalty"`
	Advice   string          `json:"advice"`
}

// ATSSystemProfile is the static configuration for one emulated screening
// system. Profiles are loaded once and never mutated by the simulator.
type ATSSystemProfile struct {
	SystemID         string             `json:"system_id"`
	Name             string             `json:"name"`
	RequiredSections []string           `json:"required_sections"`
	SectionPenalty   float64            `json:"section_penalty"`
	Patterns         []DetectionPattern `json:"patterns"`
}

// TriggeredRule records one detection pattern that fired during simulation.
type TriggeredRule struct {
	PatternID string          `json:"pattern_id"`
	Category  string          `json:"category"`
	Severity  PatternSeverity `json:"severity"`
	Penalty   float64         `json:"penalty"`
}

// ATSSystemSimulationResult is the outcome for a single emulated system.
type ATSSystemSimulationResult struct {
	SystemID       string          `json:"system_id"`
	Score          float64         `json:"score"`
	TriggeredRules []TriggeredRule `json:"triggered_rules"`
}

// ParsingAnalysis holds the structural facts extracted from the resume:
// contact-info detection with per-field extraction confidence, and the
// section headings that were recognized.
type ParsingAnalysis struct {
	EmailDetected    bool     `json:"email_detected"`
	EmailConfidence  float64  `json:"email_confidence"`
	PhoneDetected    bool     `json:"phone_detected"`
	PhoneConfidence  float64  `json:"phone_confidence"`
	SectionsDetected []string `json:"sections_detected"`
}

// KeywordExtraction summarizes which target keywords appear anywhere in the
// resume token set, independent of semantic matching.
type KeywordExtraction struct {
	KeywordsFound   []string `json:"keywords_found"`
	KeywordsMissing []string `json:"keywords_missing"`
}

// Recommendation is an optimization suggestion derived from triggered penalty
// rules. TotalPenalty is the aggregate score impact the category represents
// across all simulated systems.
type Recommendation struct {
	Category     string          `json:"category"`
	Message      string          `json:"message"`
	Severity     PatternSeverity `json:"severity"`
	TotalPenalty float64         `json:"total_penalty"`
}

// ATSSimulationResult aggregates the per-system outcomes. OverallATSScore is
// the arithmetic mean of the per-system scores; Systems preserves profile
// registration order.
type ATSSimulationResult struct {
	Systems           []ATSSystemSimulationResult `json:"systems"`
	OverallATSScore   float64                     `json:"overall_ats_score"`
	Parsing           ParsingAnalysis             `json:"parsing_analysis"`
	KeywordExtraction KeywordExtraction           `json:"keyword_extraction"`
	Recommendations   []Recommendation            `json:"recommendations"`
}
