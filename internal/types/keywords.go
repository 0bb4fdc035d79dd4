package types

// KeywordCategory classifies how a keyword functions in a document.
type KeywordCategory string

const (
	CategorySkill      KeywordCategory = "skill"
	CategoryTool       KeywordCategory = "tool"
	CategoryCredential KeywordCategory = "credential"
	CategoryGeneral    KeywordCategory = "general"
)

// Keyword is a normalized term or phrase extracted from a document.
type Keyword struct {
	Term     string          `json:"term"`
	Origin   DocumentKind    `json:"origin"`
	Weight   float64         `json:"weight"`
	Category KeywordCategory `json:"category,omitempty"`
}

// MatchKind classifies how a job-description keyword was matched against the resume.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchSynonym MatchKind = "synonym"
	MatchFuzzy   MatchKind = "fuzzy"
	MatchMissing MatchKind = "missing"
)

// KeywordMatch pairs a job-description keyword with the resume keyword that
// satisfied it, or records it as missing. Confidence is in [0,1].
type KeywordMatch struct {
	JobKeyword    string    `json:"job_keyword"`
	ResumeKeyword string    `json:"resume_keyword,omitempty"`
	Kind          MatchKind `json:"kind"`
	Confidence    float64   `json:"confidence"`
}

// SemanticAnalysisResult is the output of the semantic matcher.
// All scores are in [0,1]; confidence is 0 only when no job keywords exist.
type SemanticAnalysisResult struct {
	Matches           []KeywordMatch `json:"matches"`
	SimilarityScore   float64        `json:"similarity_score"`
	IndustryRelevance float64        `json:"industry_relevance_score"`
	ConfidenceScore   float64        `json:"confidence_score"`
}

// MatchedKeywords returns the resume-side terms of all non-missing matches.
func (r *SemanticAnalysisResult) MatchedKeywords() []string {
	matched := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Kind != MatchMissing {
			matched = append(matched, m.JobKeyword)
		}
	}
	return matched
}

// MissingKeywords returns the job-description terms no resume keyword satisfied.
func (r *SemanticAnalysisResult) MissingKeywords() []string {
	missing := make([]string, 0)
	for _, m := range r.Matches {
		if m.Kind == MatchMissing {
			missing = append(missing, m.JobKeyword)
		}
	}
	return missing
}
