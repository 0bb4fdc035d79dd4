package types

// PromptType selects the composition strategy for an augmentation request.
type PromptType string

const (
	PromptResumeAnalysis   PromptType = "resume_analysis"
	PromptJobMatch         PromptType = "job_match"
	PromptOptimizationPlan PromptType = "optimization_plan"
)

// PromptRequest carries everything the composer needs to build a
// context-enriched request for the inference collaborator. The assessment and
// semantic fields are optional enrichment; the composer never computes them.
type PromptRequest struct {
	Type          PromptType              `json:"prompt_type" validate:"required"`
	TargetModel   string                  `json:"target_model_name" validate:"required"`
	ResumeText    string                  `json:"resume_text" validate:"required"`
	JobText       string                  `json:"job_text"`
	Industry      *IndustryAssessment     `json:"industry_assessment,omitempty"`
	Semantic      *SemanticAnalysisResult `json:"semantic_analysis,omitempty"`
	AnalysisFocus []string                `json:"analysis_focus,omitempty"`
	OutputFormat  string                  `json:"output_format,omitempty"`
}

// ModelConfig holds generation parameters passed through to the inference
// collaborator.
type ModelConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// PromptResponse is the composer's output. FormattedPrompt and Strategy are
// never empty; EstimatedTokens is positive and monotonic in input length.
type PromptResponse struct {
	FormattedPrompt string      `json:"formatted_prompt"`
	ModelConfig     ModelConfig `json:"model_config"`
	EstimatedTokens int         `json:"estimated_token_count"`
	Strategy        string      `json:"prompt_strategy"`
}
