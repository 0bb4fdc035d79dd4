package prompt

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Default generation parameters passed through to the inference collaborator.
const (
	defaultTemperature = 0.2
	defaultMaxTokens   = 2048

	// charsPerToken is the estimation divisor; the estimate only needs to
	// be positive and monotonic in input length.
	charsPerToken = 4
)

// strategies names the composition strategy per prompt type.
var strategies = map[types.PromptType]string{
	types.PromptResumeAnalysis:   "structured_assessment",
	types.PromptJobMatch:         "comparative_match",
	types.PromptOptimizationPlan: "prioritized_actions",
}

// Composer builds formatted prompts from analysis outputs. It is stateless
// beyond the embedded templates and safe for concurrent use.
type Composer struct {
	validate *validator.Validate
}

// NewComposer creates a Composer.
func NewComposer() *Composer {
	return &Composer{validate: validator.New()}
}

// Compose builds the request for the inference collaborator. It fails with a
// configuration error when the prompt type is unrecognized and a validation
// error when required fields are missing.
func (c *Composer) Compose(req types.PromptRequest) (*types.PromptResponse, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, types.NewValidationError("invalid prompt request: %v", err)
	}

	strategy, ok := strategies[req.Type]
	if !ok {
		return nil, types.NewConfigurationError("unrecognized prompt type %q", req.Type)
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, types.NewConfigurationError("loading prompt templates: %v", err)
	}
	template, ok := tmpl[string(req.Type)]
	if !ok {
		return nil, types.NewConfigurationError("no template registered for prompt type %q", req.Type)
	}

	formatted := formatTemplate(template, map[string]string{
		"ResumeText":   req.ResumeText,
		"JobText":      req.JobText,
		"Context":      contextSummary(req),
		"Focus":        focusList(req.AnalysisFocus),
		"OutputFormat": outputFormat(req.OutputFormat),
	})

	estimated := len(formatted)/charsPerToken + 1

	return &types.PromptResponse{
		FormattedPrompt: formatted,
		ModelConfig: types.ModelConfig{
			Model:       req.TargetModel,
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		},
		EstimatedTokens: estimated,
		Strategy:        strategy,
	}, nil
}

// contextSummary folds the optional analysis artifacts into a compact text
// block the model can condition on.
func contextSummary(req types.PromptRequest) string {
	var parts []string
	if req.Industry != nil {
		parts = append(parts, fmt.Sprintf("Detected industry: %s (confidence %.2f), level: %s (confidence %.2f).",
			req.Industry.DetectedIndustry, req.Industry.Confidence,
			req.Industry.RoleLevel.DetectedLevel, req.Industry.RoleLevel.Confidence))
	}
	if req.Semantic != nil {
		parts = append(parts, fmt.Sprintf("Keyword similarity: %.2f. Missing keywords: %s.",
			req.Semantic.SimilarityScore, joinOrNone(req.Semantic.MissingKeywords())))
	}
	if len(parts) == 0 {
		return "No prior analysis available."
	}
	return strings.Join(parts, "\n")
}

func focusList(focus []string) string {
	if len(focus) == 0 {
		return "overall fit"
	}
	return strings.Join(focus, ", ")
}

func outputFormat(format string) string {
	if format == "" {
		return "plain text"
	}
	return format
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
