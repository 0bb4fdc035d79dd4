package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logging"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/prompt"
	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	resumePath  string
	jobPath     string
	jobURL      string
	industry    string
	roleLevel   string
	jsonOutput  bool
	augment     bool
	augmentType string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&resumePath, "resume", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&jobPath, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&jobURL, "job-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVar(&industry, "industry", "", "Target industry (detected when omitted)")
	analyzeCmd.Flags().StringVar(&roleLevel, "level", "", "Target role level: junior, mid, senior, lead")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVar(&augment, "augment", false, "Request LLM augmentation after scoring")
	analyzeCmd.Flags().StringVar(&augmentType, "augment-type", string(types.PromptOptimizationPlan), "Prompt type for augmentation")
	_ = analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-url")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resumeText, err := ingestion.FromFile(resumePath)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(ctx)
	if err != nil {
		return err
	}

	ref, err := refdata.Shared()
	if err != nil {
		return err
	}
	engine, err := scoring.NewEngine(ref, scoring.Options{
		IndustryAnalysis: cfg.Features.IndustryAnalysis,
		ATSChecks:        cfg.Features.ATSChecks,
	}, log)
	if err != nil {
		return err
	}

	result, err := engine.ComprehensiveAnalysis(ctx, resumeText, jobText, industry, types.RoleLevel(roleLevel))
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSemantic(result.Semantic)
	printer.PrintIndustry(result.Industry)
	printer.PrintATS(result.ATS)
	printer.PrintBreakdown(result)

	if augment && cfg.Features.LLMAugmentation {
		return runAugmentation(ctx, cfg, result, resumeText, jobText)
	}
	return nil
}

func loadJobText(ctx context.Context) (string, error) {
	switch {
	case jobURL != "":
		return ingestion.FromURL(ctx, jobURL)
	case jobPath != "":
		return ingestion.FromFile(jobPath)
	default:
		return "", types.NewValidationError("either --job or --job-url is required")
	}
}

// runAugmentation composes a context-enriched prompt from the analysis and
// sends it to the inference collaborator. Failures here never invalidate the
// already-computed score.
func runAugmentation(ctx context.Context, cfg *config.Config, result *types.ComprehensiveAnalysisResult, resumeText, jobText string) error {
	composer := prompt.NewComposer()
	resp, err := composer.Compose(types.PromptRequest{
		Type:        types.PromptType(augmentType),
		TargetModel: cfg.GeminiModel,
		ResumeText:  resumeText,
		JobText:     jobText,
		Industry:    result.Industry,
		Semantic:    result.Semantic,
	})
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	text, err := client.Complete(ctx, resp)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
