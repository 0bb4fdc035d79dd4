package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logging"
	"github.com/jonathan/resume-analyzer/internal/prompt"
	"github.com/jonathan/resume-analyzer/internal/refdata"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ref, err := refdata.Shared()
	if err != nil {
		return err
	}

	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}

		overrides, err := st.LoadWeightOverrides(ctx)
		if err != nil {
			return err
		}
		if len(overrides) > 0 {
			ref, err = ref.WithWeightOverrides(overrides)
			if err != nil {
				return err
			}
			log.Info("applied weight overrides", zap.Int("tables", len(overrides)))
		}
	} else {
		log.Info("no database configured, persistence disabled")
	}

	engine, err := scoring.NewEngine(ref, scoring.Options{
		IndustryAnalysis: cfg.Features.IndustryAnalysis,
		ATSChecks:        cfg.Features.ATSChecks,
	}, log)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:     cfg.ServerAddr,
		Engine:   engine,
		Composer: prompt.NewComposer(),
		Store:    st,
		Log:      log,
	})
	return srv.Start()
}
