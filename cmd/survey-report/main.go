package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/config"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/infrastructure"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/operations"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one report generation and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("survey-report", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "", "survey export to read (.csv or .xlsx)")
	mode := fs.String("mode", config.ModeAll, "chart | table | json | xlsx | all")
	out := fs.String("out", "reports", "output directory")
	metricsFile := fs.String("metrics", "", "write pipeline metrics in Prometheus text format to this file")
	configFile := fs.String("config", "", "YAML config file (defaults to config.yaml or configs/config.yaml if present)")
	group := fs.String("group", strings.Join(config.DefaultGroupBy, ","), "comma-separated fields to summarize by")
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return 0
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "survey-report: %v\n", err)
		return 1
	}

	// Flags win over file and environment, but only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = *input
		case "mode":
			cfg.Output.Mode = *mode
		case "out":
			cfg.Output.Dir = *out
		case "metrics":
			cfg.Output.MetricsFile = *metricsFile
		case "group":
			cfg.Output.GroupBy = strings.Split(*group, ",")
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "survey-report: %v\n", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "survey-report: failed to initialize logger, using default: %v\n", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	runID := infrastructure.GetTraceID(ctx)

	otelCfg := infrastructure.OTelConfigFrom(cfg.Telemetry)
	otelCfg.TraceWriter = stderr
	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize OpenTelemetry", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "survey-report: %v\n", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("OpenTelemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	metrics, err := infrastructure.NewPipelineMetrics(providers.Meter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create pipeline metrics", slog.String("error", err.Error()))
		return 1
	}

	paths, err := config.NewPaths(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "survey-report: %v\n", err)
		return 1
	}
	paths.LogPathResolution(logger)

	logger.InfoContext(ctx, "Starting survey report",
		slog.String("version", contracts.Version),
		slog.String("input", cfg.Input.Path),
		slog.String("mode", cfg.Output.Mode),
		slog.String("output_dir", paths.ReportsDir),
		slog.Any("group_by", cfg.Output.GroupBy))

	var tableOut io.Writer
	if cfg.Output.Wants(config.ModeTable) {
		tableOut = stdout
	}

	manager, err := operations.NewSurveyPipeline(cfg, paths, operations.PipelineDeps{
		Logger:  logger,
		Metrics: metrics,
		Tracer:  providers.Tracer,
		Stdout:  tableOut,
	})
	if err != nil {
		fmt.Fprintf(stderr, "survey-report: %v\n", err)
		return 1
	}

	state := operations.NewRunState(runID, cfg.Input.Path)
	runErr := manager.Execute(ctx, state)

	if cfg.Output.MetricsFile != "" {
		if err := providers.WriteMetrics(cfg.Output.MetricsFile); err != nil {
			logger.WarnContext(ctx, "Failed to write metrics file",
				slog.String("path", cfg.Output.MetricsFile),
				slog.String("error", err.Error()))
		}
	}

	if runErr != nil {
		fmt.Fprintf(stderr, "survey-report: %v\n", runErr)
		return 1
	}

	logger.InfoContext(ctx, "Survey report complete",
		slog.Int("records_kept", state.Filter.Output),
		slog.Any("artifacts", state.Artifacts),
		slog.Duration("duration", state.Duration()))
	return 0
}
