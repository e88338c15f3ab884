// Package operations runs a salary survey report as an ordered list of Steps.
//
// Manager executes the Steps registered in a Registry one after another
// against a shared RunState. Each Step runs in its own OpenTelemetry span and
// records its duration; the first failure stops the run and marks the
// remaining Steps skipped.
//
// NewSurveyPipeline wires the standard Steps from configuration:
//
//	load -> normalize -> aggregate -> output -> chart | table | export
//
// Example usage:
//
//	manager, err := operations.NewSurveyPipeline(cfg, paths, operations.PipelineDeps{
//		Logger:  logger,
//		Metrics: metrics,
//		Stdout:  os.Stdout,
//	})
//	state := operations.NewRunState(runID, cfg.Input.Path)
//	err = manager.Execute(ctx, state)
package operations
