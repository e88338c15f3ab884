package operations

import (
	"context"
	"log/slog"
	"time"
)

// logRunStart logs the start of a report run
func (m *Manager) logRunStart(ctx context.Context, state *RunState, steps int) {
	m.logger.InfoContext(ctx, "run_start",
		slog.String("run_id", state.ID),
		slog.String("source", state.Source),
		slog.Int("step_count", steps))
}

// logRunComplete logs the completion of a report run
func (m *Manager) logRunComplete(ctx context.Context, state *RunState) {
	m.logger.InfoContext(ctx, "run_complete",
		slog.String("run_id", state.ID),
		slog.String("status", string(state.Status)),
		slog.Int("artifacts", len(state.Artifacts)),
		slog.Duration("duration", state.Duration()))
}

// logRunError logs a failed report run
func (m *Manager) logRunError(ctx context.Context, state *RunState, err error) {
	m.logger.ErrorContext(ctx, "run_error",
		slog.String("run_id", state.ID),
		slog.String("failed_step", FailedStep(err)),
		slog.String("error", err.Error()))
}

// logStepStart logs the start of a Step execution
func (m *Manager) logStepStart(ctx context.Context, step Step, number, total int) {
	m.logger.InfoContext(ctx, "step_start",
		slog.String("step", step.ID()),
		slog.Int("step_number", number),
		slog.Int("total_steps", total))
}

// logStepComplete logs the completion of a Step execution
func (m *Manager) logStepComplete(ctx context.Context, step Step, duration time.Duration) {
	m.logger.InfoContext(ctx, "step_complete",
		slog.String("step", step.ID()),
		slog.Duration("duration", duration))
}

// logStepError logs a Step error
func (m *Manager) logStepError(ctx context.Context, step Step, duration time.Duration, err error) {
	m.logger.ErrorContext(ctx, "step_error",
		slog.String("step", step.ID()),
		slog.Duration("duration", duration),
		slog.String("error", err.Error()))
}
