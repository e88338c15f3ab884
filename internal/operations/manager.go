package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/infrastructure"
)

// Manager runs the registered Steps of a pipeline in order. The first failing
// Step stops the run; the Steps after it are marked skipped.
type Manager struct {
	registry *Registry
	tracer   trace.Tracer
	metrics  *infrastructure.PipelineMetrics
	logger   *slog.Logger
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithTracer sets the tracer Steps run under
func WithTracer(tracer trace.Tracer) ManagerOption {
	return func(m *Manager) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

// WithMetrics sets the pipeline instruments
func WithMetrics(metrics *infrastructure.PipelineMetrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a new operation manager
func NewManager(registry *Registry, opts ...ManagerOption) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}

	m := &Manager{
		registry: registry,
		tracer:   otel.Tracer(infrastructure.InstrumentationName),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterStep registers a Step with the operation
func (m *Manager) RegisterStep(step Step) error {
	return m.registry.Register(step)
}

// GetRegistry returns the registry for accessing registered steps
func (m *Manager) GetRegistry() *Registry {
	return m.registry
}

// Execute runs every registered Step against state
func (m *Manager) Execute(ctx context.Context, state *RunState) error {
	ctx, span := m.tracer.Start(ctx, "survey.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", state.ID),
			attribute.String("run.source", state.Source),
		))
	defer span.End()

	steps := m.registry.List()
	for _, step := range steps {
		state.AddStep(NewStepState(step.ID(), step.Name()))
	}

	state.Start()
	m.logRunStart(ctx, state, len(steps))

	err := m.executeSequential(ctx, state, steps)
	if err != nil {
		state.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logRunError(ctx, state, err)
	} else {
		state.Complete()
		span.SetStatus(codes.Ok, "")
		m.logRunComplete(ctx, state)
	}

	span.SetAttributes(
		attribute.String("run.status", string(state.Status)),
		attribute.Int("run.records_kept", state.Filter.Output),
		attribute.Int("run.artifacts", len(state.Artifacts)),
	)
	m.metrics.RecordRun(ctx, err)

	return err
}

// executeSequential executes steps one by one
func (m *Manager) executeSequential(ctx context.Context, state *RunState, steps []Step) error {
	for i, step := range steps {
		if err := m.executeStep(ctx, state, step, i+1, len(steps)); err != nil {
			for _, rest := range steps[i+1:] {
				state.GetStep(rest.ID()).Skip(fmt.Sprintf("previous step %s failed", step.ID()))
			}
			return err
		}
	}
	return nil
}

// executeStep runs a single Step in its own span
func (m *Manager) executeStep(ctx context.Context, state *RunState, step Step, number, total int) error {
	stepState := state.GetStep(step.ID())
	if stepState == nil {
		return NewFatalError(fmt.Sprintf("no state for step %s", step.ID()), nil)
	}

	ctx, span := m.tracer.Start(ctx, step.ID(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
			attribute.Int("step.number", number),
		))
	defer span.End()

	m.logStepStart(ctx, step, number, total)
	stepState.Start()

	start := time.Now()
	err := step.Execute(ctx, state)
	duration := time.Since(start)
	m.metrics.RecordStep(ctx, step.ID(), duration, err)

	if err != nil {
		stepState.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logStepError(ctx, step, duration, err)
		return NewExecutionError(step.ID(), err)
	}

	stepState.Complete("")
	span.SetStatus(codes.Ok, "")
	m.logStepComplete(ctx, step, duration)
	return nil
}
