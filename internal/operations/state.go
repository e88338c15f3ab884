package operations

import (
	"time"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// RunStatus represents the overall status of a report run
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunState carries one report run from the raw export to the written
// artifacts. Each batch is produced by exactly one Step and only read by the
// ones after it.
type RunState struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"`
	Status    RunStatus  `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Step states, keyed by Step ID, and the order they run in
	Steps     map[string]*StepState `json:"steps"`
	StepOrder []string              `json:"step_order"`

	Raw       []domain.RawRecord `json:"-"`
	Records   []domain.Record    `json:"-"`
	Filter    domain.FilterStats `json:"filter"`
	Summaries []domain.Summary   `json:"summaries"`

	// Artifacts lists every file the run wrote, in write order
	Artifacts []string `json:"artifacts"`

	Error error `json:"-"`
}

// NewRunState creates the state for a run reading source
func NewRunState(id, source string) *RunState {
	return &RunState{
		ID:        id,
		Source:    source,
		Status:    RunStatusPending,
		StartTime: time.Now(),
		Steps:     make(map[string]*StepState),
	}
}

// Start marks the run as running
func (r *RunState) Start() {
	r.Status = RunStatusRunning
	r.StartTime = time.Now()
}

// Complete marks the run as completed
func (r *RunState) Complete() {
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusCompleted
}

// Fail marks the run as failed
func (r *RunState) Fail(err error) {
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusFailed
	r.Error = err
}

// GetStep returns the state of a specific Step
func (r *RunState) GetStep(stepID string) *StepState {
	return r.Steps[stepID]
}

// AddStep registers the state of a Step that is about to run
func (r *RunState) AddStep(state *StepState) {
	if _, exists := r.Steps[state.ID]; !exists {
		r.StepOrder = append(r.StepOrder, state.ID)
	}
	r.Steps[state.ID] = state
}

// AddArtifact records a written file
func (r *RunState) AddArtifact(path string) {
	r.Artifacts = append(r.Artifacts, path)
}

// Duration returns the duration of the run
func (r *RunState) Duration() time.Duration {
	if r.EndTime != nil {
		return r.EndTime.Sub(r.StartTime)
	}
	return time.Since(r.StartTime)
}

// Report returns the machine-readable summary of the run
func (r *RunState) Report() domain.SummaryReport {
	return domain.SummaryReport{
		RunID:       r.ID,
		Source:      r.Source,
		GeneratedAt: r.StartTime.UTC().Format(time.RFC3339),
		Filter:      r.Filter,
		Summaries:   r.Summaries,
	}
}
