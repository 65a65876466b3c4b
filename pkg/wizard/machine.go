// Package wizard models the step-gated linear flows (checkout, sell) as
// pure state machines over (step, gate predicates). Gates are injected so
// the machine knows nothing about field names or presentation.
package wizard

import (
	"context"
	"fmt"
)

// Gate reports whether a step's requirements hold; nil means the step
// passes. Failures carry the reason and are never fatal.
type Gate func(ctx context.Context) error

// StepError wraps a gate failure with the step it blocked.
type StepError struct {
	Step   int
	Reason error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d blocked: %v", e.Step, e.Reason)
}

func (e *StepError) Unwrap() error { return e.Reason }

// Machine is a linear, 1-based step machine with a fixed step count.
type Machine struct {
	step  int
	max   int
	gates map[int]Gate
}

// NewMachine starts at step 1. Steps without a gate always pass.
func NewMachine(max int, gates map[int]Gate) *Machine {
	return &Machine{step: 1, max: max, gates: gates}
}

func (m *Machine) Step() int { return m.step }
func (m *Machine) Max() int  { return m.max }

func (m *Machine) gate(ctx context.Context, step int) error {
	g, ok := m.gates[step]
	if !ok {
		return nil
	}
	if err := g(ctx); err != nil {
		return &StepError{Step: step, Reason: err}
	}
	return nil
}

// Next advances one step when the current step's gate passes, capped at the
// last step.
func (m *Machine) Next(ctx context.Context) error {
	if err := m.gate(ctx, m.step); err != nil {
		return err
	}
	if m.step < m.max {
		m.step++
	}
	return nil
}

// Prev moves back unconditionally; no re-validation going backward. At the
// floor it is a no-op.
func (m *Machine) Prev() {
	if m.step > 1 {
		m.step--
	}
}

// JumpTo revisits earlier steps freely. Jumping forward requires only the
// step being left to pass; intermediate steps are not cascade-validated.
func (m *Machine) JumpTo(ctx context.Context, target int) error {
	if target < 1 {
		target = 1
	}
	if target > m.max {
		target = m.max
	}
	if target > m.step {
		if err := m.gate(ctx, m.step); err != nil {
			return err
		}
	}
	m.step = target
	return nil
}

// ValidateAll re-checks every step's gate, for direct finalize actions that
// bypass step navigation. Draft data may have changed since a step was
// last marked valid.
func (m *Machine) ValidateAll(ctx context.Context) error {
	for s := 1; s <= m.max; s++ {
		if err := m.gate(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns to the first step.
func (m *Machine) Reset() { m.step = 1 }
