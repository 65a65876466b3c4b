package wizard

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextGatesCurrentStep(t *testing.T) {
	blocked := errors.New("missing field")
	pass := false
	m := NewMachine(3, map[int]Gate{
		1: func(context.Context) error {
			if !pass {
				return blocked
			}
			return nil
		},
	})
	ctx := context.Background()

	err := m.Next(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, blocked)
	assert.Equal(t, 1, m.Step())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Step)

	pass = true
	require.NoError(t, m.Next(ctx))
	assert.Equal(t, 2, m.Step())
}

func TestNextCapsAtLastStep(t *testing.T) {
	m := NewMachine(2, nil)
	ctx := context.Background()

	require.NoError(t, m.Next(ctx))
	require.NoError(t, m.Next(ctx))
	assert.Equal(t, 2, m.Step())
}

func TestPrevIsUnconditional(t *testing.T) {
	m := NewMachine(3, map[int]Gate{
		1: func(context.Context) error { return errors.New("always blocked") },
	})

	m.Prev()
	assert.Equal(t, 1, m.Step())

	m.step = 3
	m.Prev()
	assert.Equal(t, 2, m.Step())
}

func TestJumpBackwardIsFree(t *testing.T) {
	m := NewMachine(4, map[int]Gate{
		3: func(context.Context) error { return errors.New("blocked") },
	})
	m.step = 3

	require.NoError(t, m.JumpTo(context.Background(), 1))
	assert.Equal(t, 1, m.Step())
}

func TestJumpForwardGatesOnlyCurrentStep(t *testing.T) {
	calls := map[int]int{}
	gate := func(step int, fail bool) Gate {
		return func(context.Context) error {
			calls[step]++
			if fail {
				return errors.New("blocked")
			}
			return nil
		}
	}
	m := NewMachine(4, map[int]Gate{
		1: gate(1, false),
		2: gate(2, true),
	})

	require.NoError(t, m.JumpTo(context.Background(), 4))
	assert.Equal(t, 4, m.Step())
	assert.Equal(t, 1, calls[1])
	assert.Equal(t, 0, calls[2])
}

func TestJumpClampsTarget(t *testing.T) {
	m := NewMachine(3, nil)

	require.NoError(t, m.JumpTo(context.Background(), 99))
	assert.Equal(t, 3, m.Step())

	require.NoError(t, m.JumpTo(context.Background(), -5))
	assert.Equal(t, 1, m.Step())
}

func TestValidateAllChecksEveryGate(t *testing.T) {
	m := NewMachine(3, map[int]Gate{
		1: func(context.Context) error { return nil },
		3: func(context.Context) error { return errors.New("still invalid") },
	})

	err := m.ValidateAll(context.Background())
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 3, stepErr.Step)
}

func TestReset(t *testing.T) {
	m := NewMachine(3, nil)
	m.step = 3
	m.Reset()
	assert.Equal(t, 1, m.Step())
}
