package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

const frame = 1.0 / 60.0

func TestIdleIsInert(t *testing.T) {
	e := New(0.5, 0.5)
	e.Update(10)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 0.0, e.Alpha())
	assert.False(t, e.Active())
}

func TestFullCycle(t *testing.T) {
	e := New(0.5, 0.25)
	calls := 0
	require.True(t, e.Start(func() { calls++ }))
	assert.Equal(t, PhaseFadeOut, e.Phase())
	assert.Equal(t, 0.0, e.Alpha())

	e.Update(0.25)
	assert.Equal(t, PhaseFadeOut, e.Phase())
	assert.InDelta(t, 0.5, e.Alpha(), 1e-9)
	assert.Zero(t, calls)

	e.Update(0.25)
	assert.Equal(t, PhaseLoading, e.Phase())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, e.Alpha())
	assert.Zero(t, e.Elapsed())

	// Loading lasts one update no matter how small dt is.
	e.Update(0)
	assert.Equal(t, PhaseFadeIn, e.Phase())
	assert.Equal(t, 1.0, e.Alpha())

	e.Update(0.125)
	assert.InDelta(t, 0.5, e.Alpha(), 1e-9)

	e.Update(0.125)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 0.0, e.Alpha())
	assert.Equal(t, 1, calls)
}

func TestActionRunsOnceAcrossManySmallSteps(t *testing.T) {
	e := New(0.5, 0.5)
	calls := 0
	e.Start(func() { calls++ })

	var phases []Phase
	for i := 0; i < 200; i++ {
		before := e.Phase()
		e.Update(frame)
		if e.Phase() != before {
			phases = append(phases, e.Phase())
		}
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, []Phase{PhaseLoading, PhaseFadeIn, PhaseIdle}, phases)
}

func TestAlphaIsMonotonicDuringFades(t *testing.T) {
	e := New(0.3, 0.3)
	e.Start(nil)

	prev := e.Alpha()
	for e.Phase() == PhaseFadeOut {
		e.Update(frame)
		a := e.Alpha()
		assert.GreaterOrEqual(t, a, prev)
		assert.LessOrEqual(t, a, 1.0)
		prev = a
	}
	e.Update(frame) // leave Loading
	prev = e.Alpha()
	for e.Phase() == PhaseFadeIn {
		e.Update(frame)
		a := e.Alpha()
		assert.LessOrEqual(t, a, prev)
		assert.GreaterOrEqual(t, a, 0.0)
		prev = a
	}
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestStartWhileActiveIsIgnored(t *testing.T) {
	e := New(0.5, 0.5)
	first, second := 0, 0
	require.True(t, e.Start(func() { first++ }))
	e.Update(0.2)

	assert.False(t, e.Start(func() { second++ }))
	assert.InDelta(t, 0.2, e.Elapsed(), 1e-9, "restart must not reset the timer")

	e.Update(0.31)
	assert.Equal(t, 1, first)
	assert.Zero(t, second)

	e.Update(frame)
	assert.False(t, e.Start(nil), "fade-in is still active")
	e.Update(1)
	require.Equal(t, PhaseIdle, e.Phase())
	assert.True(t, e.Start(func() { second++ }), "idle effect is reusable")
}

func TestOvershootingDtChangesOnePhasePerUpdate(t *testing.T) {
	e := New(0.1, 0.1)
	e.Start(nil)
	e.Update(5)
	assert.Equal(t, PhaseLoading, e.Phase())
	e.Update(5)
	assert.Equal(t, PhaseFadeIn, e.Phase())
	assert.Equal(t, 1.0, e.Alpha())
	e.Update(5)
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestZeroDurations(t *testing.T) {
	e := New(0, 0)
	calls := 0
	e.Start(func() { calls++ })
	assert.Equal(t, 1.0, e.Alpha())
	e.Update(0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, e.Alpha())
	e.Update(0)
	require.Equal(t, PhaseFadeIn, e.Phase())
	assert.Equal(t, 0.0, e.Alpha(), "an instant fade-in is already clear")
	e.Update(0)
	assert.Equal(t, PhaseIdle, e.Phase())

	neg := New(-1, -1)
	neg.Start(nil)
	assert.Equal(t, 1.0, neg.Alpha())
	neg.Update(frame)
	assert.Equal(t, PhaseLoading, neg.Phase())
}

func TestEaseShapesAlphaOnly(t *testing.T) {
	e := New(1, 1)
	e.SetEase(ease.InQuad)
	e.Start(nil)
	e.Update(0.5)
	assert.InDelta(t, 0.25, e.Alpha(), 1e-6)
	assert.Equal(t, PhaseFadeOut, e.Phase())
	e.Update(0.5)
	assert.Equal(t, PhaseLoading, e.Phase())
}

func TestEaseByName(t *testing.T) {
	cases := []struct {
		name    string
		wantNil bool
		ok      bool
	}{
		{"", true, true},
		{"Linear", true, true},
		{"in_out_quad", false, true},
		{"bounce_everywhere", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fn, ok := EaseByName(c.name)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.wantNil, fn == nil)
		})
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "fade_out", PhaseFadeOut.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
