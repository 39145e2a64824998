// Package transition implements the timed fade used to hide level swaps.
//
// An Effect walks Idle -> FadeOut -> Loading -> FadeIn -> Idle. The action
// passed to Start runs exactly once, on the update that ends FadeOut, and the
// Loading phase lasts exactly one update regardless of dt. Renderers draw a
// full-screen overlay at Alpha.
package transition

import (
	"strings"

	"github.com/milk9111/pipescroller/common"
	"github.com/tanema/gween/ease"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadeOut
	PhaseLoading
	PhaseFadeIn
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFadeOut:
		return "fade_out"
	case PhaseLoading:
		return "loading"
	case PhaseFadeIn:
		return "fade_in"
	default:
		return "unknown"
	}
}

// Effect is a reusable fade state machine. It is not safe for concurrent use.
type Effect struct {
	phase   Phase
	elapsed float64

	fadeOut float64
	fadeIn  float64

	// shape maps linear progress to alpha; nil means linear.
	shape ease.TweenFunc

	onMidpoint func()
}

// New returns an idle effect with the given phase durations in seconds.
// A duration of zero or less makes that fade instant: its alpha sits at the
// fade's end value (1 out, 0 in) from the first frame, and the phase still
// lasts one Update.
func New(fadeOut, fadeIn float64) *Effect {
	return &Effect{fadeOut: fadeOut, fadeIn: fadeIn}
}

// SetEase shapes the alpha curve of both fades. Phase timing is unaffected.
func (e *Effect) SetEase(fn ease.TweenFunc) {
	e.shape = fn
}

// Start begins a fade-out that will run action at its end. Starting while a
// transition is already running is ignored and reports false; the pending
// action is kept.
func (e *Effect) Start(action func()) bool {
	if e.phase != PhaseIdle {
		return false
	}
	e.onMidpoint = action
	e.elapsed = 0
	e.phase = PhaseFadeOut
	return true
}

// Update advances the effect by dt seconds. At most one phase change happens
// per call.
func (e *Effect) Update(dt float64) {
	if e.phase == PhaseIdle {
		return
	}

	e.elapsed += dt

	switch e.phase {
	case PhaseFadeOut:
		if e.elapsed >= e.fadeOut {
			action := e.onMidpoint
			e.onMidpoint = nil
			if action != nil {
				action()
			}
			e.elapsed = 0
			e.phase = PhaseLoading
		}
	case PhaseLoading:
		e.elapsed = 0
		e.phase = PhaseFadeIn
	case PhaseFadeIn:
		if e.elapsed >= e.fadeIn {
			e.elapsed = 0
			e.phase = PhaseIdle
		}
	}
}

// Alpha is the overlay opacity in [0, 1].
func (e *Effect) Alpha() float64 {
	switch e.phase {
	case PhaseFadeOut:
		return e.shaped(progress(e.elapsed, e.fadeOut))
	case PhaseLoading:
		return 1
	case PhaseFadeIn:
		return 1 - e.shaped(progress(e.elapsed, e.fadeIn))
	default:
		return 0
	}
}

func (e *Effect) Phase() Phase { return e.phase }

func (e *Effect) Active() bool { return e.phase != PhaseIdle }

// Elapsed is the time spent in the current phase.
func (e *Effect) Elapsed() float64 { return e.elapsed }

// SetDurations changes the fade lengths, with the same rules as New. The
// current phase keeps its elapsed time.
func (e *Effect) SetDurations(fadeOut, fadeIn float64) {
	e.fadeOut = fadeOut
	e.fadeIn = fadeIn
}

func (e *Effect) shaped(p float64) float64 {
	if e.shape == nil {
		return p
	}
	return common.Clamp01(float64(e.shape(float32(p), 0, 1, 1)))
}

// progress is elapsed/duration clamped to [0, 1]; a zero duration counts as
// complete.
func progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return common.Clamp01(elapsed / duration)
}

// EaseByName resolves an easing curve by its config name. "linear" and the
// empty string resolve to nil, the exact linear ramp.
func EaseByName(name string) (ease.TweenFunc, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return nil, true
	case "in_quad":
		return ease.InQuad, true
	case "out_quad":
		return ease.OutQuad, true
	case "in_out_quad":
		return ease.InOutQuad, true
	case "in_out_sine":
		return ease.InOutSine, true
	case "in_out_cubic":
		return ease.InOutCubic, true
	default:
		return nil, false
	}
}
