package slide

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Animation spring tuning. The frequency/damping pair settles in roughly
// the transition durations the navigation machine uses, without overshoot
// large enough to read as bounce.
const (
	springFrequency = 9.0
	springDamping   = 1.0

	settleEpsilon = 0.5
)

// Animator eases the drag offset toward a target position one frame at a
// time: zero for a snap-back, plus or minus one step for a commit. The
// shell schedules at most one frame callback while Active reports true.
type Animator struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewAnimator creates an animator stepped at the given frame rate.
func NewAnimator(fps int) *Animator {
	if fps <= 0 {
		fps = 60
	}
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// SetImmediate places the offset without animating, killing any residual
// velocity. Used while a drag directly drives the offset and for the
// pre-paint reset after a committed index change.
func (a *Animator) SetImmediate(pos float64) {
	a.pos = pos
	a.vel = 0
	a.target = pos
	a.active = false
}

// AnimateTo starts easing from the current position toward target.
func (a *Animator) AnimateTo(target float64) {
	a.target = target
	a.active = true
}

// Step advances one frame and returns the new position. Once the spring
// settles the animator deactivates and the position pins to the target.
func (a *Animator) Step() float64 {
	if !a.active {
		return a.pos
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.pos = a.target
		a.vel = 0
		a.active = false
	}
	return a.pos
}

// Active reports whether an animation is still in flight.
func (a *Animator) Active() bool {
	return a.active
}

// Pos returns the current offset position.
func (a *Animator) Pos() float64 {
	return a.pos
}
