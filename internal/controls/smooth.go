package controls

import "github.com/charmbracelet/harmonica"

// Spring tuning: moderate speed, critically damped (no overshoot).
const (
	springFrequency = 6.0
	springDamping   = 1.0
)

type axis struct {
	position float64
	velocity float64
}

// Smoother eases the displayed slider values toward keyboard-driven targets.
type Smoother struct {
	spring  harmonica.Spring
	Target  Values
	current Values
	axes    map[string]*axis
}

// NewSmoother creates a smoother stepping at the given frame rate,
// starting at rest on start.
func NewSmoother(fps int, start Values) *Smoother {
	s := &Smoother{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		Target:  start.Clamped(),
		current: start.Clamped(),
		axes:    make(map[string]*axis, len(Sliders)),
	}
	for _, sl := range Sliders {
		v, _ := s.current.Get(sl.Name)
		s.axes[sl.Name] = &axis{position: float64(v)}
	}
	return s
}

// Nudge moves a target by delta slider units, clamped to the slider range.
func (s *Smoother) Nudge(name string, delta float32) error {
	return s.Target.Nudge(name, delta)
}

// Update advances every spring by one frame and returns the eased values.
func (s *Smoother) Update() Values {
	s.Target = s.Target.Clamped()
	for _, sl := range Sliders {
		a := s.axes[sl.Name]
		target, _ := s.Target.Get(sl.Name)
		a.position, a.velocity = s.spring.Update(a.position, a.velocity, float64(target))
		_ = s.current.Set(sl.Name, float32(a.position))
	}
	return s.current
}

// Current returns the eased values without advancing.
func (s *Smoother) Current() Values {
	return s.current
}

// Snap jumps straight to the target, dropping any motion.
func (s *Smoother) Snap() {
	s.current = s.Target.Clamped()
	for _, sl := range Sliders {
		v, _ := s.current.Get(sl.Name)
		*s.axes[sl.Name] = axis{position: float64(v)}
	}
}
