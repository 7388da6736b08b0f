package onebit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse produces a ping-pong alpha value for the live preview overlay, so
// shape previews and selection boxes read as provisional instead of
// committed ink. Call Update each frame with the elapsed seconds and read
// Alpha when drawing.
//
// There is no global animation manager; owners drive their own pulses.
type Pulse struct {
	tween  *gween.Tween
	min    float32
	max    float32
	period float32
	rising bool
	alpha  float32
}

// NewPulse creates a pulse oscillating between min and max alpha, taking
// period seconds for each half cycle. The pulse starts at max, falling.
func NewPulse(min, max float32, period float32) *Pulse {
	return &Pulse{
		tween:  gween.New(max, min, period, ease.InOutSine),
		min:    min,
		max:    max,
		period: period,
		alpha:  max,
	}
}

// Update advances the pulse by dt seconds, reversing direction at each
// end of the range.
func (p *Pulse) Update(dt float32) {
	val, finished := p.tween.Update(dt)
	p.alpha = val
	if !finished {
		return
	}
	if p.rising {
		p.tween = gween.New(p.max, p.min, p.period, ease.InOutSine)
	} else {
		p.tween = gween.New(p.min, p.max, p.period, ease.InOutSine)
	}
	p.rising = !p.rising
}

// Alpha returns the current overlay alpha in [min, max].
func (p *Pulse) Alpha() float32 {
	return p.alpha
}
