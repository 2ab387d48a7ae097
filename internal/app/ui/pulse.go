package ui

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseIdle   = "◯"
	pulseActive = "◉"

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	pulseFrameThreshold = 0.3
	pulseDecayTicks     = 3
)

// Pulse is a spring-driven activity indicator. Beat kicks the spring to
// full and it settles back over the following UI ticks, so a burst of
// matches reads as a heartbeat rather than a solid dot.
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	holdTicks int
}

// NewPulse creates a pulse animator tuned to the UI tick rate
func NewPulse(ticksPerSecond int) *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(ticksPerSecond), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Beat kicks the indicator to full brightness
func (p *Pulse) Beat() {
	p.target = 1.0
	p.holdTicks = pulseDecayTicks
}

// Update advances the animation, called on each UI tick
func (p *Pulse) Update() {
	if p.holdTicks > 0 {
		p.holdTicks--
	} else {
		p.target = 0.0
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the current indicator glyph
func (p *Pulse) Frame() string {
	if p.position < pulseFrameThreshold {
		return pulseIdle
	}

	return pulseActive
}

// Render returns the styled glyph
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}
