package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Pulse_IdleByDefault(t *testing.T) {
	p := NewPulse(4)

	assert.Equal(t, pulseIdle, p.Frame())
}

func Test_Pulse_BeatLightsUp(t *testing.T) {
	p := NewPulse(4)

	p.Beat()
	p.Update()
	p.Update()

	assert.Equal(t, pulseActive, p.Frame())
}

func Test_Pulse_SettlesBackToIdle(t *testing.T) {
	p := NewPulse(4)

	p.Beat()

	for i := 0; i < 50; i++ {
		p.Update()
	}

	assert.Equal(t, pulseIdle, p.Frame())
}
