package thirst

import (
	"math/rand/v2"

	"glassjoke/internal/logger"
)

// Builder holds at most one factor of each environmental kind.
type Builder struct {
	temperature *Factor
	intensity   *Factor
	log         *logger.Logger
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) RoomTemperatureCelsius(celsius float64) *Builder {
	f := Temperature(celsius)
	b.temperature = &f
	return b
}

func (b *Builder) RoomTemperatureFahrenheit(fahrenheit float64) *Builder {
	f := TemperatureFahrenheit(fahrenheit)
	b.temperature = &f
	return b
}

func (b *Builder) WorkIntensity(level int) *Builder {
	f := Intensity(level)
	b.intensity = &f
	return b
}

func (b *Builder) WithLogger(l *logger.Logger) *Builder {
	b.log = l
	return b
}

// Build returns a manager with temperature first, then intensity.
func (b *Builder) Build(rng *rand.Rand) *Manager {
	var factors []Factor
	if b.temperature != nil {
		factors = append(factors, *b.temperature)
	}
	if b.intensity != nil {
		factors = append(factors, *b.intensity)
	}
	return NewManager(factors, rng, b.log)
}
