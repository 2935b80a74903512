// Package thirst turns environmental factors into how many liquid units an
// office participant wants to drink per tick, and lets those factors drift.
package thirst

import (
	"fmt"
	"math"
)

// Subject is whoever the amount is computed for.
type Subject interface {
	Thirsty() bool
}

// FactorKind tags the payload carried by a Factor.
type FactorKind uint8

const (
	RoomTemperature FactorKind = iota + 1
	WorkIntensity
	Constant
)

func (k FactorKind) String() string {
	switch k {
	case RoomTemperature:
		return "room_temperature"
	case WorkIntensity:
		return "work_intensity"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

const (
	comfortCelsius   = 20.0
	unitsPerDegree   = 10.0
	intensityPerUnit = 1000
)

// Factor is one thirst contribution. Only the field matching Kind is meaningful.
type Factor struct {
	Kind      FactorKind
	Celsius   float64
	Intensity int
	Units     int
}

// Temperature returns a room temperature factor in degrees Celsius.
func Temperature(celsius float64) Factor {
	return Factor{Kind: RoomTemperature, Celsius: celsius}
}

// TemperatureFahrenheit converts to Celsius.
func TemperatureFahrenheit(fahrenheit float64) Factor {
	return Temperature((fahrenheit - 32) * 5 / 9)
}

// Intensity returns a work intensity factor.
func Intensity(level int) Factor {
	return Factor{Kind: WorkIntensity, Intensity: level}
}

// FixedFactor returns a factor that always contributes units and never drifts.
func FixedFactor(units int) Factor {
	return Factor{Kind: Constant, Units: units}
}

// Amount is the number of units this factor adds for s.
//
//	room temperature: 10 units per degree above 20°C, never negative
//	work intensity:   1 unit per 1000 intensity, never negative
//	constant:         Units
func (f Factor) Amount(_ Subject) int {
	switch f.Kind {
	case RoomTemperature:
		return max(0, int(math.Round((f.Celsius-comfortCelsius)*unitsPerDegree)))
	case WorkIntensity:
		return max(0, f.Intensity/intensityPerUnit)
	case Constant:
		return f.Units
	default:
		return 0
	}
}

func (f Factor) String() string {
	switch f.Kind {
	case RoomTemperature:
		return fmt.Sprintf("room_temperature(%.2fC)", f.Celsius)
	case WorkIntensity:
		return fmt.Sprintf("work_intensity(%d)", f.Intensity)
	case Constant:
		return fmt.Sprintf("constant(%d)", f.Units)
	default:
		return "unknown"
	}
}
