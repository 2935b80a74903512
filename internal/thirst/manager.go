package thirst

import (
	"math/rand/v2"
	"slices"

	"glassjoke/internal/logger"
)

// Level decides how much a subject drinks and may drift between ticks.
type Level interface {
	Total(s Subject) int
	Perturb()
}

// Drift bounds.
const (
	temperatureSwing = 10
	intensityMin     = 20
	intensityMax     = 1000 // exclusive
	intensityScale   = 100
)

// Manager sums its factors in insertion order and drifts them randomly.
type Manager struct {
	factors []Factor
	rng     *rand.Rand
	log     *logger.Logger
}

var _ Level = (*Manager)(nil)

// NewManager copies factors. A nil rng gets a randomly seeded source; pass a
// seeded one for reproducible drift.
func NewManager(factors []Factor, rng *rand.Rand, log *logger.Logger) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Manager{
		factors: slices.Clone(factors),
		rng:     rng,
		log:     logger.OrNop(log).Named("ThirstyFactorManager"),
	}
}

// Factors returns a snapshot of the current factor state.
func (m *Manager) Factors() []Factor {
	return slices.Clone(m.factors)
}

// Total sums every factor's amount; no factors means 0.
func (m *Manager) Total(s Subject) int {
	total := 0
	for _, f := range m.factors {
		total += f.Amount(s)
	}
	return total
}

// Perturb flips a fair coin per factor and redraws the factor on heads.
func (m *Manager) Perturb() {
	for i := range m.factors {
		f := &m.factors[i]
		switch f.Kind {
		case RoomTemperature:
			m.driftTemperature(f)
		case WorkIntensity:
			m.driftIntensity(f)
		}
	}
}

func (m *Manager) driftTemperature(f *Factor) {
	if m.rng.IntN(2) == 0 {
		return
	}
	prev := f.Celsius
	f.Celsius = prev + float64(m.rng.IntN(2*temperatureSwing+1)-temperatureSwing)
	if f.Celsius != prev {
		m.log.Infof("Room temperature changed to %.2f celsius", f.Celsius)
	}
}

func (m *Manager) driftIntensity(f *Factor) {
	if m.rng.IntN(2) == 0 {
		return
	}
	f.Intensity = (intensityMin + m.rng.IntN(intensityMax-intensityMin)) * intensityScale
	m.log.Infow("Work intensity changed", "intensity", f.Intensity)
}

// Fixed is a Level that always answers the same amount and never drifts.
type Fixed int

var _ Level = Fixed(0)

func (f Fixed) Total(Subject) int { return int(f) }
func (Fixed) Perturb() {}
