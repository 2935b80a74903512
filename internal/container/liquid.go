package container

// Kind names a liquid. Contents are drunk in ascending order of Kind.
type Kind string

const (
	Water  Kind = "water"
	Coffee Kind = "coffee"
	Tea    Kind = "tea"
	Milk   Kind = "milk"
)

// Type is the shape of the container, used for logging only.
type Type string

const (
	Glass Type = "glass"
	Mug   Type = "mug"
)

// DefaultMaxCapacity is the largest capacity accepted when nothing is configured.
const DefaultMaxCapacity = 1000

// Limits bounds container construction.
type Limits struct {
	MaxCapacity int
}

// DefaultLimits returns Limits{MaxCapacity: DefaultMaxCapacity}.
func DefaultLimits() Limits {
	return Limits{MaxCapacity: DefaultMaxCapacity}
}
