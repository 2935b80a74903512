package office

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"glassjoke"
)

// FallbackName is used when the configured default name is itself invalid.
const FallbackName = "unknown"

var (
	firstNames = []string{"Adam", "Alice", "Alan", "Amanda", "Beatrix", "Bob",
		"Carol", "Carl", "Charlote", "Charles", "Daniel",
		"Daniela", "Eve", "Egon", "Emma", "Ernest", "Helen",
		"Hugh", "Mary", "Mike", "Paul", "Phoebe", "Rachel",
		"Richard", "Stephanie", "Steven", "Thomas", "Thereza"}
	lastNames = []string{"Lincoln", "Jordan", "Adams", "Simpson", "Thompson",
		"Williams", "Smith", "Jones", "Davis", "Jackson", "Moore",
		"Taylor", "Miller", "Garcia", "Rodriguez", "Martinez"}
)

// RandomName draws "First Last" from the built-in lists.
func RandomName(rng *rand.Rand) string {
	if rng == nil {
		return fmt.Sprintf("%s %s", firstNames[rand.IntN(len(firstNames))], lastNames[rand.IntN(len(lastNames))])
	}
	return fmt.Sprintf("%s %s", firstNames[rng.IntN(len(firstNames))], lastNames[rng.IntN(len(lastNames))])
}

// ValidName reports whether name is non-blank and made only of letters and spaces.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Naming carries the default name for employees created without one.
type Naming struct {
	DefaultName string
}

// NewNaming validates defaultName and falls back to FallbackName.
func NewNaming(defaultName string) Naming {
	if !ValidName(defaultName) {
		return Naming{DefaultName: FallbackName}
	}
	return Naming{DefaultName: defaultName}
}

func (n Naming) resolve(name string) (string, error) {
	if name == "" {
		name = n.DefaultName
		if name == "" {
			name = FallbackName
		}
	}
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", glassjoke.ErrInvalidName, name)
	}
	return name, nil
}
