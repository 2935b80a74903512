package container

import (
	"errors"
	"fmt"

	"glassjoke"
	"glassjoke/internal/logger"
)

// Builder collects container settings and reports every problem at Build.
type Builder struct {
	limits   Limits
	capacity int
	typ      Type
	contents map[Kind]int
	log      *logger.Logger
	errs     []error
}

// NewBuilder starts an empty glass with zero capacity.
func NewBuilder(limits Limits) *Builder {
	return &Builder{
		limits:   limits,
		typ:      Glass,
		contents: make(map[Kind]int),
	}
}

func (b *Builder) WithCapacity(capacity int) *Builder {
	b.capacity = capacity
	return b
}

func (b *Builder) WithType(typ Type) *Builder {
	b.typ = typ
	return b
}

func (b *Builder) WithLogger(l *logger.Logger) *Builder {
	b.log = l
	return b
}

// WithContents merges contents into what was added so far.
func (b *Builder) WithContents(contents map[Kind]int) *Builder {
	for kind, amount := range contents {
		b.Add(kind, amount)
	}
	return b
}

// Add adds amount units of kind.
func (b *Builder) Add(kind Kind, amount int) *Builder {
	if kind == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: liquid kind can't be empty", glassjoke.ErrInvalidAmount))
		return b
	}
	if amount <= 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: amount of %s must be positive, got %d", glassjoke.ErrInvalidAmount, kind, amount))
		return b
	}
	b.contents[kind] += amount
	return b
}

// Build validates everything and returns the container.
func (b *Builder) Build() (*LiquidContainer, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return NewWithContents(b.limits, b.capacity, b.typ, b.contents, WithLogger(b.log))
}
