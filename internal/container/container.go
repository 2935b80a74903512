// Package container implements a bounded store of liquid quantities that
// is filled to the brim and drunk kind by kind.
package container

import (
	"fmt"
	"maps"
	"slices"

	"glassjoke"
	"glassjoke/internal/logger"
)

// Consumer is whoever drinks from the container.
type Consumer interface {
	Label() string
	SetThirsty(bool)
}

// LiquidContainer holds up to capacity units split across liquid kinds.
// Invariant: volume == sum(contents), every amount > 0, volume <= capacity.
// It is not safe for concurrent use; a simulated day owns it.
type LiquidContainer struct {
	capacity int
	volume   int
	typ      Type
	contents map[Kind]int
	log      *logger.Logger
}

// Option configures a LiquidContainer.
type Option func(*LiquidContainer)

// WithLogger sets the logger used for drink traces.
func WithLogger(l *logger.Logger) Option {
	return func(c *LiquidContainer) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an empty container.
func New(limits Limits, capacity int, typ Type, opts ...Option) (*LiquidContainer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d can't be negative", glassjoke.ErrInvalidAmount, capacity)
	}
	if capacity > limits.MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d can't be greater than %d", glassjoke.ErrInvalidAmount, capacity, limits.MaxCapacity)
	}
	if typ == "" {
		typ = Glass
	}
	c := &LiquidContainer{
		capacity: capacity,
		typ:      typ,
		contents: make(map[Kind]int),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named(fmt.Sprintf("LiquidContainer(%s)", typ))
	return c, nil
}

// NewWithContents returns a container pre-filled with contents.
// The map is copied.
func NewWithContents(limits Limits, capacity int, typ Type, contents map[Kind]int, opts ...Option) (*LiquidContainer, error) {
	c, err := New(limits, capacity, typ, opts...)
	if err != nil {
		return nil, err
	}
	for _, kind := range slices.Sorted(maps.Keys(contents)) {
		amount := contents[kind]
		if amount <= 0 {
			return nil, fmt.Errorf("%w: amount of %s must be positive, got %d", glassjoke.ErrInvalidAmount, kind, amount)
		}
		c.volume += amount
		if c.volume > c.capacity {
			return nil, fmt.Errorf("%w: contents volume exceeds capacity %d", glassjoke.ErrInvalidAmount, c.capacity)
		}
		c.contents[kind] = amount
	}
	return c, nil
}

func (c *LiquidContainer) Capacity() int { return c.capacity }
func (c *LiquidContainer) Volume() int   { return c.volume }
func (c *LiquidContainer) Type() Type    { return c.typ }

// Contents returns a copy of the current contents.
func (c *LiquidContainer) Contents() map[Kind]int {
	return maps.Clone(c.contents)
}

// IsEmpty reports volume == 0.
func (c *LiquidContainer) IsEmpty() bool {
	return c.volume == 0
}

// Fill tops the container up to capacity with kind, adding to any amount of
// kind already present. A full container is left untouched.
func (c *LiquidContainer) Fill(kind Kind) {
	amount := c.capacity - c.volume
	if amount <= 0 {
		return
	}
	c.contents[kind] += amount
	c.volume = c.capacity
}

// Consume drinks amount units on behalf of consumer and returns how much was
// actually drunk, min(amount, volume).
//
// When amount >= volume the container is drained and the consumer stays
// thirsty; refilling is the caller's business. Otherwise kinds are drunk in
// ascending order, never proportionally, and the consumer's thirst is cleared.
func (c *LiquidContainer) Consume(amount int, consumer Consumer) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount to drink can't be negative, got %d", glassjoke.ErrInvalidAmount, amount)
	}

	if amount >= c.volume {
		drunk := c.volume
		if amount != c.volume {
			c.log.Infow("wants more than is left, drinking everything",
				"consumer", consumer.Label(), "wanted", amount, "available", drunk)
		} else {
			c.log.Infow("drinking the whole container", "consumer", consumer.Label(), "amount", drunk)
		}
		clear(c.contents)
		c.volume = 0
		return drunk, nil
	}

	remaining := amount
	for _, kind := range slices.Sorted(maps.Keys(c.contents)) {
		if remaining == 0 {
			break
		}
		have := c.contents[kind]
		take := min(have, remaining)
		c.log.Infow("drinking", "consumer", consumer.Label(), "amount", take, "kind", kind)
		if take == have {
			delete(c.contents, kind)
		} else {
			c.contents[kind] = have - take
		}
		remaining -= take
	}
	c.volume -= amount
	consumer.SetThirsty(false)
	return amount, nil
}
