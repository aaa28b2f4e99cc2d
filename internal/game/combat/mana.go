package combat

import "fmt"

// Mana is a bounded pool of magical energy.
//
// Invariant: 0 <= Current() <= Max().
type Mana struct {
	current int
	max     int
}

// NewMana returns a full pool of size max.
// Precondition: max >= 1.
func NewMana(max int) *Mana {
	return &Mana{current: max, max: max}
}

// Current returns the mana available.
func (m *Mana) Current() int { return m.current }

// Max returns the pool size.
func (m *Mana) Max() int { return m.max }

// Restore adds amount to the pool, capped at Max(). A negative amount is treated as zero.
//
// Postcondition: Current() == min(Max(), previous Current() + max(0, amount)).
func (m *Mana) Restore(amount int) {
	if amount < 0 {
		amount = 0
	}
	// Compare against headroom; current+amount can overflow.
	if amount >= m.max-m.current {
		m.current = m.max
		return
	}
	m.current += amount
}

func (m *Mana) String() string {
	return fmt.Sprintf("%d/%d", m.current, m.max)
}
