package teamcheck

import (
	"fmt"
	"math"
)

// TeamSize is the number of values one team is made of.
const TeamSize = 3

// Verdict is the answer printed for one input.
type Verdict string

const (
	Yes Verdict = "YES"
	No  Verdict = "NO"
)

func (v Verdict) String() string {
	return string(v)
}

func verdict(maximum, total int64) Verdict {
	if maximum > teams(total) {
		return No
	}
	return Yes
}

// Checker accumulates values one by one and decides whether the largest
// value fits within the number of teams the total allows.
//
// The zero value is not ready for use; call NewChecker.
type Checker struct {
	sum   int64
	max   int64
	count int
}

// NewChecker returns a Checker whose maximum starts at math.MinInt64,
// so a Checker without values reports Yes.
func NewChecker() *Checker {
	return &Checker{max: math.MinInt64}
}

// Add counts v in. A zero value Checker starts its maximum at 0 instead of
// math.MinInt64 and can answer No for all-negative values that fit.
func (c *Checker) Add(v int64) {
	if v > c.max {
		c.max = v
	}
	c.sum += v
	c.count++
}

func (c *Checker) Sum() int64 {
	return c.sum
}

// Max is math.MinInt64 until the first Add on a Checker from NewChecker.
func (c *Checker) Max() int64 {
	return c.max
}

func (c *Checker) Count() int {
	return c.count
}

// Teams is Sum divided by TeamSize, truncated toward zero.
func (c *Checker) Teams() int64 {
	return teams(c.sum)
}

// Verdict is No when Max exceeds Teams.
func (c *Checker) Verdict() Verdict {
	return verdict(c.max, c.sum)
}

func (c *Checker) String() string {
	return fmt.Sprintf("count:%d sum:%d max:%d teams:%d", c.count, c.sum, c.max, c.Teams())
}

// Check returns the verdict for values at once.
func Check(values []int64) Verdict {
	return verdict(max(values), sum(values))
}
