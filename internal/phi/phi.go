// Package phi implements Phi(x, a), the partial sieve function
// (count of integers in [1,x] not divisible by any of the first a
// primes), via the classic recursion
//
//	Phi(x, a) = Phi(x, a-1) - Phi(x/primes[a], a-1)
//
// bottoming out at phitiny's precomputed tables for a <= 8 and at the
// x < primes[a] identity (only 1 survives). A bounded memo cache
// covers the small-x/large-a calls that recur across many segments,
// matching the recursion structure and cache-size reasoning in
// src/PhiTiny.cpp / include/phi.hpp.
package phi

import (
	"sync"

	"github.com/kimwalisch/primecount-go/internal/fastdiv"
	"github.com/kimwalisch/primecount-go/internal/phitiny"
)

// cacheLimit bounds memoization to small x, the only region where the
// same (x,a) pair recurs often enough across segments to be worth
// the map overhead.
const cacheLimit = 1 << 16

type key struct {
	x int64
	a int32
}

// Calculator evaluates Phi(x,a) against a shared prime vector,
// reusing a bounded memo cache across calls. Safe for concurrent use.
type Calculator struct {
	primes []int64 // 1-indexed: primes[1] == 2, primes[2] == 3, ...
	fd     *fastdiv.Table

	mu   sync.Mutex
	memo map[key]int64
}

// New returns a Calculator over the given 1-indexed prime vector. The
// recursion's x/primes[a] division (the same divisor reused across
// every memo miss for a given a) goes through a fastdiv.Table rather
// than a hardware divide.
func New(primes []int64) *Calculator {
	return &Calculator{primes: primes, fd: fastdiv.New(primes), memo: make(map[key]int64)}
}

// Phi returns Phi(x, a).
func (c *Calculator) Phi(x int64, a int) int64 {
	if x <= 0 {
		return 0
	}
	if a <= 0 {
		return x
	}
	if a <= phitiny.MaxA() {
		return phitiny.Phi(x, a)
	}
	if a < len(c.primes) && c.primes[a] >= x {
		return 1
	}

	useCache := x < cacheLimit
	if useCache {
		if v, ok := c.lookup(x, a); ok {
			return v
		}
	}

	result := c.Phi(x, a-1) - c.Phi(c.fd.DivInt64(x, a), a-1)

	if useCache {
		c.store(x, a, result)
	}
	return result
}

func (c *Calculator) lookup(x int64, a int) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.memo[key{x, int32(a)}]
	return v, ok
}

func (c *Calculator) store(x int64, a int, v int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.memo) > 4_000_000 {
		// Cache pressure valve: a recursion this wide means a is large
		// relative to x, which should be rare given the a <= pi(x)
		// caller contract; drop the whole cache and start over rather
		// than grow unbounded.
		c.memo = make(map[key]int64)
	}
	c.memo[key{x, int32(a)}] = v
}
