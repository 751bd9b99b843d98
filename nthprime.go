package primecount

import (
	"math"

	"github.com/kimwalisch/primecount-go/internal/perr"
)

// nthPrime returns the n-th prime by seeding a bound from LiInverse
// and then binary-searching pi(x) == n, pi(x-1) == n-1, mirroring
// src/nth_prime.cpp's estimate-then-correct strategy.
func nthPrime(n int64) (int64, error) {
	if n <= int64(len(smallNthPrimes)) {
		return smallNthPrimes[n-1], nil
	}

	estimate := int64(math.Ceil(LiInverse(float64(n))))
	lo, hi := bracket(n, estimate)

	for lo < hi {
		mid := lo + (hi-lo)/2
		count, err := piInt64(mid)
		if err != nil {
			return 0, err
		}
		if !count.Fits64() {
			return 0, perr.Overflow("nth_prime: pi(%d) overflowed during search", mid)
		}
		if count.Int64() >= n {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}

// bracket grows outward from estimate until pi(lo-1) < n <= pi(hi),
// guaranteeing the n-th prime lies in [lo, hi].
func bracket(n, estimate int64) (lo, hi int64) {
	if estimate < 2 {
		estimate = 2
	}
	lo, hi = estimate, estimate
	step := estimate/4 + 16

	for {
		count, err := piInt64(hi)
		if err == nil && count.Fits64() && count.Int64() >= n {
			break
		}
		hi += step
		step *= 2
	}
	for lo > 2 {
		count, err := piInt64(lo)
		if err != nil || !count.Fits64() || count.Int64() < n {
			break
		}
		lo -= step
		if lo < 2 {
			lo = 2
			break
		}
	}
	if lo < 2 {
		lo = 2
	}
	return lo, hi
}

var smallNthPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
}
