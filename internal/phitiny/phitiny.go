// Package phitiny implements Phi_tiny(x, a), the partial sieve
// function for a <= 8 (the first 8 primes 2,3,5,7,11,13,17,19). Since
// Phi(x, a) is periodic with period equal to the primorial of the
// first a primes, each table is built once (lazily, on first use) as
// a cumulative coprime-count array over one period, then Phi(x,a) is
// answered in O(1) via period-count times quotient plus a table
// lookup for the remainder. Grounded on include/phi_tiny.hpp and
// cross-checked against test/phi_tiny.cpp's brute-force values.
package phitiny

import "sync"

const maxA = 8

var primesTiny = [maxA]int64{2, 3, 5, 7, 11, 13, 17, 19}

var primorialTiny = [maxA + 1]int64{
	1, 2, 6, 30, 210, 2310, 30030, 510510, 9699690,
}

type tinyTable struct {
	once sync.Once
	cum  []int32 // cum[r] = count of integers in [0,r] coprime to first a primes
}

var tables [maxA + 1]tinyTable

func build(a int) []int32 {
	m := primorialTiny[a]
	coprime := make([]bool, m+1)
	for i := range coprime {
		coprime[i] = true
	}
	coprime[0] = false
	for j := 0; j < a; j++ {
		p := primesTiny[j]
		for n := p; n <= m; n += p {
			coprime[n] = false
		}
	}
	cum := make([]int32, m+1)
	count := int32(0)
	for i := int64(0); i <= m; i++ {
		if coprime[i] {
			count++
		}
		cum[i] = count
	}
	return cum
}

func table(a int) []int32 {
	t := &tables[a]
	t.once.Do(func() { t.cum = build(a) })
	return t.cum
}

// MaxA returns the largest a this package answers directly (8).
func MaxA() int { return maxA }

// Phi returns Phi(x, a), the count of integers in [1, x] not
// divisible by any of the first a primes, for 0 <= a <= 8.
func Phi(x int64, a int) int64 {
	if x <= 0 {
		return 0
	}
	if a <= 0 {
		return x
	}
	if a > maxA {
		panic("phitiny: a must be <= 8")
	}
	cum := table(a)
	m := primorialTiny[a]
	q := x / m
	r := x % m
	perPeriod := int64(cum[m])
	return q*perPeriod + int64(cum[r])
}

// Handles reports whether a is within the precomputed range this
// package can answer directly.
func Handles(a int) bool {
	return a >= 0 && a <= maxA
}
