// Package i128 implements a signed 128-bit integer as a pair of
// 64-bit halves, following the design note in the original project's
// int128_t.hpp: "where the language lacks a native 128-bit type,
// implement as a pair of 64-bit halves with add/sub/mul/div/compare;
// only the divisions and comparisons are hot in the core". Go has no
// native int128, so this is that pair-of-halves type.
//
// Int represents the two's-complement value hi<<64 | lo, exactly the
// in-memory layout a compiler would give a real 128-bit integer.
package i128

import (
	"math/bits"
	"strconv"
)

// Int is a signed 128-bit integer.
type Int struct {
	Hi int64
	Lo uint64
}

// Zero is the additive identity.
var Zero = Int{}

// FromInt64 widens a 64-bit signed integer to 128 bits.
func FromInt64(x int64) Int {
	if x < 0 {
		return Int{Hi: -1, Lo: uint64(x)}
	}
	return Int{Hi: 0, Lo: uint64(x)}
}

// Fits64 reports whether the value fits in an int64 without loss.
func (a Int) Fits64() bool {
	if a.Hi == 0 {
		return a.Lo <= 1<<63-1
	}
	if a.Hi == -1 {
		return a.Lo >= 1<<63
	}
	return false
}

// Int64 truncates a to an int64. The caller must ensure Fits64().
func (a Int) Int64() int64 {
	return int64(a.Lo)
}

// Sign returns -1, 0 or +1.
func (a Int) Sign() int {
	if a.Hi < 0 {
		return -1
	}
	if a.Hi == 0 && a.Lo == 0 {
		return 0
	}
	return 1
}

// Add returns a+b.
func Add(a, b Int) Int {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi := a.Hi + b.Hi + int64(carry)
	return Int{Hi: hi, Lo: lo}
}

// Sub returns a-b.
func Sub(a, b Int) Int {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi := a.Hi - b.Hi - int64(borrow)
	return Int{Hi: hi, Lo: lo}
}

// Neg returns -a.
func Neg(a Int) Int {
	return Sub(Zero, a)
}

// Abs returns the absolute value as an unsigned magnitude pair.
func Abs(a Int) (hi, lo uint64) {
	if a.Sign() >= 0 {
		return uint64(a.Hi), a.Lo
	}
	n := Neg(a)
	return uint64(n.Hi), n.Lo
}

// Cmp returns -1, 0, +1 as a compares less, equal, greater than b.
func Cmp(a, b Int) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	if a.Lo != b.Lo {
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// CmpInt64 compares a against a 64-bit value.
func CmpInt64(a Int, b int64) int {
	return Cmp(a, FromInt64(b))
}

// MulInt64 returns the exact 128-bit product of two int64 values.
func MulInt64(x, y int64) Int {
	negX, negY := x < 0, y < 0
	ux, uy := uint64(x), uint64(y)
	if negX {
		ux = uint64(-x)
	}
	if negY {
		uy = uint64(-y)
	}
	hi, lo := bits.Mul64(ux, uy)
	r := Int{Hi: int64(hi), Lo: lo}
	if negX != negY {
		r = Neg(r)
	}
	return r
}

// Mul returns a*b truncated to 128 bits (the high word of the true
// 256-bit product is discarded; every call site in this package keeps
// operands well under 2^100 so this never loses precision).
func Mul(a Int, b int64) Int {
	negA, negB := a.Sign() < 0, b < 0
	ahi, alo := Abs(a)
	ub := uint64(b)
	if negB {
		ub = uint64(-b)
	}
	// (ahi<<64 + alo) * ub, keep low 128 bits.
	hi1, lo := bits.Mul64(alo, ub)
	hi2 := ahi * ub
	hi := hi1 + hi2
	r := Int{Hi: int64(hi), Lo: lo}
	if negA != negB {
		r = Neg(r)
	}
	return r
}

// QuoInt64 returns the truncated (toward zero) quotient a/d for a
// positive divisor d. Panics if d == 0.
func QuoInt64(a Int, d int64) Int {
	if d == 0 {
		panic("i128: division by zero")
	}
	neg := a.Sign() < 0
	negD := d < 0
	ud := uint64(d)
	if negD {
		ud = uint64(-d)
	}
	hi, lo := Abs(a)

	if hi == 0 {
		return signedQuot(lo/ud, neg != negD)
	}

	// Long division of the 128-bit magnitude by a 64-bit divisor: the
	// high word first, then its remainder together with the low word,
	// so quotients wider than 64 bits stay exact.
	qhi := hi / ud
	qlo, _ := bits.Div64(hi%ud, lo, ud)
	q := Int{Hi: int64(qhi), Lo: qlo}
	if neg != negD {
		q = Neg(q)
	}
	return q
}

func signedQuot(mag uint64, negative bool) Int {
	if !negative {
		return Int{Hi: 0, Lo: mag}
	}
	return Neg(Int{Hi: 0, Lo: mag})
}

// String renders the decimal representation.
func (a Int) String() string {
	if a.Hi == 0 && a.Lo == 0 {
		return "0"
	}
	neg := a.Sign() < 0
	hi, lo := Abs(a)

	// Repeatedly divide the (hi, lo) magnitude by 10 and collect
	// digits least-significant first.
	var digits [40]byte
	n := 0
	for hi != 0 || lo != 0 {
		q, r := bits.Div64(hi%10, lo, 10)
		qhi := hi / 10
		digits[n] = byte('0' + r)
		n++
		hi, lo = qhi, q
	}
	buf := make([]byte, 0, n+1)
	if neg {
		buf = append(buf, '-')
	}
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, digits[i])
	}
	return string(buf)
}

// FromString parses a decimal integer string into an Int.
func FromString(s string) (Int, bool) {
	if s == "" {
		return Zero, false
	}
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Zero, false
	}
	r := Zero
	for _, c := range s {
		if c < '0' || c > '9' {
			return Zero, false
		}
		r = Mul(r, 10)
		r = Add(r, FromInt64(int64(c-'0')))
	}
	if neg {
		r = Neg(r)
	}
	return r, true
}

// ParseInt64OrPanic is a convenience used by tests.
func ParseInt64OrPanic(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}
