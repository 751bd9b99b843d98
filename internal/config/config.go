// Package config holds the global tuning knobs the public API's
// SetAlpha*/SetNumThreads functions mutate: the sieve-size tuning
// factors alpha, alpha_y, alpha_z and the thread count, each with an
// environment-variable override so a deployment can tune without
// recompiling. Grounded on include/utils.hpp's validate_threads and
// the "Global tuning factors" design note.
package config

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/kimwalisch/primecount-go/internal/perr"
)

// Default tuning factors: a fixed 1.0 for each of alpha, alpha_y and
// alpha_z. Setting a factor to 0 (or below) restores this constant;
// no x-dependent automatic value is computed.
const (
	DefaultAlpha  = 1.0
	DefaultAlphaY = 1.0
	DefaultAlphaZ = 1.0
)

type tuning struct {
	mu            sync.RWMutex
	alpha         float64
	alphaY        float64
	alphaZ        float64
	alphaExplicit bool
}

var global = &tuning{alpha: DefaultAlpha, alphaY: DefaultAlphaY, alphaZ: DefaultAlphaZ}
var numThreads int64

func init() {
	atomic.StoreInt64(&numThreads, int64(runtime.NumCPU()))

	if v := os.Getenv("PRIMECOUNT_ALPHA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			global.mu.Lock()
			global.alpha = f
			global.alphaExplicit = true
			global.mu.Unlock()
		}
	}
	if v := os.Getenv("PRIMECOUNT_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			atomic.StoreInt64(&numThreads, int64(n))
		}
	}
}

// SetAlpha sets the sieve-size tuning factor used by the
// Deleglise-Rivat/LMO formulas. alpha <= 0 resets to the default.
func SetAlpha(alpha float64) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if alpha <= 0 {
		global.alpha = DefaultAlpha
		global.alphaExplicit = false
		return
	}
	global.alpha = alpha
	global.alphaExplicit = true
}

// Alpha returns the current alpha tuning factor.
func Alpha() float64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.alpha
}

// SetAlphaY sets Gourdon's y-tuning factor.
func SetAlphaY(alphaY float64) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if alphaY <= 0 {
		global.alphaY = DefaultAlphaY
		return
	}
	global.alphaY = alphaY
}

// AlphaY returns the current Gourdon y-tuning factor.
func AlphaY() float64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.alphaY
}

// SetAlphaZ sets Gourdon's z-tuning factor.
func SetAlphaZ(alphaZ float64) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if alphaZ <= 0 {
		global.alphaZ = DefaultAlphaZ
		return
	}
	global.alphaZ = alphaZ
}

// AlphaZ returns the current Gourdon z-tuning factor.
func AlphaZ() float64 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.alphaZ
}

// SetNumThreads sets the number of worker threads the load balancer
// hands work to. Returns a perr.ResourceExhaustion error if threads
// exceeds MaxThreads.
func SetNumThreads(threads int) error {
	if threads <= 0 {
		atomic.StoreInt64(&numThreads, int64(runtime.NumCPU()))
		return nil
	}
	if threads > MaxThreads() {
		return perr.ResourceExhaustion("requested %d threads exceeds available %d", threads, MaxThreads())
	}
	atomic.StoreInt64(&numThreads, int64(threads))
	return nil
}

// NumThreads returns the configured worker thread count.
func NumThreads() int {
	return int(atomic.LoadInt64(&numThreads))
}

// MaxThreads returns the maximum usable thread count, the number of
// logical CPUs visible to the process.
func MaxThreads() int {
	return runtime.NumCPU()
}
