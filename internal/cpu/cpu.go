// Package cpu provides CPU feature detection for kernel backend selection.
//
// Detection runs once, on the first call to DetectFeatures, and the result
// is cached. Tests can override it with SetForcedFeatures.
package cpu

import (
	"os"
	"sync"
)

// Environment variables consulted by DetectFeatures.
const (
	// EnvNoSIMD disables every SIMD backend when set to a non-empty value.
	EnvNoSIMD = "ALGO_KERNELS_NO_SIMD"

	// EnvBackend pins the dispatcher to a registered backend by name.
	EnvBackend = "ALGO_KERNELS_BACKEND"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD (scalar Go code only).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512F.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// arm64
	HasNEON bool

	// ForceGeneric disables all SIMD backends (testing, debugging, EnvNoSIMD).
	ForceGeneric bool

	// Backend is the backend name requested through EnvBackend, if any.
	Backend string

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system,
// with environment overrides applied.
//
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = applyEnv(detectFeaturesImpl(), os.Getenv)
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

func applyEnv(f Features, getenv func(string) string) Features {
	if getenv(EnvNoSIMD) != "" {
		f.ForceGeneric = true
	}
	f.Backend = getenv(EnvBackend)
	return f
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// SetForcedFeatures overrides detection with f. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
