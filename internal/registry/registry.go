// Package registry holds the kernel implementation registry.
//
// The root kernels package registers one OpEntry per usable backend (avx2,
// sse2, generic) from an init function, then looks up the highest-priority
// entry the current CPU supports and binds its functions once.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-kernels/internal/cpu"
)

// Function shapes shared by every backend.
type (
	ReduceFn          func(x []float64) float64
	DotFn             func(a, b []float64) float64
	BinaryFn          func(a, b []float64) []float64
	ScalarFn          func(a []float64, k float64) []float64
	ScalarLeftFn      func(k float64, a []float64) []float64
	BinaryBlockFn     func(dst, a, b []float64)
	ScalarBlockFn     func(dst, a []float64, k float64)
	ScalarLeftBlockFn func(dst []float64, k float64, a []float64)
)

// OpEntry is one registered backend.
//
// All operation fields are required; Missing reports the first nil one.
type OpEntry struct {
	// Name identifies the backend ("avx2", "sse2", "generic").
	Name string

	// Lanes is the number of float64 values processed per vector step.
	Lanes int

	// SIMDLevel is the instruction set the backend needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   generic: 0, sse2: 10, avx2: 20
	Priority int

	// Reductions
	Sum     ReduceFn
	Product ReduceFn
	Dot     DotFn

	// Sequence ⊕ sequence
	Add BinaryFn
	Sub BinaryFn
	Mul BinaryFn
	Div BinaryFn

	// Sequence ⊕ scalar
	AddScalar ScalarFn
	SubScalar ScalarFn
	MulScalar ScalarFn
	DivScalar ScalarFn

	// Scalar ⊕ sequence
	ScalarAdd ScalarLeftFn
	ScalarSub ScalarLeftFn
	ScalarMul ScalarLeftFn
	ScalarDiv ScalarLeftFn

	// Block forms writing into dst
	AddBlock       BinaryBlockFn
	SubBlock       BinaryBlockFn
	MulBlock       BinaryBlockFn
	DivBlock       BinaryBlockFn
	AddScalarBlock ScalarBlockFn
	SubScalarBlock ScalarBlockFn
	MulScalarBlock ScalarBlockFn
	DivScalarBlock ScalarBlockFn
	ScalarSubBlock ScalarLeftBlockFn
	ScalarDivBlock ScalarLeftBlockFn
}

// Missing returns the name of the first nil operation field, or "" when the
// entry is complete.
func (e *OpEntry) Missing() string {
	checks := []struct {
		name string
		nil  bool
	}{
		{"Sum", e.Sum == nil},
		{"Product", e.Product == nil},
		{"Dot", e.Dot == nil},
		{"Add", e.Add == nil},
		{"Sub", e.Sub == nil},
		{"Mul", e.Mul == nil},
		{"Div", e.Div == nil},
		{"AddScalar", e.AddScalar == nil},
		{"SubScalar", e.SubScalar == nil},
		{"MulScalar", e.MulScalar == nil},
		{"DivScalar", e.DivScalar == nil},
		{"ScalarAdd", e.ScalarAdd == nil},
		{"ScalarSub", e.ScalarSub == nil},
		{"ScalarMul", e.ScalarMul == nil},
		{"ScalarDiv", e.ScalarDiv == nil},
		{"AddBlock", e.AddBlock == nil},
		{"SubBlock", e.SubBlock == nil},
		{"MulBlock", e.MulBlock == nil},
		{"DivBlock", e.DivBlock == nil},
		{"AddScalarBlock", e.AddScalarBlock == nil},
		{"SubScalarBlock", e.SubScalarBlock == nil},
		{"MulScalarBlock", e.MulScalarBlock == nil},
		{"DivScalarBlock", e.DivScalarBlock == nil},
		{"ScalarSubBlock", e.ScalarSubBlock == nil},
		{"ScalarDivBlock", e.ScalarDivBlock == nil},
	}
	for _, c := range checks {
		if c.nil {
			return c.name
		}
	}
	return ""
}

// OpRegistry stores registered backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by descending priority
}

// Global is the registry the kernels package registers into.
var Global = &OpRegistry{}

// Register adds a backend. Registrations should complete (init time)
// before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries by descending priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
