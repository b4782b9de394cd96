package kernels

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/internal/registry"
)

var (
	impl         registry.OpEntry
	implInitOnce sync.Once
)

// active returns the resolved backend, resolving it on first use.
func active() *registry.OpEntry {
	implInitOnce.Do(initImpl)
	return &impl
}

func initImpl() {
	impl = *resolve(cpu.DetectFeatures())
}

func resolve(features cpu.Features) *registry.OpEntry {
	log := Logger()

	if features.ForceGeneric {
		log.Info("kernels: vector backends disabled", "env", cpu.EnvNoSIMD)
	}

	var entry *registry.OpEntry
	if name := features.Backend; name != "" {
		entry = registry.Global.LookupName(name)
		switch {
		case entry == nil:
			log.Warn("kernels: requested backend not registered", "backend", name)
		case !cpu.Supports(features, entry.SIMDLevel):
			log.Warn("kernels: requested backend not supported by this CPU",
				"backend", name, "requires", entry.SIMDLevel.String())
			entry = nil
		}
	}

	if entry == nil {
		entry = registry.Global.Lookup(features)
	}
	if entry == nil {
		panic("kernels: no implementation registered (missing generic fallback?)")
	}
	if op := entry.Missing(); op != "" {
		panic(fmt.Sprintf("kernels: backend %q is missing %s", entry.Name, op))
	}

	log.Debug("kernels: backend selected",
		"backend", entry.Name,
		"lanes", entry.Lanes,
		"simd", entry.SIMDLevel.String(),
		"arch", features.Architecture)

	return entry
}

// Backend returns the name of the backend serving calls ("avx2", "sse2" or
// "generic").
func Backend() string {
	return active().Name
}

// LaneWidth returns the lane width of the active backend (1 for generic).
func LaneWidth() int {
	return active().Lanes
}

// Backends lists the registered backend names by descending priority.
func Backends() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
