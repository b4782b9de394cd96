// Command kerninfo reports which kernel backends are available on this
// machine and checks them against a known scenario.
//
// Usage:
//
//	kerninfo [flags] [backend-name ...]
//
// Without arguments it covers every registered backend.
//
// Examples:
//
//	kerninfo
//	kerninfo -v avx2
//	kerninfo -bench -size 65536
//	kerninfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	kernels "github.com/cwbudde/algo-kernels"
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/internal/registry"
	"github.com/cwbudde/algo-vecmath"
)

func main() {
	size := flag.Int("size", 4096, "vector length in elements for -bench")
	bench := flag.Bool("bench", false, "time the kernels of each backend")
	list := flag.Bool("list", false, "list registered backend names")
	verbose := flag.Bool("v", false, "log backend selection to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kerninfo [flags] [backend-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features and kernel backends, and verifies each backend.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %s=1        disable vector backends\n", cpu.EnvNoSIMD)
		fmt.Fprintf(os.Stderr, "  %s=name     pin a backend\n", cpu.EnvBackend)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -v\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -bench -size 65536 avx2 generic\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -list\n")
	}
	flag.Parse()

	if *verbose {
		kernels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *list {
		for _, name := range kernels.Backends() {
			fmt.Println(name)
		}
		return
	}

	entries := selectEntries(registry.Global.ListEntries(), flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching backends\n")
		os.Exit(1)
	}

	features := cpu.DetectFeatures()
	printFeatures(os.Stdout, features)
	fmt.Println()
	printBackends(os.Stdout, entries, features, kernels.Backend())
	fmt.Println()

	if !printChecks(os.Stdout, entries) {
		os.Exit(1)
	}

	if *bench {
		if *size <= 0 {
			fmt.Fprintf(os.Stderr, "error: -size must be positive\n")
			os.Exit(2)
		}
		fmt.Println()
		printBench(os.Stdout, entries, *size)
	}
}

func selectEntries(all []registry.OpEntry, names []string) []registry.OpEntry {
	if len(names) == 0 {
		return all
	}

	var result []registry.OpEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		i := slices.IndexFunc(all, func(e registry.OpEntry) bool { return e.Name == name })
		if i < 0 {
			fmt.Fprintf(os.Stderr, "warning: unknown backend %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, all[i])
	}
	return result
}

func printFeatures(out io.Writer, f cpu.Features) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Arch:\t%s\n", f.Architecture)
	fmt.Fprintf(w, "SSE2:\t%s\n", yesNo(f.HasSSE2))
	fmt.Fprintf(w, "AVX:\t%s\n", yesNo(f.HasAVX))
	fmt.Fprintf(w, "AVX2:\t%s\n", yesNo(f.HasAVX2))
	fmt.Fprintf(w, "AVX-512:\t%s\n", yesNo(f.HasAVX512))
	fmt.Fprintf(w, "NEON:\t%s\n", yesNo(f.HasNEON))
	if f.ForceGeneric {
		fmt.Fprintf(w, "Forced:\tgeneric (%s)\n", cpu.EnvNoSIMD)
	}
	if f.Backend != "" {
		fmt.Fprintf(w, "Pinned:\t%s (%s)\n", f.Backend, cpu.EnvBackend)
	}
	w.Flush()
}

func printBackends(out io.Writer, entries []registry.OpEntry, f cpu.Features, selected string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Backend\tLanes\tRequires\tPriority\tUsable\tSelected\n")
	fmt.Fprintf(w, "-------\t-----\t--------\t--------\t------\t--------\n")
	for _, e := range entries {
		mark := ""
		if e.Name == selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\n",
			e.Name, e.Lanes, e.SIMDLevel, e.Priority, yesNo(cpu.Supports(f, e.SIMDLevel)), mark)
	}
	w.Flush()
}

// printChecks runs checkScenario on every usable entry and reports whether
// all passed. Entries the CPU cannot execute are skipped.
func printChecks(out io.Writer, entries []registry.OpEntry) bool {
	features := cpu.DetectFeatures()
	ok := true

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Backend\tScenario\n")
	for _, e := range entries {
		if !cpu.Supports(features, e.SIMDLevel) {
			fmt.Fprintf(w, "%s\tskipped\n", e.Name)
			continue
		}
		if err := checkScenario(&e); err != nil {
			ok = false
			fmt.Fprintf(w, "%s\tFAIL: %v\n", e.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s\tok\n", e.Name)
	}
	w.Flush()

	return ok
}

// checkScenario runs a=[1..7], b=[7..1] through e and compares every result
// against its exact value.
func checkScenario(e *registry.OpEntry) error {
	a := []float64{1, 2, 3, 4, 5, 6, 7}
	b := []float64{7, 6, 5, 4, 3, 2, 1}

	reductions := []struct {
		name      string
		got, want float64
	}{
		{"sum", e.Sum(a), 28},
		{"product", e.Product(a), 5040},
		{"dot", e.Dot(a, b), 84},
		{"sum(empty)", e.Sum(nil), 0},
		{"product(empty)", e.Product(nil), 1},
	}
	for _, r := range reductions {
		if r.got != r.want {
			return fmt.Errorf("%s = %v, want %v", r.name, r.got, r.want)
		}
	}

	elementwise := []struct {
		name      string
		got, want []float64
	}{
		{"add", e.Add(a, b), []float64{8, 8, 8, 8, 8, 8, 8}},
		{"sub", e.Sub(a, b), []float64{-6, -4, -2, 0, 2, 4, 6}},
		{"mul", e.Mul(a, b), []float64{7, 12, 15, 16, 15, 12, 7}},
		{"add-scalar", e.AddScalar(a, 3), []float64{4, 5, 6, 7, 8, 9, 10}},
		{"scalar-sub", e.ScalarSub(8, a), []float64{7, 6, 5, 4, 3, 2, 1}},
		{"scalar-div", e.ScalarDiv(420, a), []float64{420, 210, 140, 105, 84, 70, 60}},
	}
	for _, r := range elementwise {
		if !slices.Equal(r.got, r.want) {
			return fmt.Errorf("%s = %v, want %v", r.name, r.got, r.want)
		}
	}

	return nil
}

func printBench(out io.Writer, entries []registry.OpEntry, n int) {
	features := cpu.DetectFeatures()

	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i%17) + 0.5
		y[i] = float64(i%13) + 1.5
	}
	dst := make([]float64, n)
	bytes2 := int64(n) * 16

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Backend\tN\tAddBlock\tMulBlock\tSum\tDot\t\n")
	for _, e := range entries {
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t\n", e.Name, n,
			throughput(bytes2, func() { e.AddBlock(dst, x, y) }),
			throughput(bytes2, func() { e.MulBlock(dst, x, y) }),
			throughput(bytes2/2, func() { _ = e.Sum(x) }),
			throughput(bytes2, func() { _ = e.Dot(x, y) }),
		)
	}
	fmt.Fprintf(w, "algo-vecmath\t%d\t%s\t%s\t-\t-\t\n", n,
		throughput(bytes2, func() { copy(dst, x); vecmath.AddBlockInPlace(dst, y) }),
		throughput(bytes2, func() { vecmath.MulBlock(dst, x, y) }),
	)
	w.Flush()
}

const benchTime = 100 * time.Millisecond

// throughput runs fn in doubling batches until benchTime has elapsed and
// formats the rate as MB/s.
func throughput(bytes int64, fn func()) string {
	iters := 1
	for {
		start := time.Now()
		for range iters {
			fn()
		}
		elapsed := time.Since(start)
		if elapsed >= benchTime || iters >= 1<<30 {
			mbps := float64(bytes) * float64(iters) / elapsed.Seconds() / 1e6
			return fmt.Sprintf("%.0f MB/s", mbps)
		}
		iters *= 2
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
