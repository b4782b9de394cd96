package kernels

import (
	"github.com/cwbudde/algo-kernels/avx2"
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/internal/generic"
	"github.com/cwbudde/algo-kernels/internal/registry"
	"github.com/cwbudde/algo-kernels/sse2"
)

func init() {
	registerBackends(registry.Global)
}

// registerBackends adds the generic entry and every vector backend compiled
// with real intrinsics.
func registerBackends(reg *registry.OpRegistry) {
	reg.Register(genericEntry())

	if avx2.Accelerated {
		reg.Register(avx2Entry())
	}
	if sse2.Accelerated {
		reg.Register(sse2Entry())
	}
}

// genericEntry is the scalar-only fallback. Priority 0.
func genericEntry() registry.OpEntry {
	return registry.OpEntry{
		Name:      generic.Name,
		Lanes:     1,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Sum:     generic.Sum,
		Product: generic.Product,
		Dot:     generic.Dot,

		Add: generic.Add,
		Sub: generic.Sub,
		Mul: generic.Mul,
		Div: generic.Div,

		AddScalar: generic.AddScalar,
		SubScalar: generic.SubScalar,
		MulScalar: generic.MulScalar,
		DivScalar: generic.DivScalar,
		ScalarAdd: generic.ScalarAdd,
		ScalarSub: generic.ScalarSub,
		ScalarMul: generic.ScalarMul,
		ScalarDiv: generic.ScalarDiv,

		AddBlock:       generic.AddBlock,
		SubBlock:       generic.SubBlock,
		MulBlock:       generic.MulBlock,
		DivBlock:       generic.DivBlock,
		AddScalarBlock: generic.AddScalarBlock,
		SubScalarBlock: generic.SubScalarBlock,
		MulScalarBlock: generic.MulScalarBlock,
		DivScalarBlock: generic.DivScalarBlock,
		ScalarSubBlock: generic.ScalarSubBlock,
		ScalarDivBlock: generic.ScalarDivBlock,
	}
}

// avx2Entry: 256-bit lanes. archsimd's Float64x4 broadcast needs AVX2.
// Priority 20.
func avx2Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      avx2.Name,
		Lanes:     avx2.Lanes,
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		Sum:     avx2.Sum,
		Product: avx2.Product,
		Dot:     avx2.Dot,

		Add: avx2.Add,
		Sub: avx2.Sub,
		Mul: avx2.Mul,
		Div: avx2.Div,

		AddScalar: avx2.AddScalar,
		SubScalar: avx2.SubScalar,
		MulScalar: avx2.MulScalar,
		DivScalar: avx2.DivScalar,
		ScalarAdd: avx2.ScalarAdd,
		ScalarSub: avx2.ScalarSub,
		ScalarMul: avx2.ScalarMul,
		ScalarDiv: avx2.ScalarDiv,

		AddBlock:       avx2.AddBlock,
		SubBlock:       avx2.SubBlock,
		MulBlock:       avx2.MulBlock,
		DivBlock:       avx2.DivBlock,
		AddScalarBlock: avx2.AddScalarBlock,
		SubScalarBlock: avx2.SubScalarBlock,
		MulScalarBlock: avx2.MulScalarBlock,
		DivScalarBlock: avx2.DivScalarBlock,
		ScalarSubBlock: avx2.ScalarSubBlock,
		ScalarDivBlock: avx2.ScalarDivBlock,
	}
}

// sse2Entry: 128-bit lanes. archsimd encodes its 128-bit float ops with
// VEX, so the requirement is AVX rather than plain SSE2. Priority 10.
func sse2Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      sse2.Name,
		Lanes:     sse2.Lanes,
		SIMDLevel: cpu.SIMDAVX,
		Priority:  10,

		Sum:     sse2.Sum,
		Product: sse2.Product,
		Dot:     sse2.Dot,

		Add: sse2.Add,
		Sub: sse2.Sub,
		Mul: sse2.Mul,
		Div: sse2.Div,

		AddScalar: sse2.AddScalar,
		SubScalar: sse2.SubScalar,
		MulScalar: sse2.MulScalar,
		DivScalar: sse2.DivScalar,
		ScalarAdd: sse2.ScalarAdd,
		ScalarSub: sse2.ScalarSub,
		ScalarMul: sse2.ScalarMul,
		ScalarDiv: sse2.ScalarDiv,

		AddBlock:       sse2.AddBlock,
		SubBlock:       sse2.SubBlock,
		MulBlock:       sse2.MulBlock,
		DivBlock:       sse2.DivBlock,
		AddScalarBlock: sse2.AddScalarBlock,
		SubScalarBlock: sse2.SubScalarBlock,
		MulScalarBlock: sse2.MulScalarBlock,
		DivScalarBlock: sse2.DivScalarBlock,
		ScalarSubBlock: sse2.ScalarSubBlock,
		ScalarDivBlock: sse2.ScalarDivBlock,
	}
}
