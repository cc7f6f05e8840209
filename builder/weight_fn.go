// Package builder: weight-function plumbing shared by all constructors.
package builder

// VertexWeightFn produces the weight for the vertex minted at index i.
// It must be deterministic for a given index so that rebuilt topologies
// compare equal.
type VertexWeightFn[N any] func(i int) N

// EdgeWeightFn produces the weight for the edge minted at index i.
// Same determinism requirement as VertexWeightFn.
type EdgeWeightFn[E any] func(i int) E

// ConstantVertexWeight returns a VertexWeightFn that always yields w.
// Complexity: O(1). Never panics.
func ConstantVertexWeight[N any](w N) VertexWeightFn[N] {
	return func(int) N { return w }
}

// ConstantEdgeWeight returns an EdgeWeightFn that always yields w.
// Complexity: O(1). Never panics.
func ConstantEdgeWeight[E any](w E) EdgeWeightFn[E] {
	return func(int) E { return w }
}

// IndexVertexWeight yields the vertex index itself, a convenient labeling
// for tests that need distinguishable weights.
func IndexVertexWeight(i int) int { return i }

// IndexEdgeWeight yields the edge index itself.
func IndexEdgeWeight(i int) int { return i }

// vertexWeightOrZero resolves a possibly-nil VertexWeightFn: nil means
// "zero value of N for every vertex".
func vertexWeightOrZero[N any](fn VertexWeightFn[N], i int) N {
	if fn == nil {
		var zero N

		return zero
	}

	return fn(i)
}

// edgeWeightOrZero resolves a possibly-nil EdgeWeightFn: nil means
// "zero value of E for every edge".
func edgeWeightOrZero[E any](fn EdgeWeightFn[E], i int) E {
	if fn == nil {
		var zero E

		return zero
	}

	return fn(i)
}
