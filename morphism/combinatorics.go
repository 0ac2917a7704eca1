package morphism

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/mhgraphsat/hgraph"
)

// permutations lazily yields every permutation of vs. Go's stat/combin
// package exposes Combinations and CombinationGenerator but no permutation
// generator, so this is a hand-rolled backtracking enumerator (a used-flag
// per position, not Heap's algorithm); each yielded slice is a fresh copy,
// safe for the caller to retain.
func permutations(vs []hgraph.Vertex) iter.Seq[[]hgraph.Vertex] {
	return func(yield func([]hgraph.Vertex) bool) {
		n := len(vs)
		work := make([]hgraph.Vertex, n)
		copy(work, vs)
		used := make([]bool, n)
		acc := make([]hgraph.Vertex, 0, n)

		var backtrack func() bool
		backtrack = func() bool {
			if len(acc) == n {
				out := make([]hgraph.Vertex, n)
				copy(out, acc)
				return yield(out)
			}
			for i := 0; i < n; i++ {
				if used[i] {
					continue
				}
				used[i] = true
				acc = append(acc, work[i])
				if !backtrack() {
					acc = acc[:len(acc)-1]
					used[i] = false
					return false
				}
				acc = acc[:len(acc)-1]
				used[i] = false
			}
			return true
		}
		backtrack()
	}
}

// combinationsWithReplacement lazily yields every non-decreasing-index
// length-k selection from pool (itertools.combinations_with_replacement
// semantics). Needed because gonum's combin package only implements
// combinations without repetition.
func combinationsWithReplacement(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k == 0 {
			yield(nil)
			return
		}
		if n == 0 {
			return
		}
		indices := make([]int, k)
		var recurse func(pos, start int) bool
		recurse = func(pos, start int) bool {
			if pos == k {
				out := make([]int, k)
				copy(out, indices)
				return yield(out)
			}
			for i := start; i < n; i++ {
				indices[pos] = i
				if !recurse(pos+1, i) {
					return false
				}
			}
			return true
		}
		recurse(0, 0)
	}
}

// GenerateVertexMaps enumerates candidate VertexMaps from h1 to h2: every
// permutation of V(h1) paired with every size-|V(h1)| selection from
// V(h2) — combinations (no repeats) when injective is requested,
// combinations-with-replacement otherwise — dropping any pairing that
// fails the corresponding validating constructor.
func GenerateVertexMaps(h1, h2 hgraph.MHGraph, injective bool) iter.Seq[VertexMap] {
	return func(yield func(VertexMap) bool) {
		v1 := h1.Vertices()
		v2 := h2.Vertices()
		k := len(v1)
		if k > len(v2) {
			return
		}

		tryPairing := func(perm []hgraph.Vertex, selection []hgraph.Vertex) bool {
			tau := make(map[hgraph.Vertex]hgraph.Vertex, k)
			for i, v := range perm {
				tau[v] = selection[i]
			}
			if injective {
				ivm, ok := NewInjectiveVertexMap(h1, h2, tau)
				if !ok {
					return true
				}
				return yield(ivm.VertexMap)
			}
			vm, ok := NewVertexMap(h1, h2, tau)
			if !ok {
				return true
			}
			return yield(vm)
		}

		for perm := range permutations(v1) {
			if injective {
				for _, combo := range combin.Combinations(len(v2), k) {
					selection := make([]hgraph.Vertex, k)
					for i, j := range combo {
						selection[i] = v2[j]
					}
					if !tryPairing(perm, selection) {
						return
					}
				}
			} else {
				for combo := range combinationsWithReplacement(len(v2), k) {
					selection := make([]hgraph.Vertex, k)
					for i, j := range combo {
						selection[i] = v2[j]
					}
					if !tryPairing(perm, selection) {
						return
					}
				}
			}
		}
	}
}
