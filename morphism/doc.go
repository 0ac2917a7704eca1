// Package morphism implements structural comparison between MHGraphs:
// vertex relabelings (VertexMap, InjectiveVertexMap), the hyperedge-preserving
// Morphism built on top of them, subgraph and isomorphism search, and
// deduplication of a sequence up to isomorphism.
//
// Candidate constructors (VertexMap, InjectiveVertexMap, Morphism) return an
// ok bool rather than an error: these are evaluated tens of thousands of
// times during a single subgraph search, and a non-match is an expected,
// not exceptional, outcome.
//
// Enumeration (GenerateVertexMaps, SubgraphSearch) is exposed as
// iter.Seq so a caller can stop at the first hit without paying for the
// full combinatorial blowup. Permutations are generated by a hand-rolled
// backtracking iterator, since gonum.org/v1/gonum/stat/combin
// offers Combinations/CombinationGenerator but no permutation generator.
package morphism
