package decompose

import "github.com/katalvlaran/mhgraphsat/hgraph"

// Result is either a definitive Bool verdict or a simplified-but-undecided
// MHGraph — the tagged sum simplify_at_leaves/simplify_at_loops produce,
// in place of the source's dynamic bool/MHG dispatch.
type Result struct {
	isBool bool
	b      bool
	g      hgraph.MHGraph
}

// BoolResult wraps a definitive verdict.
func BoolResult(b bool) Result { return Result{isBool: true, b: b} }

// GraphResult wraps an undecided, simplified MHGraph.
func GraphResult(g hgraph.MHGraph) Result { return Result{g: g} }

// IsBool reports whether r carries a definitive verdict.
func (r Result) IsBool() bool { return r.isBool }

// Bool returns the wrapped verdict; only meaningful when IsBool().
func (r Result) Bool() bool { return r.b }

// Graph returns the wrapped MHGraph; only meaningful when !IsBool().
func (r Result) Graph() hgraph.MHGraph { return r.g }
