package symbolic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Variable is a positive integer identifying a propositional variable.
// Variables carry identity only; Variable(1) always refers to the same
// variable.
type Variable int

// NewVariable validates and constructs a Variable. n must be >= 1.
func NewVariable(n int) (Variable, error) {
	if n == 0 {
		return 0, ErrZeroValue
	}
	if n < 0 {
		return 0, ErrNegativeVar
	}
	return Variable(n), nil
}

// Bool is a two-valued symbolic constant, distinct from any Variable.
// FALSE orders before TRUE.
type Bool bool

const (
	// FALSE is the symbolic false constant.
	FALSE Bool = false
	// TRUE is the symbolic true constant.
	TRUE Bool = true
)

func (b Bool) String() string {
	if b {
		return "T"
	}
	return "F"
}

// litKind tags the two cases of Literal.
type litKind uint8

const (
	kindInt litKind = iota
	kindBool
)

// Literal is either a signed, nonzero integer (Int(n): n>0 is the variable
// n, n<0 is the negation of variable |n|) or a Bool constant. Int(n) is
// never equal to Bool(_), regardless of value.
type Literal struct {
	kind litKind
	n    int  // valid when kind == kindInt; nonzero
	b    Bool // valid when kind == kindBool
}

// Int constructs a Literal from a nonzero signed integer.
func Int(n int) (Literal, error) {
	if n == 0 {
		return Literal{}, ErrZeroValue
	}
	return Literal{kind: kindInt, n: n}, nil
}

// FromBool constructs a Literal wrapping a Bool constant.
func FromBool(b Bool) Literal {
	return Literal{kind: kindBool, b: b}
}

// IsBool reports whether this Literal wraps a Bool constant.
func (l Literal) IsBool() bool { return l.kind == kindBool }

// IsInt reports whether this Literal wraps a signed variable reference.
func (l Literal) IsInt() bool { return l.kind == kindInt }

// BoolValue returns the wrapped Bool and true iff IsBool().
func (l Literal) BoolValue() (Bool, bool) {
	if l.kind != kindBool {
		return FALSE, false
	}
	return l.b, true
}

// IntValue returns the wrapped signed integer and true iff IsInt().
func (l Literal) IntValue() (int, bool) {
	if l.kind != kindInt {
		return 0, false
	}
	return l.n, true
}

// Lit constructs a Literal from an already-built Literal (returned as-is,
// giving the idempotence required of constructors), a Bool, or a nonzero
// int. Any other type is rejected.
func Lit(x any) (Literal, error) {
	switch v := x.(type) {
	case Literal:
		return v, nil
	case Bool:
		return FromBool(v), nil
	case bool:
		return FromBool(Bool(v)), nil
	case int:
		return Int(v)
	default:
		return Literal{}, fmt.Errorf("symbolic: cannot build a Literal from %T: %w", x, ErrZeroValue)
	}
}

// Neg returns the negation of l. Int(n) negates to Int(-n); Bool constants
// swap. Total: defined for every Literal.
func Neg(l Literal) Literal {
	if l.kind == kindBool {
		return FromBool(!l.b)
	}
	return Literal{kind: kindInt, n: -l.n}
}

// AbsoluteValue returns Int(|n|) for an Int literal, and Bool(TRUE) for any
// Bool literal — used to derive a vertex id from a literal regardless of
// sign.
func AbsoluteValue(l Literal) Literal {
	if l.kind == kindBool {
		return FromBool(TRUE)
	}
	if l.n < 0 {
		return Literal{kind: kindInt, n: -l.n}
	}
	return l
}

// canonicalOrder gives literals a fixed total order: Bool < Int, Bool
// ordered FALSE < TRUE, Int ordered by signed value.
func (l Literal) canonicalOrder() (bucket int, key int) {
	if l.kind == kindBool {
		if l.b {
			return 0, 1
		}
		return 0, 0
	}
	return 1, l.n
}

// Less reports whether l sorts strictly before other in the canonical
// Literal order (Bool < Int; Int ordered by signed value).
func (l Literal) Less(other Literal) bool {
	lb, lk := l.canonicalOrder()
	ob, ok := other.canonicalOrder()
	if lb != ob {
		return lb < ob
	}
	return lk < ok
}

// Equal reports tag+value equality between two Literals.
func (l Literal) Equal(other Literal) bool {
	if l.kind != other.kind {
		return false
	}
	if l.kind == kindBool {
		return l.b == other.b
	}
	return l.n == other.n
}

func (l Literal) String() string {
	if l.kind == kindBool {
		return l.b.String()
	}
	return strconv.Itoa(l.n)
}

// Clause is a non-empty, duplicate-free, unordered set of Literals, read
// disjunctively.
type Clause struct {
	lits map[Literal]struct{}
}

// NewClause builds a Clause from xs, mapping Lit over each element. xs must
// be non-empty. An already-built Clause passed as the only element is
// returned unchanged.
func NewClause(xs ...any) (Clause, error) {
	if len(xs) == 0 {
		return Clause{}, ErrEmpty
	}
	if len(xs) == 1 {
		if c, ok := xs[0].(Clause); ok {
			return c, nil
		}
	}
	set := make(map[Literal]struct{}, len(xs))
	for _, x := range xs {
		l, err := Lit(x)
		if err != nil {
			return Clause{}, err
		}
		set[l] = struct{}{}
	}
	return Clause{lits: set}, nil
}

// ClauseFromLiterals builds a Clause directly from a slice of Literals.
func ClauseFromLiterals(lits []Literal) (Clause, error) {
	if len(lits) == 0 {
		return Clause{}, ErrEmpty
	}
	set := make(map[Literal]struct{}, len(lits))
	for _, l := range lits {
		set[l] = struct{}{}
	}
	return Clause{lits: set}, nil
}

// Len returns the number of distinct literals in the clause.
func (c Clause) Len() int { return len(c.lits) }

// Has reports whether l is a member of c.
func (c Clause) Has(l Literal) bool {
	_, ok := c.lits[l]
	return ok
}

// Literals returns the clause's members in canonical sorted order.
func (c Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.lits))
	for l := range c.lits {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Equal reports whether c and other contain exactly the same literals.
func (c Clause) Equal(other Clause) bool {
	if len(c.lits) != len(other.lits) {
		return false
	}
	for l := range c.lits {
		if _, ok := other.lits[l]; !ok {
			return false
		}
	}
	return true
}

// String renders the clause's canonical key: sorted literal strings joined
// by "∨". Used both for display and as a map key for CNF/MHGraph sets.
func (c Clause) String() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, "∨")
}

// CNF is a non-empty, duplicate-free, unordered set of Clauses, read
// conjunctively.
type CNF struct {
	clauses map[string]Clause
}

// NewCNF builds a CNF, mapping NewClause over each element of xss. xss must
// be non-empty.
func NewCNF(xss ...[]any) (CNF, error) {
	if len(xss) == 0 {
		return CNF{}, ErrEmpty
	}
	set := make(map[string]Clause, len(xss))
	for _, xs := range xss {
		c, err := NewClause(xs...)
		if err != nil {
			return CNF{}, err
		}
		set[c.String()] = c
	}
	return CNF{clauses: set}, nil
}

// CNFFromClauses builds a CNF directly from a slice of Clauses.
func CNFFromClauses(clauses []Clause) (CNF, error) {
	if len(clauses) == 0 {
		return CNF{}, ErrEmpty
	}
	set := make(map[string]Clause, len(clauses))
	for _, c := range clauses {
		set[c.String()] = c
	}
	return CNF{clauses: set}, nil
}

// Len returns the number of distinct clauses.
func (f CNF) Len() int { return len(f.clauses) }

// Clauses returns the CNF's clauses in canonical sorted order (by clause
// String()).
func (f CNF) Clauses() []Clause {
	out := make([]Clause, 0, len(f.clauses))
	for _, c := range f.clauses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Has reports whether a clause equal to c is a member of f.
func (f CNF) Has(c Clause) bool {
	_, ok := f.clauses[c.String()]
	return ok
}

// Equal reports whether f and other contain exactly the same clauses.
func (f CNF) Equal(other CNF) bool {
	if len(f.clauses) != len(other.clauses) {
		return false
	}
	for k := range f.clauses {
		if _, ok := other.clauses[k]; !ok {
			return false
		}
	}
	return true
}

// String renders the CNF's canonical key: sorted clause keys joined by "∧".
func (f CNF) String() string {
	clauses := f.Clauses()
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, "∧")
}

// Lits returns the union of all literals appearing in any clause of f, in
// canonical sorted order.
func Lits(f CNF) []Literal {
	seen := make(map[Literal]struct{})
	for _, c := range f.Clauses() {
		for _, l := range c.Literals() {
			seen[l] = struct{}{}
		}
	}
	out := make([]Literal, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Assignment is a finite partial map from Variable to Bool.
type Assignment map[Variable]Bool
