package sic

// Kind tags the six surface forms of the calculus.
type Kind int

const (
	KLam Kind = iota // affine abstraction
	KApp             // application
	KPar             // pair
	KDup             // duplication binding two names in Rhs
	KVar             // variable occurrence
	KSet             // unit
)

// Term is a node of the surface syntax tree. Terms are immutable once
// built: the parser produces them, Encode consumes one, and Decode
// produces a fresh one with regenerated names. Lhs/Rhs are reused
// across variants the way a small hand-written AST node typically
// shares lhs/rhs slots rather than growing one field per variant:
//
//	KLam: Lhs unused, Rhs = body
//	KApp: Lhs = fun,   Rhs = arg
//	KPar: Lhs = fst,   Rhs = snd
//	KDup: Lhs = val,   Rhs = next
//	KVar, KSet: neither used
type Term struct {
	Kind Kind
	Name string // KLam binder, KVar occurrence name ("_" = unused binder)
	Fst  string // KDup first binder name ("-" = unused)
	Snd  string // KDup second binder name ("-" = unused)
	Lhs  *Term
	Rhs  *Term
}

// Lam builds an affine abstraction. name == "_" marks an unused binder.
func Lam(name string, body *Term) *Term {
	return &Term{Kind: KLam, Name: name, Rhs: body}
}

// App builds an application.
func App(fun, arg *Term) *Term {
	return &Term{Kind: KApp, Lhs: fun, Rhs: arg}
}

// Par builds a pair.
func Par(fst, snd *Term) *Term {
	return &Term{Kind: KPar, Lhs: fst, Rhs: snd}
}

// Dup builds a duplication binding fst and snd in next. "-" marks an
// unused binder.
func Dup(fst, snd string, val, next *Term) *Term {
	return &Term{Kind: KDup, Fst: fst, Snd: snd, Lhs: val, Rhs: next}
}

// Var builds a variable occurrence.
func Var(name string) *Term {
	return &Term{Kind: KVar, Name: name}
}

// Set builds the unit value.
func Set() *Term {
	return &Term{Kind: KSet}
}
