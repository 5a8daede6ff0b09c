package sic

// pendingVar records a Var occurrence found while walking the term, to
// be resolved against scope once the whole term has been walked.
type pendingVar struct {
	name string
	link uint32
}

// Encode translates term into an interaction net, returning a net whose
// root (node 0) is wired to the translation. It fails if the term
// contains an unbound variable or a binder used more than once.
func Encode(term *Term) (*Net, error) {
	net := NewNet()
	scope := make(map[string]uint32)
	var vars []pendingVar

	main := encodeTerm(net, term, 0, scope, &vars)

	for _, v := range vars {
		binder, ok := scope[v.name]
		if !ok {
			return nil, &UnboundVariableError{Name: v.name}
		}
		if net.Enter(binder) == binder {
			net.Connect(v.link, binder)
		} else {
			return nil, &NonAffineUseError{Name: v.name}
		}
	}

	// Any binder never claimed by a Var occurrence is unused; erase it.
	for _, binder := range scope {
		if net.Enter(binder) == binder {
			eraseAt(net, binder)
		}
	}

	// A root-level Var returns the root link itself and was wired to its
	// binder above; connecting 0 to 0 here would undo that.
	if main != 0 {
		net.Connect(0, main)
	}
	return net, nil
}

// eraseAt allocates a short-circuited ERA node and attaches it to link l.
func eraseAt(net *Net, l uint32) {
	era := net.Allocate(ERA)
	net.Connect(Link(era, 1), Link(era, 2))
	net.Connect(l, Link(era, 0))
}

// encodeTerm walks term, emitting nodes and connecting everything except
// dangling variable occurrences (collected into vars), and returns the
// link at which the caller (at up) should be wired to this subterm.
func encodeTerm(net *Net, term *Term, up uint32, scope map[string]uint32, vars *[]pendingVar) uint32 {
	switch term.Kind {
	case KLam:
		fun := net.Allocate(CON)
		scope[term.Name] = Link(fun, 1)
		if term.Name == "_" {
			eraseAt(net, Link(fun, 1))
		}
		bod := encodeTerm(net, term.Rhs, Link(fun, 2), scope, vars)
		net.Connect(Link(fun, 2), bod)
		return Link(fun, 0)

	case KApp:
		app := net.Allocate(CON)
		fun := encodeTerm(net, term.Lhs, Link(app, 0), scope, vars)
		net.Connect(Link(app, 0), fun)
		arg := encodeTerm(net, term.Rhs, Link(app, 1), scope, vars)
		net.Connect(Link(app, 1), arg)
		return Link(app, 2)

	case KPar:
		dup := net.Allocate(FAN)
		fst := encodeTerm(net, term.Lhs, Link(dup, 1), scope, vars)
		net.Connect(Link(dup, 1), fst)
		snd := encodeTerm(net, term.Rhs, Link(dup, 2), scope, vars)
		net.Connect(Link(dup, 2), snd)
		return Link(dup, 0)

	case KDup:
		dup := net.Allocate(FAN)
		scope[term.Fst] = Link(dup, 1)
		scope[term.Snd] = Link(dup, 2)
		if term.Fst == "-" {
			eraseAt(net, Link(dup, 1))
		}
		if term.Snd == "-" {
			eraseAt(net, Link(dup, 2))
		}
		val := encodeTerm(net, term.Lhs, Link(dup, 0), scope, vars)
		net.Connect(val, Link(dup, 0))
		return encodeTerm(net, term.Rhs, up, scope, vars)

	case KSet:
		set := net.Allocate(ERA)
		net.Connect(Link(set, 1), Link(set, 2))
		return Link(set, 0)

	default: // KVar
		*vars = append(*vars, pendingVar{name: term.Name, link: up})
		return up
	}
}
