package sic

// Decode walks net from the root, assigning fresh names to binder ports
// lazily on first visit, and reconstructs a surface term. FAN nodes
// found through their auxiliary ports are duplications with no lexical
// scope of their own; they are collected and wrapped as outermost
// Dup-lets once the main spine has been read, innermost-found-first
// (LIFO), giving a determinate textual ordering.
func Decode(net *Net) *Term {
	names := make(map[uint32]string)
	var lets []uint32
	seen := make(map[uint32]bool)

	main := readTerm(net, net.Enter(0), names, &lets, seen)

	for len(lets) > 0 {
		dup := lets[len(lets)-1]
		lets = lets[:len(lets)-1]
		val := readTerm(net, net.Enter(Link(dup, 0)), names, &lets, seen)
		fst := nameOf(net, Link(dup, 1), names)
		snd := nameOf(net, Link(dup, 2), names)
		main = Dup(fst, snd, val, main)
	}

	return main
}

// nameOf returns "-" if the port is wired to an eraser, otherwise
// assigns (and memoises) the next fresh alphabetical name.
func nameOf(net *Net, varPort uint32, names map[uint32]string) string {
	if net.Kind(Addr(net.Enter(varPort))) == ERA {
		return "-"
	}
	if n, ok := names[varPort]; ok {
		return n
	}
	n := NewName(uint32(len(names)) + 1)
	names[varPort] = n
	return n
}

func readTerm(net *Net, next uint32, names map[uint32]string, lets *[]uint32, seen map[uint32]bool) *Term {
	addr := Addr(next)
	switch net.Kind(addr) {
	case ERA:
		return Set()

	case CON:
		switch Port(next) {
		case 0: // lambda
			name := nameOf(net, Link(addr, 1), names)
			body := readTerm(net, net.Enter(Link(addr, 2)), names, lets, seen)
			return Lam(name, body)
		case 1: // bound variable occurrence
			return Var(nameOf(net, next, names))
		default: // application
			fun := readTerm(net, net.Enter(Link(addr, 0)), names, lets, seen)
			arg := readTerm(net, net.Enter(Link(addr, 1)), names, lets, seen)
			return App(fun, arg)
		}

	default: // FAN
		switch Port(next) {
		case 0: // pair
			fst := readTerm(net, net.Enter(Link(addr, 1)), names, lets, seen)
			snd := readTerm(net, net.Enter(Link(addr, 2)), names, lets, seen)
			return Par(fst, snd)
		default: // duplication variable
			if !seen[addr] {
				seen[addr] = true
				*lets = append(*lets, addr)
			}
			return Var(nameOf(net, next, names))
		}
	}
}
