package sic

// Stats accumulates reduction counters, reported back to the caller
// once the walk finishes.
type Stats struct {
	Loops uint64 // walker iterations
	Rules uint64 // rewrites applied (Annis + Dupls)
	Betas uint64 // CON/CON annihilations (beta reductions)
	Dupls uint64 // commutations
	Annis uint64 // annihilations (CON/CON or FAN/FAN)
}

// rewrite applies the one local rule that fires on an active pair: x and
// y are distinct non-root nodes whose port 0s are connected to each
// other.
func rewrite(net *Net, x, y uint32, stats *Stats) {
	stats.Rules++
	if net.Kind(x) == net.Kind(y) {
		annihilate(net, x, y, stats)
	} else {
		commute(net, x, y, stats)
	}
}

// annihilate splices the two nodes' auxiliary ports across and frees
// both. When both are CON this is beta reduction; when both are FAN it
// collapses a pair immediately consumed by its matching duplication.
func annihilate(net *Net, x, y uint32, stats *Stats) {
	if net.Kind(x) == CON {
		stats.Betas++
	}
	stats.Annis++
	net.Connect(net.Enter(Link(x, 1)), net.Enter(Link(y, 1)))
	net.Connect(net.Enter(Link(x, 2)), net.Enter(Link(y, 2)))
	net.Free(x)
	net.Free(y)
}

// commute allocates a copy of each node of the opposite kind and rewires
// the four nodes into the canonical interaction-combinators duplication
// mesh. No nodes are freed. Each target is read just before it is wired,
// so when x's or y's auxiliary ports point at each other the later reads
// follow the links the earlier connects made.
func commute(net *Net, x, y uint32, stats *Stats) {
	stats.Dupls++
	a := net.Allocate(net.Kind(x))
	b := net.Allocate(net.Kind(y))

	t1 := net.Enter(Link(x, 1))
	net.Connect(Link(b, 0), t1)
	t2 := net.Enter(Link(x, 2))
	net.Connect(Link(y, 0), t2)
	t3 := net.Enter(Link(y, 1))
	net.Connect(Link(a, 0), t3)
	t4 := net.Enter(Link(y, 2))
	net.Connect(Link(x, 0), t4)

	net.Connect(Link(a, 1), Link(b, 1))
	net.Connect(Link(a, 2), Link(y, 1))
	net.Connect(Link(x, 1), Link(b, 2))
	net.Connect(Link(x, 2), Link(y, 2))
}
