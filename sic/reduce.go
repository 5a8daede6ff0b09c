package sic

// Reduce walks net from the root along a deterministic spine, applying
// rewrite rules to every active pair it finds, until no reachable redex
// remains and the schedule drains. It returns the accumulated counters.
//
// Each iteration either descends one more port into the net or, on
// finding two principal ports facing each other, fires a rewrite and
// resumes from the equivalent position in the rewritten graph.
func Reduce(net *Net) Stats {
	var stats Stats

	var schedule []uint32 // links whose subtrees are not yet explored
	var exit []uint32      // auxiliary port taken at each pending descent

	next := net.Enter(0)
	var prev, back uint32

	for next != 0 || len(schedule) > 0 {
		if next == 0 {
			l := schedule[len(schedule)-1]
			schedule = schedule[:len(schedule)-1]
			next = net.Enter(l)
		}
		prev = net.Enter(next)

		switch {
		case Port(next) == 0 && Port(prev) == 0 && Addr(prev) != 0:
			e := exit[len(exit)-1]
			exit = exit[:len(exit)-1]
			back = net.Enter(Link(Addr(prev), e))
			rewrite(net, Addr(prev), Addr(next), &stats)
			next = net.Enter(back)
		case Port(next) == 0:
			schedule = append(schedule, Link(Addr(next), 2))
			next = net.Enter(Link(Addr(next), 1))
		default:
			exit = append(exit, Port(next))
			next = net.Enter(Link(Addr(next), 0))
		}
		stats.Loops++
	}

	return stats
}
