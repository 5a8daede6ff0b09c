package sic

import "testing"

// markers allocates n ERA nodes to use as distinct, identifiable aux
// endpoints so wiring assertions can check exact connectivity.
func markers(net *Net, n int) []uint32 {
	ms := make([]uint32, n)
	for i := range ms {
		ms[i] = net.Allocate(ERA)
	}
	return ms
}

func TestAnnihilateSpliceAndFree(t *testing.T) {
	net := NewNet()
	x := net.Allocate(CON)
	y := net.Allocate(CON)
	e := markers(net, 4)
	net.Connect(Link(x, 0), Link(y, 0))
	net.Connect(Link(x, 1), Link(e[0], 0))
	net.Connect(Link(x, 2), Link(e[1], 0))
	net.Connect(Link(y, 1), Link(e[2], 0))
	net.Connect(Link(y, 2), Link(e[3], 0))

	var stats Stats
	rewrite(net, x, y, &stats)

	if net.Enter(Link(e[0], 0)) != Link(e[2], 0) || net.Enter(Link(e[2], 0)) != Link(e[0], 0) {
		t.Fatalf("x.1's target not spliced to y.1's target")
	}
	if net.Enter(Link(e[1], 0)) != Link(e[3], 0) || net.Enter(Link(e[3], 0)) != Link(e[1], 0) {
		t.Fatalf("x.2's target not spliced to y.2's target")
	}
	if stats.Rules != 1 || stats.Annis != 1 || stats.Betas != 1 || stats.Dupls != 0 {
		t.Fatalf("stats=%+v, want one anni+beta rule", stats)
	}
	if net.FreeCount() != 2 {
		t.Fatalf("FreeCount()=%d, want 2", net.FreeCount())
	}
}

func TestAnnihilateFanFanIsNotBeta(t *testing.T) {
	net := NewNet()
	x := net.Allocate(FAN)
	y := net.Allocate(FAN)
	e := markers(net, 4)
	net.Connect(Link(x, 0), Link(y, 0))
	net.Connect(Link(x, 1), Link(e[0], 0))
	net.Connect(Link(x, 2), Link(e[1], 0))
	net.Connect(Link(y, 1), Link(e[2], 0))
	net.Connect(Link(y, 2), Link(e[3], 0))

	var stats Stats
	rewrite(net, x, y, &stats)

	if stats.Betas != 0 {
		t.Fatalf("Betas=%d, want 0 for a FAN/FAN annihilation", stats.Betas)
	}
	if stats.Annis != 1 {
		t.Fatalf("Annis=%d, want 1", stats.Annis)
	}
}

func TestCommuteMeshWiring(t *testing.T) {
	net := NewNet()
	x := net.Allocate(CON)
	y := net.Allocate(FAN)
	e := markers(net, 4)
	net.Connect(Link(x, 1), Link(e[0], 0)) // t1
	net.Connect(Link(x, 2), Link(e[1], 0)) // t2
	net.Connect(Link(y, 1), Link(e[2], 0)) // t3
	net.Connect(Link(y, 2), Link(e[3], 0)) // t4
	net.Connect(Link(x, 0), Link(y, 0))

	a := uint32(net.NodeCount())
	b := a + 1

	var stats Stats
	rewrite(net, x, y, &stats)

	check := func(name string, l1, l2 uint32) {
		t.Helper()
		if net.Enter(l1) != l2 {
			t.Fatalf("%s: enter(%d)=%d, want %d", name, l1, net.Enter(l1), l2)
		}
		if net.Enter(l2) != l1 {
			t.Fatalf("%s: enter(%d)=%d, want %d", name, l2, net.Enter(l2), l1)
		}
	}

	check("b.0<->t1", Link(b, 0), Link(e[0], 0))
	check("y.0<->t2", Link(y, 0), Link(e[1], 0))
	check("a.0<->t3", Link(a, 0), Link(e[2], 0))
	check("x.0<->t4", Link(x, 0), Link(e[3], 0))
	check("a.1<->b.1", Link(a, 1), Link(b, 1))
	check("a.2<->y.1", Link(a, 2), Link(y, 1))
	check("x.1<->b.2", Link(x, 1), Link(b, 2))
	check("x.2<->y.2", Link(x, 2), Link(y, 2))

	if net.Kind(a) != CON {
		t.Fatalf("Kind(a)=%d, want CON (kind of x)", net.Kind(a))
	}
	if net.Kind(b) != FAN {
		t.Fatalf("Kind(b)=%d, want FAN (kind of y)", net.Kind(b))
	}
	if stats.Rules != 1 || stats.Dupls != 1 || stats.Annis != 0 {
		t.Fatalf("stats=%+v, want one dupl rule", stats)
	}
	if net.FreeCount() != 0 {
		t.Fatalf("FreeCount()=%d, want 0: commutation frees nothing", net.FreeCount())
	}
}
