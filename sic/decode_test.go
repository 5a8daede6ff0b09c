package sic

import "testing"

func TestDecodeRoundTripsIdentity(t *testing.T) {
	net, err := Encode(Lam("x", Var("x")))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	term := Decode(net)
	if term.Kind != KLam {
		t.Fatalf("Kind=%v, want KLam", term.Kind)
	}
	if term.Rhs.Kind != KVar || term.Rhs.Name != term.Name {
		t.Fatalf("body %+v does not reference the binder %q", term.Rhs, term.Name)
	}
}

func TestDecodeUnusedBinderPrintsDash(t *testing.T) {
	net, err := Encode(Lam("x", Set()))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	term := Decode(net)
	if term.Kind != KLam || term.Name != "-" {
		t.Fatalf("got %+v, want a Lam with a '-' binder", term)
	}
}

func TestDecodeAssignsLazyFreshNames(t *testing.T) {
	// \x \y y: only the second binder is ever referenced, so it alone
	// should receive a real generated name; the first is unused ("-").
	net, err := Encode(Lam("x", Lam("y", Var("y"))))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	term := Decode(net)
	if term.Name != "-" {
		t.Fatalf("outer binder = %q, want '-' (never referenced)", term.Name)
	}
	inner := term.Rhs
	if inner.Kind != KLam || inner.Name == "-" {
		t.Fatalf("inner binder = %+v, want a real generated name", inner)
	}
	if inner.Rhs.Kind != KVar || inner.Rhs.Name != inner.Name {
		t.Fatalf("inner body %+v does not reference the inner binder", inner.Rhs)
	}
}

func TestDecodeLiftsDuplicationsAsOutermostLets(t *testing.T) {
	// = a b * | a b: after reduction-free round trip, decoding should
	// surface the duplication as an outer Dup wrapping the Par body.
	net, err := Encode(Dup("a", "b", Set(), Par(Var("a"), Var("b"))))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	term := Decode(net)
	if term.Kind != KDup {
		t.Fatalf("got %+v, want the duplication lifted to the top", term)
	}
	if term.Lhs.Kind != KSet {
		t.Fatalf("dup value = %+v, want Set", term.Lhs)
	}
	if term.Rhs.Kind != KPar {
		t.Fatalf("dup body = %+v, want Par", term.Rhs)
	}
}

func TestDecodeSetIsEra(t *testing.T) {
	net, err := Encode(Set())
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	term := Decode(net)
	if term.Kind != KSet {
		t.Fatalf("Kind=%v, want KSet", term.Kind)
	}
}
