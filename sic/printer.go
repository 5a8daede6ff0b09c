package sic

import "bytes"

// Print renders term in the canonical ASCII surface syntax: a single
// space between syntactic children, a newline after a Dup's val, and
// the operators \, /, |, =, * for Lam, App, Par, Dup, and Set.
func Print(term *Term) []byte {
	var buf bytes.Buffer
	print(&buf, term)
	return buf.Bytes()
}

func print(buf *bytes.Buffer, term *Term) {
	switch term.Kind {
	case KLam:
		buf.WriteByte('\\')
		buf.WriteString(term.Name)
		buf.WriteByte(' ')
		print(buf, term.Rhs)
	case KApp:
		buf.WriteByte('/')
		print(buf, term.Lhs)
		buf.WriteByte(' ')
		print(buf, term.Rhs)
	case KPar:
		buf.WriteByte('|')
		buf.WriteByte(' ')
		print(buf, term.Lhs)
		buf.WriteByte(' ')
		print(buf, term.Rhs)
	case KDup:
		buf.WriteByte('=')
		buf.WriteByte(' ')
		buf.WriteString(term.Fst)
		buf.WriteByte(' ')
		buf.WriteString(term.Snd)
		buf.WriteByte(' ')
		print(buf, term.Lhs)
		buf.WriteByte('\n')
		print(buf, term.Rhs)
	case KSet:
		buf.WriteByte('*')
	case KVar:
		buf.WriteString(term.Name)
	}
}
