package sic

import "strconv"

// binding is one entry of the parser's lexical context: a plain binder
// (Lam/Dup parameter, val == nil) or a `:name val body` definition
// available for copy-on-use substitution.
type binding struct {
	name string
	val  *Term
}

// parser walks a byte buffer by hand and returns a Term: no
// backtracking, a typed error instead of a panic on malformed input.
type parser struct {
	src []byte
	pos int
	ctx []binding
	idx uint32 // copy-on-use namespace counter, shared across the whole parse
}

// Parse turns a byte buffer into a surface term.
func Parse(src []byte) (*Term, error) {
	p := &parser{src: src}
	return p.parseTerm()
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r'
}

func isDelim(b byte) bool {
	switch b {
	case '\\', '/', '|', '=', '#', '*':
		return true
	}
	return false
}

func (p *parser) errorf(msg string) error {
	return &ParseError{Offset: p.pos, Message: msg}
}

// skipTrivia advances past whitespace and nested `(...)` comments.
// Comments nest: inside a comment every `(` increments the depth and
// every `)` decrements it. All other bytes inside, including keyword
// characters, are skipped: comment contents are entirely opaque.
func (p *parser) skipTrivia() error {
	depth := 0
	for p.pos < len(p.src) {
		b := p.src[p.pos]
		switch {
		case depth > 0:
			if b == '(' {
				depth++
			} else if b == ')' {
				depth--
			}
			p.pos++
		case b == '(':
			depth++
			p.pos++
		case isSpace(b):
			p.pos++
		default:
			return nil
		}
	}
	if depth > 0 {
		return p.errorf("unterminated comment")
	}
	return nil
}

// parseName reads a maximal run of non-delimiter, non-whitespace bytes.
func (p *parser) parseName() (string, error) {
	if err := p.skipTrivia(); err != nil {
		return "", err
	}
	if p.pos >= len(p.src) {
		return "", p.errorf("unexpected end of input while reading a name")
	}
	if isDelim(p.src[p.pos]) {
		return "", p.errorf("name cannot begin with a reserved character")
	}
	start := p.pos
	for p.pos < len(p.src) && !isSpace(p.src[p.pos]) && !isDelim(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("empty name")
	}
	return string(p.src[start:p.pos]), nil
}

func (p *parser) pushBinder(name string) {
	p.ctx = append(p.ctx, binding{name: name})
}

func (p *parser) pushDef(name string, val *Term) {
	p.ctx = append(p.ctx, binding{name: name, val: val})
}

func (p *parser) popBinding() {
	p.ctx = p.ctx[:len(p.ctx)-1]
}

// parseTerm parses one term and returns the remainder implicitly via
// p.pos. It does not require the whole buffer to be consumed — exactly
// one term is read from the current position, the same contract as the
// original parser, which lets the CLI's `:main <expr>` suffix be parsed
// as the tail of a larger `:`-chain rather than a separate document.
func (p *parser) parseTerm() (*Term, error) {
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}

	switch p.src[p.pos] {
	case '\\': // abstraction
		p.pos++
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		p.pushBinder(name)
		body, err := p.parseTerm()
		p.popBinding()
		if err != nil {
			return nil, err
		}
		return Lam(name, body), nil

	case '/': // application
		p.pos++
		fun, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return App(fun, arg), nil

	case '|': // pair
		p.pos++
		fst, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		snd, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Par(fst, snd), nil

	case '=': // duplication
		p.pos++
		fst, err := p.parseName()
		if err != nil {
			return nil, err
		}
		snd, err := p.parseName()
		if err != nil {
			return nil, err
		}
		p.pushBinder(snd)
		p.pushBinder(fst)
		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		next, err := p.parseTerm()
		p.popBinding()
		p.popBinding()
		if err != nil {
			return nil, err
		}
		return Dup(fst, snd, val, next), nil

	case ':': // let (copy-on-use definition)
		p.pos++
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		p.pushDef(name, val)
		body, err := p.parseTerm()
		p.popBinding()
		if err != nil {
			return nil, err
		}
		return body, nil

	case '*': // unit
		p.pos++
		return Set(), nil

	default: // variable, or a copy-on-use reference to a definition
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		for i := len(p.ctx) - 1; i >= 0; i-- {
			if p.ctx[i].name != name {
				continue
			}
			if p.ctx[i].val == nil {
				break // a plain binder: leave as a bound variable occurrence
			}
			result := copyTerm(name, p.idx, p.ctx[i].val)
			p.idx++
			return result, nil
		}
		return Var(name), nil
	}
}

// namespace renames a binder or variable for a fresh copy-on-use
// instance: space#idx#name. "-" is never renamed.
func namespace(space string, idx uint32, name string) string {
	if name == "-" {
		return name
	}
	return space + "#" + strconv.FormatUint(uint64(idx), 10) + "#" + name
}

// copyTerm makes a namespaced deep copy of term so that repeated uses of
// the same definition produce alpha-disjoint copies.
func copyTerm(space string, idx uint32, term *Term) *Term {
	switch term.Kind {
	case KLam:
		return Lam(namespace(space, idx, term.Name), copyTerm(space, idx, term.Rhs))
	case KApp:
		return App(copyTerm(space, idx, term.Lhs), copyTerm(space, idx, term.Rhs))
	case KPar:
		return Par(copyTerm(space, idx, term.Lhs), copyTerm(space, idx, term.Rhs))
	case KDup:
		return Dup(
			namespace(space, idx, term.Fst),
			namespace(space, idx, term.Snd),
			copyTerm(space, idx, term.Lhs),
			copyTerm(space, idx, term.Rhs),
		)
	case KVar:
		return Var(namespace(space, idx, term.Name))
	default: // KSet
		return Set()
	}
}
