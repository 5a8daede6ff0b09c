package sic

// WithMain appends a `:main <expr>` definition to source the way the CLI
// does, then a trailing reference to main so the definition actually
// resolves: `:name val body` requires a body term after val, and a bare
// `:main <expr>` with nothing following it would leave the parser
// expecting a term it can never find. Appending the reference makes
// "the evaluated term is the resolution of main" literally true instead
// of running the parser off the end of the buffer.
func WithMain(source []byte, expr string) []byte {
	out := make([]byte, 0, len(source)+len(expr)+len(":main \nmain")+1)
	out = append(out, source...)
	out = append(out, '\n')
	out = append(out, ':')
	out = append(out, "main "...)
	out = append(out, expr...)
	out = append(out, "\nmain"...)
	return out
}
