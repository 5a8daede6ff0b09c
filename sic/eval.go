package sic

// Eval takes an already-parsed term, encodes it, reduces it to normal
// form, and decodes the result. It is the library-level equivalent of
// the reference implementation's term-to-term reduce, split into its
// three named stages so callers (and tests) can inspect each one
// independently.
func Eval(term *Term) (*Term, Stats, error) {
	net, err := Encode(term)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Reduce(net)
	return Decode(net), stats, nil
}
