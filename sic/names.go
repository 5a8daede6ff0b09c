package sic

// NewName produces a fresh variable name from a 1-based index using
// bijective base-26 numeration: a, b, …, z, aa, … NameIndex is its
// inverse, so NameIndex(NewName(i)) == i for every i > 0.
func NewName(idx uint32) string {
	var name []byte
	for idx > 0 {
		idx--
		name = append(name, byte('a'+idx%26))
		idx /= 26
	}
	return string(name)
}

// NameIndex inverts NewName.
func NameIndex(name string) uint32 {
	var idx uint32
	for i := len(name) - 1; i >= 0; i-- {
		idx = idx*26 + uint32(name[i]-'a') + 1
	}
	return idx
}
