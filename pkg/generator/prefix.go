package generator

// chunkSize is the word size used when comparing long prefixes.
const chunkSize = 8

// PrefixEntry is one target prefix, pre-converted for the hot loop.
type PrefixEntry struct {
	Text  string // Prefix as supplied by the caller
	Bytes []byte // Raw bytes of Text
	Len   int    // len(Bytes)
}

// PrefixTable is an ordered, read-only list of prefixes.
// Safe to share between goroutines.
type PrefixTable []PrefixEntry

// NewPrefixTable converts prefixes once so matching does not allocate.
// Order is preserved and duplicates are kept.
func NewPrefixTable(prefixes []string) PrefixTable {
	table := make(PrefixTable, 0, len(prefixes))
	for _, p := range prefixes {
		table = append(table, PrefixEntry{
			Text:  p,
			Bytes: []byte(p),
			Len:   len(p),
		})
	}
	return table
}

// Texts returns the prefixes in table order.
func (t PrefixTable) Texts() []string {
	texts := make([]string, len(t))
	for i, e := range t {
		texts[i] = e.Text
	}
	return texts
}

// Match returns the first entry, in table order, that encoded starts with.
// Matching is case-sensitive and byte exact.
func (t PrefixTable) Match(encoded string) (PrefixEntry, bool) {
	for _, e := range t {
		if hasPrefix(encoded, e.Bytes) {
			return e, true
		}
	}
	return PrefixEntry{}, false
}

// hasPrefix reports whether encoded begins with prefix.
// Prefixes longer than one word are compared word by word, then the tail.
func hasPrefix(encoded string, prefix []byte) bool {
	n := len(prefix)
	if len(encoded) < n {
		return false
	}
	if n <= chunkSize {
		return encoded[:n] == string(prefix)
	}

	i := 0
	for ; i+chunkSize <= n; i += chunkSize {
		if encoded[i:i+chunkSize] != string(prefix[i:i+chunkSize]) {
			return false
		}
	}
	return encoded[i:n] == string(prefix[i:])
}
