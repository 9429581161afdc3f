package pathresolve

import "iter"

// Entry is a leaf of a flattened data tree.
type Entry struct {
	Path  string
	Value any
}

// Flatten maps the whole tree to its leaves, keyed by fully concrete dotted path,
// in depth-first natural order. Empty containers contribute no entries.
// A scalar root yields a single entry with an empty path.
func Flatten(data any) []Entry {
	var entries []Entry
	for e := range walk(data) {
		entries = append(entries, e)
	}
	return entries
}

func walk(data any) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walkNode(data, "", yield)
	}
}

func walkNode(node any, path string, yield func(Entry) bool) bool {
	seq, ok := children(node)
	if !ok {
		return yield(Entry{Path: path, Value: node})
	}
	for key, val := range seq {
		next := key
		if path != "" {
			next = path + Separator + key
		}
		if !walkNode(val, next, yield) {
			return false
		}
	}
	return true
}
