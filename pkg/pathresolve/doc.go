// Package pathresolve matches dotted wildcard patterns such as "users.*.email" against
// nested data trees built from mappings and sequences.
//
// Two query styles are offered and intentionally differ in how they treat wildcards:
//
//   - ResolveAll expands every "*" segment to each key or index present at that depth and
//     lazily yields (concrete path, value) pairs. It is the iteration primitive used by
//     rule predicates.
//   - ResolveFirst flattens the tree to leaf paths and returns the first leaf whose path
//     matches the pattern, where "*" only matches numeric (sequence index) segments.
//     Predicates use it to fetch a single related value, e.g. a confirmation field.
//
// # Data trees
//
// Supported containers are *Object (an insertion-ordered map), map[string]any, []any and,
// through reflection, any map with string keys and any slice or array. Plain Go maps are
// enumerated in sorted key order; use DecodeJSON or Object to keep document order.
// Absent values are reported as nil.
//
// Input data must be acyclic; wildcard expansion over a cyclic structure does not terminate.
//
// # Usage
//
//	data, _ := pathresolve.DecodeJSON(strings.NewReader(`{"items":[{"qty":1},{}]}`))
//	for path, value := range pathresolve.ResolveAll(data, "items.*.qty") {
//		fmt.Println(path, value) // items.0.qty 1, then items.1.qty <nil>
//	}
//
//	v, ok := pathresolve.ResolveFirst(data, "items.*.qty") // json.Number("1"), true
package pathresolve
