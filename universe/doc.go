// Package universe models the input of a pairwise generation request and
// enumerates the pair universe that a covering array must satisfy.
//
// Overview:
//
//   - A Parameter is a named, ordered list of candidate values.
//   - A Pair joins one value of one parameter with one value of another
//     parameter. Pairs are unordered: NewPair(a, b) and NewPair(b, a) share
//     the same PairKey.
//   - A Universe holds every Pair derivable from every unordered combination
//     of two distinct parameters crossed with every combination of their
//     values. Each Pair gets a dense integer ID in [0, Size()).
//
// Size:
//
//	Size() = Σ_{i<j} |values_i| · |values_j|
//
// The order of IDs is deterministic: parameter pairs (i, j) in lexicographic
// index order, then values of i and j in declared order. Building twice from
// the same parameters yields identical keys and IDs.
//
// Normalization and validation:
//
//   - Normalize deep-copies the input and removes duplicated values, keeping
//     the first occurrence ("a","a","b" → "a","b").
//   - Validate rejects fewer than 2 parameters, empty or duplicated names,
//     parameters without values and empty value strings. Nothing is silently
//     corrected; every rejection wraps ErrInvalidInput.
//
// Complexity:
//
//   - Build: O(Size()) time and space.
//   - ID:    O(1).
//   - Satisfied: O(n²) for n parameters.
//
// Thread safety:
//
//   - A Universe is read-only after Build and may be shared between goroutines.
package universe
