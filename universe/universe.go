package universe

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// pairRef locates a pair by parameter and value indices, with i < j.
type pairRef struct {
	i, a int
	j, b int
}

// Universe is the immutable set of all pairs a covering array must satisfy.
type Universe struct {
	params []Parameter
	byName map[string]int
	values []map[string]int

	// offset[i][j] is the first ID of the block for parameters i < j.
	offset [][]int
	refs   []pairRef
	byKey  map[PairKey]int
}

// Build normalizes and validates params, then enumerates the pair universe.
//
// Errors: a wrapped ErrInvalidInput from Validate; no universe is built.
//
// Complexity: O(Size()) time and space.
func Build(params []Parameter) (*Universe, error) {
	norm := Normalize(params)
	if err := Validate(norm); err != nil {
		return nil, err
	}

	n := len(norm)
	u := &Universe{
		params: norm,
		byName: make(map[string]int, n),
		values: make([]map[string]int, n),
		offset: make([][]int, n),
	}
	for i, p := range norm {
		u.byName[p.Name] = i
		u.values[i] = make(map[string]int, len(p.Values))
		for k, v := range p.Values {
			u.values[i][v] = k
		}
		u.offset[i] = make([]int, n)
		for j := range u.offset[i] {
			u.offset[i][j] = -1
		}
	}

	// Parameter index pairs in lexicographic order: [0 1] [0 2] ... [n-2 n-1].
	blocks := combin.Combinations(n, 2)
	if len(blocks) != combin.Binomial(n, 2) {
		return nil, fmt.Errorf("universe: enumerated %d parameter pairs, want %d", len(blocks), combin.Binomial(n, 2))
	}

	total := 0
	for _, c := range blocks {
		i, j := c[0], c[1]
		u.offset[i][j] = total
		total += len(norm[i].Values) * len(norm[j].Values)
	}

	u.refs = make([]pairRef, 0, total)
	u.byKey = make(map[PairKey]int, total)
	for _, c := range blocks {
		i, j := c[0], c[1]
		for a := range norm[i].Values {
			for b := range norm[j].Values {
				id := len(u.refs)
				u.refs = append(u.refs, pairRef{i: i, a: a, j: j, b: b})
				u.byKey[u.pairOf(id).Key()] = id
			}
		}
	}

	return u, nil
}

// Size returns the number of pairs in the universe.
func (u *Universe) Size() int { return len(u.refs) }

// NumParameters returns the number of parameters.
func (u *Universe) NumParameters() int { return len(u.params) }

// Parameters returns a copy of the normalized parameters in declared order.
func (u *Universe) Parameters() []Parameter {
	out := make([]Parameter, len(u.params))
	for i, p := range u.params {
		out[i] = Parameter{Name: p.Name, Values: append([]string(nil), p.Values...)}
	}
	return out
}

// Parameter returns the normalized parameter at index i.
func (u *Universe) Parameter(i int) Parameter { return u.params[i] }

// NumValues returns the value count of parameter i.
func (u *Universe) NumValues(i int) int { return len(u.params[i].Values) }

// ParamIndex returns the index of the named parameter.
func (u *Universe) ParamIndex(name string) (int, bool) {
	i, ok := u.byName[name]
	return i, ok
}

// ValueIndex returns the index of value within parameter i.
func (u *Universe) ValueIndex(i int, value string) (int, bool) {
	if i < 0 || i >= len(u.values) {
		return 0, false
	}
	k, ok := u.values[i][value]
	return k, ok
}

// ID returns the pair ID for value a of parameter i and value b of
// parameter j. Argument order does not matter. Returns -1 when i == j or
// any index is out of range.
//
// Complexity: O(1).
func (u *Universe) ID(i, a, j, b int) int {
	if i > j {
		i, a, j, b = j, b, i, a
	}
	if i == j || i < 0 || j >= len(u.params) {
		return -1
	}
	if a < 0 || a >= len(u.params[i].Values) || b < 0 || b >= len(u.params[j].Values) {
		return -1
	}
	return u.offset[i][j] + a*len(u.params[j].Values) + b
}

// Endpoints returns the parameter and value indices of pair id, with i < j.
func (u *Universe) Endpoints(id int) (i, a, j, b int) {
	r := u.refs[id]
	return r.i, r.a, r.j, r.b
}

// Pair returns the canonical Pair for id.
func (u *Universe) Pair(id int) Pair { return u.pairOf(id) }

func (u *Universe) pairOf(id int) Pair {
	r := u.refs[id]
	return NewPair(
		Endpoint{Param: u.params[r.i].Name, Value: u.params[r.i].Values[r.a]},
		Endpoint{Param: u.params[r.j].Name, Value: u.params[r.j].Values[r.b]},
	)
}

// Lookup returns the ID of the pair with key k.
func (u *Universe) Lookup(k PairKey) (int, bool) {
	id, ok := u.byKey[k]
	return id, ok
}

// Keys returns every pair key, sorted.
func (u *Universe) Keys() []PairKey {
	keys := make([]PairKey, 0, len(u.byKey))
	for k := range u.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(x, y int) bool { return keys[x] < keys[y] })
	return keys
}

// MinimumRequired returns the product of the two largest value counts, the
// lower bound on the number of test cases of any full 2-wise covering array.
func (u *Universe) MinimumRequired() int {
	first, second := 0, 0
	for _, p := range u.params {
		n := len(p.Values)
		switch {
		case n > first:
			first, second = n, first
		case n > second:
			second = n
		}
	}
	return first * second
}

// NewAssignment returns an Assignment with every parameter Unassigned.
func (u *Universe) NewAssignment() Assignment {
	a := make(Assignment, len(u.params))
	for i := range a {
		a[i] = Unassigned
	}
	return a
}

// Satisfied calls fn with the ID of every pair that a satisfies. Unassigned
// parameters contribute no pairs.
//
// Complexity: O(n²) for n parameters.
func (u *Universe) Satisfied(a Assignment, fn func(id int)) {
	n := len(u.params)
	for i := 0; i < n-1; i++ {
		if a[i] == Unassigned {
			continue
		}
		for j := i + 1; j < n; j++ {
			if a[j] == Unassigned {
				continue
			}
			fn(u.offset[i][j] + a[i]*len(u.params[j].Values) + a[j])
		}
	}
}

// TestCaseOf converts a to a TestCase, skipping unassigned parameters.
func (u *Universe) TestCaseOf(a Assignment) TestCase {
	tc := make(TestCase, len(a))
	for i, k := range a {
		if k == Unassigned {
			continue
		}
		tc[u.params[i].Name] = u.params[i].Values[k]
	}
	return tc
}

// AssignmentOf converts tc to an Assignment. Parameters missing from tc
// stay Unassigned; unknown names or values wrap ErrInvalidInput.
func (u *Universe) AssignmentOf(tc TestCase) (Assignment, error) {
	a := u.NewAssignment()
	for name, value := range tc {
		i, ok := u.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrInvalidInput, name)
		}
		k, ok := u.values[i][value]
		if !ok {
			return nil, fmt.Errorf("%w: unknown value %q for parameter %q", ErrInvalidInput, value, name)
		}
		a[i] = k
	}
	return a, nil
}

// Row renders a in parameter order; unassigned parameters render as "".
func (u *Universe) Row(a Assignment) []string {
	row := make([]string, len(a))
	for i, k := range a {
		if k != Unassigned {
			row[i] = u.params[i].Values[k]
		}
	}
	return row
}
