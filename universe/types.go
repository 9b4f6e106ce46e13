package universe

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidInput indicates that the parameter list cannot form a pair
// universe: fewer than 2 parameters, an empty or duplicated name, a
// parameter without values, or an empty value.
var ErrInvalidInput = errors.New("universe: invalid input")

// Parameter is a named, ordered list of candidate values.
type Parameter struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

// Endpoint is one side of a Pair: a parameter name and one of its values.
type Endpoint struct {
	Param string
	Value string
}

// Pair is an unordered combination of two endpoints on distinct parameters.
// Endpoints are stored in canonical order (A.Param < B.Param), so two pairs
// built from the same endpoints in any argument order compare equal.
type Pair struct {
	A Endpoint
	B Endpoint
}

// PairKey is the stable string identity of a Pair.
type PairKey string

// NewPair returns the canonical Pair for the two endpoints.
func NewPair(x, y Endpoint) Pair {
	if y.Param < x.Param {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// Key renders the canonical key of p. Names and values are quoted so that
// separators inside them cannot collide.
func (p Pair) Key() PairKey {
	var b strings.Builder
	b.WriteString(strconv.Quote(p.A.Param))
	b.WriteByte('=')
	b.WriteString(strconv.Quote(p.A.Value))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(p.B.Param))
	b.WriteByte('=')
	b.WriteString(strconv.Quote(p.B.Value))
	return PairKey(b.String())
}

// SatisfiedBy reports whether tc assigns both endpoint values of p.
func (p Pair) SatisfiedBy(tc TestCase) bool {
	a, okA := tc[p.A.Param]
	b, okB := tc[p.B.Param]
	return okA && okB && a == p.A.Value && b == p.B.Value
}

// Unassigned marks a parameter without a selected value in an Assignment.
const Unassigned = -1

// Assignment is the compact form of a test case: Assignment[i] is the index
// of the selected value of parameter i, or Unassigned.
type Assignment []int

// Complete reports whether every parameter has a value.
func (a Assignment) Complete() bool {
	for _, v := range a {
		if v == Unassigned {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	return append(Assignment(nil), a...)
}

// TestCase maps a parameter name to its selected value.
type TestCase map[string]string
