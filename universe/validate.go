// SPDX-License-Identifier: MIT
// Package: pairwise/universe
//
// validate.go: normalization and input contracts for parameter lists.
//
// Error policy:
//   • Every rejection wraps ErrInvalidInput; callers branch with errors.Is.
//   • The first violation found (in declared order) is reported.
//   • Duplicate values are a normalization concern, not an error.

package universe

import "fmt"

// MinParameters is the smallest parameter count that forms at least one pair.
const MinParameters = 2

// Normalize returns a deep copy of params with duplicated values removed.
// The first occurrence of a value keeps its position; parameter order and
// names are untouched.
//
// Complexity: O(Σ|values|) time and space.
func Normalize(params []Parameter) []Parameter {
	out := make([]Parameter, len(params))
	for i, p := range params {
		seen := make(map[string]struct{}, len(p.Values))
		values := make([]string, 0, len(p.Values))
		for _, v := range p.Values {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		out[i] = Parameter{Name: p.Name, Values: values}
	}

	return out
}

// Validate checks the parameter contract and returns a wrapped
// ErrInvalidInput on the first violation.
//
// Contracts:
//   - len(params) ≥ MinParameters.
//   - every Name is non-empty and unique.
//   - every parameter has at least one value, and no value is empty.
func Validate(params []Parameter) error {
	if len(params) < MinParameters {
		return fmt.Errorf("%w: need at least %d parameters, got %d", ErrInvalidInput, MinParameters, len(params))
	}

	names := make(map[string]int, len(params))
	for i, p := range params {
		if p.Name == "" {
			return fmt.Errorf("%w: parameter %d has an empty name", ErrInvalidInput, i)
		}
		if prev, dup := names[p.Name]; dup {
			return fmt.Errorf("%w: parameter name %q used at %d and %d", ErrInvalidInput, p.Name, prev, i)
		}
		names[p.Name] = i

		if len(p.Values) == 0 {
			return fmt.Errorf("%w: parameter %q has no values", ErrInvalidInput, p.Name)
		}
		for _, v := range p.Values {
			if v == "" {
				return fmt.Errorf("%w: parameter %q has an empty value", ErrInvalidInput, p.Name)
			}
		}
	}

	return nil
}
