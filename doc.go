// Package pairwise generates small test suites with full pairwise (2-wise)
// coverage.
//
// 🚀 What is pairwise?
//
//	Given named parameters, each with a finite set of values, pairwise finds a
//	set of complete test cases in which every pair of values drawn from every
//	two distinct parameters appears at least once. Exhaustive testing of
//	ten parameters with four values needs 4^10 = 1,048,576 cases; pairwise
//	typically covers all 720 pairs in about 30.
//
// ✨ Building blocks
//
//	universe/  parameter validation, normalization and the dense pair universe
//	coverage/  covered-pair bookkeeping (count, mark, ratio, replay)
//	candidate/ candidate strategies: seeded greedy and weighted random
//	generate/  the round controller: budget, stagnation restarts, diagnostics
//	tabular/   delimited-text and xlsx import/export
//	config/    YAML + dotenv + PAIRWISE_* configuration
//	metrics/   Prometheus observer for generation runs
//	server/    HTTP API (chi) with /metrics
//	cmd/pairwise CLI: generate, verify, template, serve
//
// Quick example:
//
//	P1 = {a, b}, P2 = {x, y}, P3 = {m, n}  →  12 pairs, 4 cases
//
//	P1  P2  P3
//	a   x   m
//	a   y   n
//	b   x   n
//	b   y   m
//
// The smallest possible suite is at least |V_i|·|V_j| for the two largest
// parameters; that bound drives the round budget.
//
//	go install github.com/katalvlaran/pairwise/cmd/pairwise@latest
package pairwise
