// Package generate_test provides runnable, deterministic examples of the
// round controller. The default greedy strategy needs no seed; the weighted
// strategy is pinned with WithSeed so the output is stable.
package generate_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/universe"
)

// ExampleGenerate covers three binary parameters with four test cases.
func ExampleGenerate() {
	res, err := generate.Generate(context.Background(), []universe.Parameter{
		{Name: "P1", Values: []string{"a", "b"}},
		{Name: "P2", Values: []string{"x", "y"}},
		{Name: "P3", Values: []string{"m", "n"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(res.Header(), ","))
	for _, row := range res.Rows() {
		fmt.Println(strings.Join(row, ","))
	}
	fmt.Printf("covered %d/%d (%s)\n", res.Coverage.CoveredPairs, res.Coverage.TotalPairs, res.Diagnostics.StopReason)
	// Output:
	// P1,P2,P3
	// a,x,m
	// a,y,n
	// b,x,n
	// b,y,m
	// covered 12/12 (converged)
}
