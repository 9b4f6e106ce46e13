package universe_test

import (
	"fmt"

	"github.com/katalvlaran/pairwise/universe"
)

// ExampleBuild enumerates the pairs of a small browser matrix.
func ExampleBuild() {
	u, err := universe.Build([]universe.Parameter{
		{Name: "Browser", Values: []string{"chrome", "firefox"}},
		{Name: "OS", Values: []string{"linux", "mac", "linux"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("pairs:", u.Size())
	fmt.Println("minimum cases:", u.MinimumRequired())
	for id := 0; id < u.Size(); id++ {
		p := u.Pair(id)
		fmt.Printf("%s=%s %s=%s\n", p.A.Param, p.A.Value, p.B.Param, p.B.Value)
	}
	// Output:
	// pairs: 4
	// minimum cases: 4
	// Browser=chrome OS=linux
	// Browser=chrome OS=mac
	// Browser=firefox OS=linux
	// Browser=firefox OS=mac
}
