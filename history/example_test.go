package history_test

import (
	"fmt"

	"github.com/r-aax/caesar-sub000/builder"
	"github.com/r-aax/caesar-sub000/history"
)

// ExampleHistory_IsEmpty reduces a prism down to the minimal cubic
// graph and reports whether the LIFO history recorded any steps.
func ExampleHistory_IsEmpty() {
	g, err := builder.Build(builder.Prism(5))
	if err != nil {
		panic(err)
	}

	h := history.New()
	if _, err := g.FullReduce(h); err != nil {
		panic(err)
	}

	fmt.Println(g.IsMinimalCubic())
	fmt.Println(h.IsEmpty())
	// Output:
	// true
	// false
}
