package tonnetz_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonnetz/tonnetz"
)

func ExampleNew() {
	n, err := tonnetz.New(5, []int{2}, tonnetz.WithZero(true))
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Nodes())
	fmt.Println(n.Edges())
	fmt.Println(n.Components())

	// Output:
	// [0 1 2 3 4]
	// [(1,2,2) (2,4,2) (3,1,2) (4,3,2)]
	// [[0] [1 2 3 4]]
}
