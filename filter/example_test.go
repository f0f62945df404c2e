package filter_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/popsed/filter"
)

func ExampleReadBandpass() {
	b, err := filter.ReadBandpass("r", strings.NewReader("5000 0\n6024 1\n7048 0\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	lo, hi := b.Range()
	fmt.Println(b.Name, lo, hi, b.Transmission(5512))
	// Output: r 5000 7048 0.5
}
