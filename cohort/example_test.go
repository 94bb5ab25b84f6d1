package cohort_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gradstats/cohort"
)

// ExampleGenerate shows the shape of a generated dataset.
func ExampleGenerate() {
	ds, err := cohort.Generate(2016, 2025, cohort.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	first, _ := ds.First()
	last, _ := ds.Last()
	fmt.Println("records:", ds.Len())
	fmt.Println("span:", first.Year, "-", last.Year)

	// Output:
	// records: 10
	// span: 2016 - 2025
}

// ExampleParams_Validate shows a bound set that cannot honor the margin.
func ExampleParams_Validate() {
	p := cohort.Params{PassedOutLow: 240, PassedOutHigh: 600, PlacedFloor: 200, Margin: 50}
	fmt.Println(errors.Is(p.Validate(), cohort.ErrConfiguration))

	// Output:
	// true
}
