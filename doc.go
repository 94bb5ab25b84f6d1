// Package gradstats fabricates reproducible graduate-employment statistics
// and reduces them to the figures a placement dashboard shows.
//
// Layout:
//
//	cohort/    — seeded Dataset generator (YearRecord, Dataset, Generate)
//	insight/   — reducers: best/worst years, mean rates, describe, correlation
//	dashboard/ — rendering boundary: four-panel document, text reports, export
//	config/    — viper-backed run configuration
//	runner/    — one end-to-end run, used by cmd/gradstats
//
// Quick start:
//
//	ds, _ := cohort.Generate(2016, 2025, cohort.WithSeed(42))
//	sum, _ := insight.Reduce(ds)
//	fmt.Println(sum.BestPlacementYear, sum.MeanPlacementRate)
//
//	go install github.com/katalvlaran/gradstats/cmd/gradstats@latest
//	gradstats run -o dashboard.json
package gradstats
