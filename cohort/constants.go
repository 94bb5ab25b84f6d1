// SPDX-License-Identifier: MIT

package cohort

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate constructor.
	MethodGenerate = "Generate"
	// MethodNewDataset is the canonical name for the NewDataset constructor.
	MethodNewDataset = "NewDataset"
	// MethodValidate is the canonical name for Params.Validate.
	MethodValidate = "Validate"
)

//-----------------------------------------------------------------------------
// Generation Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultSeed reproduces the reference dataset.
	DefaultSeed int64 = 42
	// DefaultStartYear is the first year of the reference range.
	DefaultStartYear = 2016
	// DefaultEndYear is the last year (inclusive) of the reference range.
	DefaultEndYear = 2025
	// DefaultPassedOutLow is the inclusive lower bound of passed-out draws.
	DefaultPassedOutLow = 300
	// DefaultPassedOutHigh is the exclusive upper bound of passed-out draws.
	DefaultPassedOutHigh = 600
	// DefaultPlacedFloor is the inclusive lower bound of placed draws.
	DefaultPlacedFloor = 200
	// DefaultMargin is the minimum number of unemployed graduates per year.
	DefaultMargin = 50
)
