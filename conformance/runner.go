package conformance

import (
	"math"

	"github.com/kemasdimas/ffs"
)

// Result is the outcome of running one TestCase.
type Result struct {
	Suite  string
	Test   string
	Passed bool
	Got    float32
	Err    error
}

// Run executes every TestCase in every suite and returns one Result
// per case, in order.
func Run(suites []Suite) []Result {
	var results []Result
	for _, s := range suites {
		for _, tc := range s.Tests {
			results = append(results, runOne(s.Name, tc))
		}
	}
	return results
}

const floatTolerance = 1e-6

func runOne(suiteName string, tc TestCase) Result {
	res := Result{Suite: suiteName, Test: tc.Name}

	if tc.Expect.ParseError {
		res.Passed = !ffs.Validate(tc.Formula)
		return res
	}

	got, err := ffs.Evaluate(tc.Formula, tc.Env)
	res.Got, res.Err = got, err

	if tc.Expect.Error {
		res.Passed = err != nil
		return res
	}
	if err != nil {
		res.Passed = false
		return res
	}
	if tc.Expect.Value == nil {
		res.Passed = true
		return res
	}
	res.Passed = math.Abs(float64(got)-*tc.Expect.Value) < floatTolerance
	return res
}
