package testcases

// All contains the intersection cases, grouped by category.
// The category name is used as a prefix in test names.
var All = map[string][]Case{
	"empty":    emptyCases,
	"point":    pointCases,
	"line":     lineCases,
	"vertical": verticalCases,
	"segment":  segmentCases,
	"colinear": colinearCases,
}
