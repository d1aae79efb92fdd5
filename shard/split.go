package shard

// DefaultTestFraction is the share of entries held out for the test split.
const DefaultTestFraction = 0.15

// Split divides [0, n) into a leading train range and a trailing test range.
// The test range holds floor(n*testFraction) entries and train takes the
// rest, so train is not always round(n*(1-testFraction)): n=4 gives 4/0 and
// n=24 gives 21/3. The fraction is clamped to [0, 1].
func Split(n int, testFraction float64) (train, test Range) {
	if n < 0 {
		n = 0
	}
	switch {
	case testFraction < 0:
		testFraction = 0
	case testFraction > 1:
		testFraction = 1
	}

	numTest := int(float64(n) * testFraction)
	numTrain := n - numTest

	return Range{Start: 0, End: numTrain}, Range{Start: numTrain, End: n}
}
