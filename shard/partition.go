package shard

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r holds no indices.
func (r Range) Empty() bool { return r.Len() == 0 }

// Offset returns r shifted by delta.
func (r Range) Offset(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// ShardSize returns ceil(n/k), the size of every shard but the last.
func ShardSize(n, k int) int {
	if k < 1 || n <= 0 {
		return 0
	}
	return (n + k - 1) / k
}

// Partition splits [0, n) into k ordered, disjoint ranges whose
// concatenation is [0, n). Every range holds ShardSize(n, k) indices except
// the last, which takes the remainder. Bounds are clamped to n, so when
// n < k the trailing ranges are empty rather than running past the end.
//
// Partition returns nil for k < 1. A negative n is treated as 0.
func Partition(n, k int) []Range {
	if k < 1 {
		return nil
	}
	n = max(n, 0)

	size := ShardSize(n, k)
	ranges := make([]Range, k)

	start := 0
	for i := range k - 1 {
		end := min(start+size, n)
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	ranges[k-1] = Range{Start: start, End: n}

	return ranges
}
