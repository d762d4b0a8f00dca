package modopt

// CombinationCount returns C(n, r), the number of r-subsets of an
// n-element set, using the overflow-averse multiplicative form with the
// C(n,r) = C(n, n-r) symmetry. For n <= 10000 and r == 4 (the only r
// this package ever unranks with), 64-bit arithmetic is exact
// throughout, per spec.md §9.
func CombinationCount(n, r int) int64 {
	if r < 0 || r > n {
		return 0
	}
	if r == 0 || r == n {
		return 1
	}
	if r > n-r {
		r = n - r
	}
	var result int64 = 1
	for i := 0; i < r; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}

// CombinationAt returns the k-th r-subset of {0..n-1} in lexicographic
// order, k in [0, CombinationCount(n,r)), via combinatorial unranking:
// at each position, scan candidate values and subtract the size of the
// block of combinations that starts with a smaller candidate until the
// remaining index falls inside the current candidate's block.
func CombinationAt(n, r int, k int64) []int {
	result := make([]int, r)
	remaining := k
	for i := 0; i < r; i++ {
		start := 0
		if i > 0 {
			start = result[i-1] + 1
		}
		for j := start; j < n; j++ {
			tail := CombinationCount(n-j-1, r-i-1)
			if remaining < tail {
				result[i] = j
				break
			}
			remaining -= tail
		}
	}
	return result
}
