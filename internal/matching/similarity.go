package matching

// similarityRatio returns a symmetric similarity ratio in [0, 1] between two
// strings, based on their longest common subsequence:
// 2*LCS(a, b) / (len(a) + len(b)). Identical strings score 1.0.
func similarityRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra)+len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	// Single-row LCS table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}
