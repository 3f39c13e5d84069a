package schema

// closest returns the candidate with the smallest edit distance to name,
// or "" when nothing is within a usable distance. The cutoff of half the
// name's length keeps suggestions from pairing unrelated words.
func closest(name string, candidates []string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for _, cand := range candidates {
		if d := editDistance(name, cand); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance with a single-row table.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, min(row[j-1]+1, prev+cost))
			prev = cur
		}
	}
	return row[len(b)]
}
