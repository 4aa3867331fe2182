package kb

// Factors returns the factor of every question, in question order.
// Duplicates are kept.
func Factors(questions []Question) []string {
	factors := make([]string, 0, len(questions))
	for _, q := range questions {
		factors = append(factors, q.Factor)
	}
	return factors
}

// HasFactor reports whether any question carries factor.
func HasFactor(questions []Question, factor string) bool {
	for _, q := range questions {
		if q.Factor == factor {
			return true
		}
	}
	return false
}

// DuplicateFactors returns every factor that appears on more than one
// question, in order of first repetition.
func DuplicateFactors(questions []Question) []string {
	seen := make(map[string]int, len(questions))
	var dups []string
	for _, q := range questions {
		seen[q.Factor]++
		if seen[q.Factor] == 2 {
			dups = append(dups, q.Factor)
		}
	}
	return dups
}

// DanglingFactors returns rule factors that no question asks about, in the
// order they are first referenced. Such rules can only ever see false.
func DanglingFactors(questions []Question, solutions []Solution) []string {
	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.Factor] = true
	}
	reported := make(map[string]bool)
	var dangling []string
	for _, s := range solutions {
		for _, r := range s.Rules {
			if known[r.Factor] || reported[r.Factor] {
				continue
			}
			reported[r.Factor] = true
			dangling = append(dangling, r.Factor)
		}
	}
	return dangling
}
