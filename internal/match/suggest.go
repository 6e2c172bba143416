package match

// MinSuggestScore is the similarity a candidate needs to be suggested.
const MinSuggestScore = 0.6

// Suggest returns the candidate most similar to name after normalization,
// or "" if none reaches MinSuggestScore. Ties go to the earliest candidate.
func Suggest(name string, candidates []string) string {
	norm := NormalizeIdent(name)

	best, bestScore := "", MinSuggestScore
	for _, c := range candidates {
		score := Similarity(norm, NormalizeIdent(c))
		if score > bestScore || (score == bestScore && best == "") {
			best, bestScore = c, score
		}
	}

	return best
}
