package ranker

import "sort"

// SortByRelevance orders scored prompts by descending score. Equal scores
// keep retrieval order.
func SortByRelevance(scored []ScoredPrompt) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
