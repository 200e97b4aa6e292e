package quiz

import (
	"sort"

	"github.com/acampos/giftwise/internal/catalog"
)

// Score computes one GiftScore per catalog gift: the sum of the rated
// values for that gift's question ids, with unanswered questions
// contributing 0. Pure and deterministic; output order matches the
// catalog declaration order.
func Score(answers map[int]int, gifts []catalog.GiftDefinition) []GiftScore {
	scores := make([]GiftScore, 0, len(gifts))
	for _, g := range gifts {
		sum := 0
		for _, qid := range g.Questions {
			sum += answers[qid]
		}
		scores = append(scores, GiftScore{Gift: g, Score: sum})
	}
	return scores
}

// Rank returns a new slice sorted descending by score. The sort is
// stable, so gifts with equal scores keep their catalog order.
func Rank(scores []GiftScore) []GiftScore {
	ranked := make([]GiftScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopGifts returns the primary gifts: the top N of the ranked scores.
func TopGifts(ranked []GiftScore) []GiftScore {
	n := catalog.TopGiftCount
	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]GiftScore, n)
	copy(top, ranked[:n])
	return top
}
