package views

import (
	"sort"
	"time"

	"github.com/conclave-dev/conclave/pkg/internal/models"
)

const (
	FeedStrategyNew           = "new"
	FeedStrategyHot           = "hot"
	FeedStrategyTop           = "top"
	FeedStrategyControversial = "controversial"
)

type RankedPost struct {
	Post         models.Post `json:"post"`
	Reactions    Tally       `json:"reactions"`
	CommentCount int64       `json:"comment_count"`
}

// RankFeed orders a candidate set by the requested strategy. Every sort is
// stable so posts tied on the active key keep their input order, which the
// fact store hands over created_at-descending. An unknown strategy falls
// back to new. The input slice is left untouched.
func RankFeed(posts []RankedPost, strategy string) []RankedPost {
	ranked := make([]RankedPost, len(posts))
	copy(ranked, posts)

	switch strategy {
	case FeedStrategyHot:
		sort.SliceStable(ranked, func(i, j int) bool {
			di, dj := postDay(ranked[i].Post), postDay(ranked[j].Post)
			if !di.Equal(dj) {
				return di.After(dj)
			}
			if ranked[i].Reactions.Total != ranked[j].Reactions.Total {
				return ranked[i].Reactions.Total > ranked[j].Reactions.Total
			}
			return ranked[i].CommentCount > ranked[j].CommentCount
		})
	case FeedStrategyTop:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Reactions.Total > ranked[j].Reactions.Total
		})
	case FeedStrategyControversial:
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Reactions.Dislikes() != ranked[j].Reactions.Dislikes() {
				return ranked[i].Reactions.Dislikes() > ranked[j].Reactions.Dislikes()
			}
			return ranked[i].Reactions.Likes() > ranked[j].Reactions.Likes()
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Post.CreatedAt.After(ranked[j].Post.CreatedAt)
		})
	}

	return ranked
}

// postDay strips the time of day so hot ranking weighs recency by calendar
// day only.
func postDay(post models.Post) time.Time {
	t := post.CreatedAt
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
