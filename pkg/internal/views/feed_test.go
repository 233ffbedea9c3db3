package views

import (
	"testing"
	"time"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func rankedPost(id uint, createdAt time.Time, counts map[models.ReactionKind]int64, comments int64) RankedPost {
	var total int64
	for _, count := range counts {
		total += count
	}
	return RankedPost{
		Post: models.Post{
			BaseModel: models.BaseModel{ID: id, CreatedAt: createdAt},
		},
		Reactions:    Tally{Counts: counts, Total: total},
		CommentCount: comments,
	}
}

func postIDs(posts []RankedPost) []uint {
	return lo.Map(posts, func(p RankedPost, _ int) uint {
		return p.Post.ID
	})
}

func TestRankFeedTop(t *testing.T) {
	now := time.Now()
	posts := []RankedPost{
		rankedPost(1, now, map[models.ReactionKind]int64{models.ReactionLike: 1}, 0),
		rankedPost(2, now.Add(-time.Hour), map[models.ReactionKind]int64{models.ReactionLike: 5}, 0),
		rankedPost(3, now.Add(-2*time.Hour), map[models.ReactionKind]int64{models.ReactionLike: 3}, 0),
	}

	ranked := RankFeed(posts, FeedStrategyTop)
	assert.Equal(t, []uint{2, 3, 1}, postIDs(ranked))
}

func TestRankFeedTopTieKeepsInputOrder(t *testing.T) {
	now := time.Now()
	posts := []RankedPost{
		rankedPost(1, now, map[models.ReactionKind]int64{models.ReactionLike: 2}, 0),
		rankedPost(2, now.Add(-time.Hour), map[models.ReactionKind]int64{models.ReactionLove: 2}, 0),
	}

	ranked := RankFeed(posts, FeedStrategyTop)
	assert.Equal(t, []uint{1, 2}, postIDs(ranked))
}

func TestRankFeedHot(t *testing.T) {
	today := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	yesterday := today.Add(-24 * time.Hour)

	posts := []RankedPost{
		rankedPost(1, yesterday, map[models.ReactionKind]int64{models.ReactionLike: 50}, 10),
		rankedPost(2, today.Add(-time.Hour), map[models.ReactionKind]int64{models.ReactionLike: 2}, 0),
		rankedPost(3, today, map[models.ReactionKind]int64{models.ReactionLike: 2}, 4),
	}

	// Same-day posts beat a heavily reacted older one; ties on reactions
	// within the day break on comment count.
	ranked := RankFeed(posts, FeedStrategyHot)
	assert.Equal(t, []uint{3, 2, 1}, postIDs(ranked))
}

func TestRankFeedControversial(t *testing.T) {
	now := time.Now()
	posts := []RankedPost{
		rankedPost(1, now, map[models.ReactionKind]int64{models.ReactionLike: 9}, 0),
		rankedPost(2, now, map[models.ReactionKind]int64{models.ReactionDislike: 3}, 0),
		rankedPost(3, now, map[models.ReactionKind]int64{models.ReactionDislike: 3, models.ReactionLike: 5}, 0),
	}

	ranked := RankFeed(posts, FeedStrategyControversial)
	assert.Equal(t, []uint{3, 2, 1}, postIDs(ranked))
}

func TestRankFeedDefaultsToNew(t *testing.T) {
	now := time.Now()
	posts := []RankedPost{
		rankedPost(1, now.Add(-time.Hour), nil, 0),
		rankedPost(2, now, nil, 0),
	}

	for _, strategy := range []string{FeedStrategyNew, "", "bogus"} {
		ranked := RankFeed(posts, strategy)
		assert.Equal(t, []uint{2, 1}, postIDs(ranked), "strategy %q", strategy)
	}
}

func TestRankFeedLeavesInputUntouched(t *testing.T) {
	now := time.Now()
	posts := []RankedPost{
		rankedPost(1, now.Add(-time.Hour), map[models.ReactionKind]int64{models.ReactionLike: 1}, 0),
		rankedPost(2, now, map[models.ReactionKind]int64{models.ReactionLike: 7}, 0),
	}

	RankFeed(posts, FeedStrategyTop)
	assert.Equal(t, []uint{1, 2}, postIDs(posts))
}
