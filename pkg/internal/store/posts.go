package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/views"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

const maxFeedTake = 100

// FetchPosts pulls the candidate set created_at-descending and annotates
// every post with its reaction tally and comment count in two batched
// queries, so the ranker gets a complete snapshot without a query per post.
func (s *Gorm) FetchPosts(ctx context.Context, filter PostFilter, viewer *uint) ([]views.RankedPost, error) {
	take := filter.Take
	if take <= 0 || take > maxFeedTake {
		take = maxFeedTake
	}

	tx := s.db.WithContext(ctx).Preload("Author").Preload("Community")
	if len(filter.Community) > 0 {
		tx = tx.Joins("JOIN communities ON communities.id = posts.community_id").
			Where("communities.name = ?", filter.Community)
	}
	if len(filter.Author) > 0 {
		tx = tx.Joins("JOIN accounts ON accounts.id = posts.author_id").
			Where("accounts.username = ?", filter.Author)
	}

	var posts []models.Post
	if err := tx.
		Limit(take).Offset(filter.Offset).
		Order("posts.created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	idx := lo.Map(posts, func(item models.Post, _ int) uint {
		return item.ID
	})

	counts, err := s.batchReactionCounts(ctx, idx, models.ReactionSubjectPost)
	if err != nil {
		return nil, err
	}

	var replies []struct {
		PostID uint
		Count  int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&replies).Error; err != nil {
		return nil, err
	}
	commentCount := lo.SliceToMap(replies, func(item struct {
		PostID uint
		Count  int64
	}) (uint, int64) {
		return item.PostID, item.Count
	})

	viewerKinds := map[uint]models.ReactionKind{}
	if viewer != nil {
		var rows []models.Reaction
		if err := s.db.WithContext(ctx).
			Where("subject_id IN ? AND subject_kind = ? AND account_id = ?", idx, models.ReactionSubjectPost, *viewer).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		viewerKinds = lo.SliceToMap(rows, func(item models.Reaction) (uint, models.ReactionKind) {
			return item.SubjectID, item.Kind
		})
	}

	return lo.Map(posts, func(post models.Post, _ int) views.RankedPost {
		var own *models.ReactionKind
		if kind, ok := viewerKinds[post.ID]; ok {
			own = &kind
		}
		return views.RankedPost{
			Post:         post,
			Reactions:    views.Aggregate(counts[post.ID], own),
			CommentCount: commentCount[post.ID],
		}
	}), nil
}

func (s *Gorm) FetchPost(ctx context.Context, id uint) (models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).
		Preload("Author").Preload("Community").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return post, ErrNotFound
		}
		return post, fmt.Errorf("unable to get post: %v", err)
	}
	return post, nil
}

func (s *Gorm) InsertPost(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *Gorm) DeletePost(ctx context.Context, post models.Post) error {
	return s.db.WithContext(ctx).Delete(&post).Error
}
