package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/conclave-dev/conclave/pkg/internal/views"
)

// GetFeed pulls the candidate snapshot and hands it to the ranker. The
// ranker treats an unknown strategy as new, so a bad selector degrades
// instead of failing.
func (s *Service) GetFeed(ctx context.Context, strategy string, filter store.PostFilter, viewer *uint) ([]views.RankedPost, error) {
	posts, err := s.facts.FetchPosts(ctx, filter, viewer)
	if err != nil {
		return nil, fmt.Errorf("unable to load feed candidates: %v", err)
	}
	return views.RankFeed(posts, strategy), nil
}

func (s *Service) GetPost(ctx context.Context, id uint, viewer *uint) (views.RankedPost, error) {
	post, err := s.facts.FetchPost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return views.RankedPost{}, fmt.Errorf("%w: post %d", ErrNotFound, id)
		}
		return views.RankedPost{}, err
	}

	counts, err := s.facts.FetchReactionCounts(ctx, post.ID, models.ReactionSubjectPost)
	if err != nil {
		return views.RankedPost{}, err
	}

	var own *models.ReactionKind
	if viewer != nil {
		if own, err = s.facts.FetchViewerReaction(ctx, post.ID, models.ReactionSubjectPost, *viewer); err != nil {
			return views.RankedPost{}, err
		}
	}

	return views.RankedPost{
		Post:      post,
		Reactions: views.Aggregate(counts, own),
	}, nil
}

func (s *Service) CreatePost(ctx context.Context, author uint, communityName, postType string, body map[string]any) (models.Post, error) {
	if postType != models.PostTypeText && postType != models.PostTypeMedia {
		return models.Post{}, fmt.Errorf("%w: unknown post type %q", ErrValidation, postType)
	}
	if len(body) == 0 {
		return models.Post{}, fmt.Errorf("%w: post body is required", ErrValidation)
	}

	community, err := s.facts.FetchCommunity(ctx, communityName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Post{}, fmt.Errorf("%w: community %q", ErrNotFound, communityName)
		}
		return models.Post{}, err
	}

	post := models.Post{
		Type:        postType,
		Body:        body,
		AuthorID:    author,
		CommunityID: community.ID,
	}
	if err := s.facts.InsertPost(ctx, &post); err != nil {
		return post, fmt.Errorf("unable to create post: %v", err)
	}

	return post, nil
}

// DeletePost removes a post, author only.
func (s *Service) DeletePost(ctx context.Context, id, viewer uint) error {
	post, err := s.facts.FetchPost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: post %d", ErrNotFound, id)
		}
		return err
	}

	if post.AuthorID != viewer {
		return fmt.Errorf("%w: only the author may delete a post", ErrForbidden)
	}

	return s.facts.DeletePost(ctx, post)
}
