package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/conclave-dev/conclave/pkg/internal/views"
)

// RecipientForComment picks who a new comment notifies: the author of the
// parent comment when the comment is a reply, otherwise the author of the
// post. Evaluated once at write time and stored on the notification row.
// Acting on your own content still notifies yourself.
func RecipientForComment(post models.Post, parent *models.Comment) uint {
	if parent != nil {
		return parent.AuthorID
	}
	return post.AuthorID
}

// GetCommentTree rebuilds the comment forest of one post, each node
// carrying its reaction tally and the viewer's own reaction.
func (s *Service) GetCommentTree(ctx context.Context, postID uint, viewer *uint) ([]*views.CommentNode, error) {
	if _, err := s.facts.FetchPost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
		}
		return nil, err
	}

	comments, err := s.facts.FetchComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("unable to load comments: %v", err)
	}

	tallies := make(map[uint]views.Tally, len(comments))
	for _, comment := range comments {
		counts, err := s.facts.FetchReactionCounts(ctx, comment.ID, models.ReactionSubjectComment)
		if err != nil {
			return nil, err
		}

		var own *models.ReactionKind
		if viewer != nil {
			if own, err = s.facts.FetchViewerReaction(ctx, comment.ID, models.ReactionSubjectComment, *viewer); err != nil {
				return nil, err
			}
		}

		tallies[comment.ID] = views.Aggregate(counts, own)
	}

	return views.BuildCommentTree(comments, tallies), nil
}

// AddComment writes the comment and its notification row, then publishes
// the live event. The durable writes strictly precede the publish so a
// client re-querying on receipt observes consistent data.
func (s *Service) AddComment(ctx context.Context, author, postID uint, parentID *uint, message string) (models.Comment, error) {
	if len(message) == 0 {
		return models.Comment{}, fmt.Errorf("%w: message is required", ErrValidation)
	}

	post, err := s.facts.FetchPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Comment{}, fmt.Errorf("%w: post %d", ErrNotFound, postID)
		}
		return models.Comment{}, err
	}

	var parent *models.Comment
	if parentID != nil {
		record, err := s.facts.FetchComment(ctx, *parentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return models.Comment{}, fmt.Errorf("%w: parent comment %d", ErrNotFound, *parentID)
			}
			return models.Comment{}, err
		}
		if record.PostID != postID {
			return models.Comment{}, fmt.Errorf("%w: parent comment belongs to a different post", ErrValidation)
		}
		parent = &record
	}

	comment := models.Comment{
		Message:  message,
		ParentID: parentID,
		PostID:   postID,
		AuthorID: author,
	}
	if err := s.facts.InsertComment(ctx, &comment); err != nil {
		return comment, fmt.Errorf("unable to create comment: %v", err)
	}

	notification := models.Notification{
		RecipientID: RecipientForComment(post, parent),
		ObjectKind:  models.NotificationObjectComment,
		ObjectID:    comment.ID,
	}
	if err := s.facts.InsertNotification(ctx, &notification); err != nil {
		return comment, fmt.Errorf("unable to create notification: %v", err)
	}

	s.events.Publish(bus.TopicNewNotification, notification)

	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, id, viewer uint) error {
	comment, err := s.facts.FetchComment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: comment %d", ErrNotFound, id)
		}
		return err
	}

	if comment.AuthorID != viewer {
		return fmt.Errorf("%w: only the author may delete a comment", ErrForbidden)
	}

	return s.facts.DeleteComment(ctx, comment)
}
