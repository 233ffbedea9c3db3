package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"gorm.io/gorm"
)

// FetchComments returns the whole flat comment set of one post in
// chronological order, the order the tree builder preserves within each
// level.
func (s *Gorm) FetchComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Gorm) FetchComment(ctx context.Context, id uint) (models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment, ErrNotFound
		}
		return comment, fmt.Errorf("unable to get comment: %v", err)
	}
	return comment, nil
}

func (s *Gorm) InsertComment(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *Gorm) DeleteComment(ctx context.Context, comment models.Comment) error {
	return s.db.WithContext(ctx).Delete(&comment).Error
}
