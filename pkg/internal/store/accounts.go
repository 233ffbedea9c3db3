package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Gorm) FetchAccount(ctx context.Context, id uint) (models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrNotFound
		}
		return account, fmt.Errorf("unable to get account: %v", err)
	}
	return account, nil
}

func (s *Gorm) FetchAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrNotFound
		}
		return account, fmt.Errorf("unable to get account: %v", err)
	}
	return account, nil
}

func (s *Gorm) FetchFollowing(ctx context.Context, account uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followed_id = accounts.id").
		Where("follows.follower_id = ?", account).
		Order("follows.followed_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Gorm) FetchFollowers(ctx context.Context, account uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = accounts.id").
		Where("follows.followed_id = ?", account).
		Order("follows.followed_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpsertFollow inserts the pair and ignores the conflict when it already
// exists, so following twice is a no-op.
func (s *Gorm) UpsertFollow(ctx context.Context, follower, followed uint) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{FollowerID: follower, FollowedID: followed}).Error
}

func (s *Gorm) DeleteFollow(ctx context.Context, follower, followed uint) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", follower, followed).
		Delete(&models.Follow{}).Error
}
