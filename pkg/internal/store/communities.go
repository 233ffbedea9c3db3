package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Gorm) FetchCommunities(ctx context.Context) ([]models.Community, error) {
	var communities []models.Community
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

func (s *Gorm) FetchCommunity(ctx context.Context, name string) (models.Community, error) {
	var community models.Community
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&community).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return community, ErrNotFound
		}
		return community, fmt.Errorf("unable to get community: %v", err)
	}
	return community, nil
}

func (s *Gorm) UpsertMembership(ctx context.Context, community, account uint) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Membership{CommunityID: community, AccountID: account}).Error
}

func (s *Gorm) DeleteMembership(ctx context.Context, community, account uint) error {
	return s.db.WithContext(ctx).
		Where("community_id = ? AND account_id = ?", community, account).
		Delete(&models.Membership{}).Error
}
