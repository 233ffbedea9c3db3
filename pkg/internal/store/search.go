package store

import (
	"context"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/samber/lo"
)

const (
	SearchResultPost      = "post"
	SearchResultAccount   = "account"
	SearchResultCommunity = "community"
)

// SearchResult tags each hit with its concrete kind at query time, so
// callers never have to sniff the shape of the data.
type SearchResult struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

func (s *Gorm) Search(ctx context.Context, term string) ([]SearchResult, error) {
	probe := "%" + term + "%"

	var posts []models.Post
	if err := s.db.WithContext(ctx).Preload("Author").Preload("Community").
		Where("body->>'title' ILIKE ?", probe).
		Or("body->>'description' ILIKE ?", probe).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := s.db.WithContext(ctx).
		Where("username ILIKE ?", probe).
		Find(&accounts).Error; err != nil {
		return nil, err
	}

	var communities []models.Community
	if err := s.db.WithContext(ctx).
		Where("name ILIKE ? OR title ILIKE ? OR description ILIKE ?", probe, probe, probe).
		Find(&communities).Error; err != nil {
		return nil, err
	}

	results := lo.Map(posts, func(item models.Post, _ int) SearchResult {
		return SearchResult{Kind: SearchResultPost, Data: item}
	})
	results = append(results, lo.Map(accounts, func(item models.Account, _ int) SearchResult {
		return SearchResult{Kind: SearchResultAccount, Data: item}
	})...)
	results = append(results, lo.Map(communities, func(item models.Community, _ int) SearchResult {
		return SearchResult{Kind: SearchResultCommunity, Data: item}
	})...)

	return results, nil
}
