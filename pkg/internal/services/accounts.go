package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
)

type AccountProfile struct {
	Account   models.Account   `json:"account"`
	Following []models.Account `json:"following"`
	Followers []models.Account `json:"followers"`
}

func (s *Service) GetAccount(ctx context.Context, username string) (AccountProfile, error) {
	account, err := s.facts.FetchAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AccountProfile{}, fmt.Errorf("%w: account %q", ErrNotFound, username)
		}
		return AccountProfile{}, err
	}

	following, err := s.facts.FetchFollowing(ctx, account.ID)
	if err != nil {
		return AccountProfile{}, err
	}
	followers, err := s.facts.FetchFollowers(ctx, account.ID)
	if err != nil {
		return AccountProfile{}, err
	}

	return AccountProfile{Account: account, Following: following, Followers: followers}, nil
}

func (s *Service) Follow(ctx context.Context, viewer uint, username string) (models.Account, error) {
	followed, err := s.facts.FetchAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return followed, fmt.Errorf("%w: account %q", ErrNotFound, username)
		}
		return followed, err
	}

	if err := s.facts.UpsertFollow(ctx, viewer, followed.ID); err != nil {
		return followed, fmt.Errorf("unable to follow: %v", err)
	}
	return followed, nil
}

func (s *Service) Unfollow(ctx context.Context, viewer uint, username string) (models.Account, error) {
	followed, err := s.facts.FetchAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return followed, fmt.Errorf("%w: account %q", ErrNotFound, username)
		}
		return followed, err
	}

	if err := s.facts.DeleteFollow(ctx, viewer, followed.ID); err != nil {
		return followed, fmt.Errorf("unable to unfollow: %v", err)
	}
	return followed, nil
}

// RemoveFollower drops the follow edge pointing at the viewer.
func (s *Service) RemoveFollower(ctx context.Context, viewer uint, username string) (models.Account, error) {
	follower, err := s.facts.FetchAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return follower, fmt.Errorf("%w: account %q", ErrNotFound, username)
		}
		return follower, err
	}

	if err := s.facts.DeleteFollow(ctx, follower.ID, viewer); err != nil {
		return follower, fmt.Errorf("unable to remove follower: %v", err)
	}
	return follower, nil
}
