package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
)

func (s *Service) ListCommunities(ctx context.Context) ([]models.Community, error) {
	return s.facts.FetchCommunities(ctx)
}

func (s *Service) GetCommunity(ctx context.Context, name string) (models.Community, error) {
	community, err := s.facts.FetchCommunity(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return community, fmt.Errorf("%w: community %q", ErrNotFound, name)
		}
		return community, err
	}
	return community, nil
}

func (s *Service) JoinCommunity(ctx context.Context, viewer uint, name string) (models.Community, error) {
	community, err := s.GetCommunity(ctx, name)
	if err != nil {
		return community, err
	}

	if err := s.facts.UpsertMembership(ctx, community.ID, viewer); err != nil {
		return community, fmt.Errorf("unable to join community: %v", err)
	}
	return community, nil
}

func (s *Service) LeaveCommunity(ctx context.Context, viewer uint, name string) (models.Community, error) {
	community, err := s.GetCommunity(ctx, name)
	if err != nil {
		return community, err
	}

	if err := s.facts.DeleteMembership(ctx, community.ID, viewer); err != nil {
		return community, fmt.Errorf("unable to leave community: %v", err)
	}
	return community, nil
}
