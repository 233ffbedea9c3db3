package services

import (
	"context"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/store"
)

func (s *Service) Search(ctx context.Context, term string) ([]store.SearchResult, error) {
	if len(term) == 0 {
		return nil, fmt.Errorf("%w: search term is required", ErrValidation)
	}
	return s.facts.Search(ctx, term)
}
