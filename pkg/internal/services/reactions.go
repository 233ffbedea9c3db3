package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/samber/lo"
)

func (s *Service) ensureSubject(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind) error {
	var err error
	switch subjectKind {
	case models.ReactionSubjectPost:
		_, err = s.facts.FetchPost(ctx, subjectID)
	case models.ReactionSubjectComment:
		_, err = s.facts.FetchComment(ctx, subjectID)
	default:
		return fmt.Errorf("%w: unknown subject kind %q", ErrValidation, subjectKind)
	}

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s %d", ErrNotFound, subjectKind, subjectID)
		}
		return err
	}
	return nil
}

// React upserts the viewer's reaction on a subject. Unknown kinds are
// rejected here, before anything touches storage; a second reaction of a
// different kind replaces the first.
func (s *Service) React(ctx context.Context, viewer, subjectID uint, subjectKind models.ReactionSubjectKind, kind models.ReactionKind) (models.Reaction, error) {
	if !lo.Contains(models.ReactionKinds, kind) {
		return models.Reaction{}, fmt.Errorf("%w: unknown reaction kind %q", ErrValidation, kind)
	}
	if err := s.ensureSubject(ctx, subjectID, subjectKind); err != nil {
		return models.Reaction{}, err
	}

	reaction := models.Reaction{
		SubjectID:   subjectID,
		SubjectKind: subjectKind,
		AccountID:   viewer,
		Kind:        kind,
	}
	if err := s.facts.UpsertReaction(ctx, &reaction); err != nil {
		return reaction, fmt.Errorf("unable to save reaction: %v", err)
	}

	return reaction, nil
}

func (s *Service) Unreact(ctx context.Context, viewer, subjectID uint, subjectKind models.ReactionSubjectKind) error {
	if err := s.ensureSubject(ctx, subjectID, subjectKind); err != nil {
		return err
	}
	return s.facts.DeleteReaction(ctx, subjectID, subjectKind, viewer)
}
