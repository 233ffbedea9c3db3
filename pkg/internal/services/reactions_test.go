package services

import (
	"context"
	"testing"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReactRejectsUnknownKind(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.React(context.Background(), 1, 1, models.ReactionSubjectPost, "applause")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReactRejectsUnknownSubjectKind(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.React(context.Background(), 1, 1, "poll", models.ReactionLike)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReactMissingSubject(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.React(context.Background(), 1, 99, models.ReactionSubjectPost, models.ReactionLike)
	assert.ErrorIs(t, err, ErrNotFound)

	err = srv.Unreact(context.Background(), 1, 99, models.ReactionSubjectComment)
	assert.ErrorIs(t, err, ErrNotFound)
}
