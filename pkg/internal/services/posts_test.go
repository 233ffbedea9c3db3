package services

import (
	"context"
	"testing"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fakeFacts) DeletePost(_ context.Context, post models.Post) error {
	delete(f.posts, post.ID)
	return nil
}

func TestDeletePostAuthorOnly(t *testing.T) {
	facts := newFakeFacts()
	facts.posts[1] = models.Post{BaseModel: models.BaseModel{ID: 1}, AuthorID: 5}

	srv := NewService(facts, bus.New(4))

	err := srv.DeletePost(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, facts.posts, uint(1))

	require.NoError(t, srv.DeletePost(context.Background(), 1, 5))
	assert.NotContains(t, facts.posts, uint(1))
}

func TestDeletePostMissing(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	err := srv.DeletePost(context.Background(), 99, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePostValidation(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))

	_, err := srv.CreatePost(context.Background(), 1, "general", "poll", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = srv.CreatePost(context.Background(), 1, "general", models.PostTypeText, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
