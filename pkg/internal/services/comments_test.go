package services

import (
	"context"
	"testing"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFacts implements the slice of the fact store these tests touch; any
// unexpected call panics through the embedded nil interface.
type fakeFacts struct {
	store.FactStore

	posts    map[uint]models.Post
	comments map[uint]models.Comment
	accounts map[string]models.Account

	insertedComments      []models.Comment
	insertedMessages      []models.Message
	insertedNotifications []models.Notification
}

func newFakeFacts() *fakeFacts {
	return &fakeFacts{
		posts:    make(map[uint]models.Post),
		comments: make(map[uint]models.Comment),
		accounts: make(map[string]models.Account),
	}
}

func (f *fakeFacts) FetchPost(_ context.Context, id uint) (models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return models.Post{}, store.ErrNotFound
	}
	return post, nil
}

func (f *fakeFacts) FetchComment(_ context.Context, id uint) (models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return models.Comment{}, store.ErrNotFound
	}
	return comment, nil
}

func (f *fakeFacts) FetchAccountByUsername(_ context.Context, username string) (models.Account, error) {
	account, ok := f.accounts[username]
	if !ok {
		return models.Account{}, store.ErrNotFound
	}
	return account, nil
}

func (f *fakeFacts) InsertComment(_ context.Context, comment *models.Comment) error {
	comment.ID = uint(len(f.insertedComments) + 1)
	f.insertedComments = append(f.insertedComments, *comment)
	return nil
}

func (f *fakeFacts) InsertMessage(_ context.Context, message *models.Message) error {
	message.ID = uint(len(f.insertedMessages) + 1)
	f.insertedMessages = append(f.insertedMessages, *message)
	return nil
}

func (f *fakeFacts) InsertNotification(_ context.Context, notification *models.Notification) error {
	notification.ID = uint(len(f.insertedNotifications) + 1)
	f.insertedNotifications = append(f.insertedNotifications, *notification)
	return nil
}

func TestRecipientForComment(t *testing.T) {
	post := models.Post{BaseModel: models.BaseModel{ID: 1}, AuthorID: 5}

	assert.EqualValues(t, 5, RecipientForComment(post, nil))

	parent := models.Comment{BaseModel: models.BaseModel{ID: 42}, AuthorID: 7, PostID: 1}
	assert.EqualValues(t, 7, RecipientForComment(post, &parent))

	// Replying to yourself still notifies yourself.
	own := models.Comment{BaseModel: models.BaseModel{ID: 43}, AuthorID: 5, PostID: 1}
	assert.EqualValues(t, 5, RecipientForComment(post, &own))
}

func TestAddCommentNotifiesParentAuthor(t *testing.T) {
	facts := newFakeFacts()
	facts.posts[1] = models.Post{BaseModel: models.BaseModel{ID: 1}, AuthorID: 5}
	facts.comments[42] = models.Comment{BaseModel: models.BaseModel{ID: 42}, AuthorID: 7, PostID: 1}

	events := bus.New(4)
	listener, cancel := events.Subscribe(bus.TopicNewNotification)
	defer cancel()

	srv := NewService(facts, events)
	parentID := uint(42)
	comment, err := srv.AddComment(context.Background(), 3, 1, &parentID, "agreed")
	require.NoError(t, err)

	require.Len(t, facts.insertedNotifications, 1)
	notification := facts.insertedNotifications[0]
	assert.EqualValues(t, 7, notification.RecipientID)
	assert.Equal(t, models.NotificationObjectComment, notification.ObjectKind)
	assert.Equal(t, comment.ID, notification.ObjectID)

	// The durable row precedes the live event carrying it.
	evt := <-listener.Events()
	assert.Equal(t, notification, evt.Payload)
}

func TestAddCommentOnPostNotifiesPostAuthor(t *testing.T) {
	facts := newFakeFacts()
	facts.posts[1] = models.Post{BaseModel: models.BaseModel{ID: 1}, AuthorID: 5}

	srv := NewService(facts, bus.New(4))
	_, err := srv.AddComment(context.Background(), 3, 1, nil, "first")
	require.NoError(t, err)

	require.Len(t, facts.insertedNotifications, 1)
	assert.EqualValues(t, 5, facts.insertedNotifications[0].RecipientID)
}

func TestAddCommentRejectsCrossPostParent(t *testing.T) {
	facts := newFakeFacts()
	facts.posts[1] = models.Post{BaseModel: models.BaseModel{ID: 1}, AuthorID: 5}
	facts.comments[42] = models.Comment{BaseModel: models.BaseModel{ID: 42}, AuthorID: 7, PostID: 2}

	srv := NewService(facts, bus.New(4))
	parentID := uint(42)
	_, err := srv.AddComment(context.Background(), 3, 1, &parentID, "lost")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, facts.insertedComments)
}

func TestAddCommentMissingPost(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.AddComment(context.Background(), 3, 99, nil, "void")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentEmptyMessage(t *testing.T) {
	srv := NewService(newFakeFacts(), bus.New(4))
	_, err := srv.AddComment(context.Background(), 3, 1, nil, "")
	assert.ErrorIs(t, err, ErrValidation)
}
