// Package store adapts the relational facts for the view layer. Reads
// return immutable snapshots; the derived views never retain a live
// reference back into storage.
package store

import (
	"context"

	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/views"
	"gorm.io/gorm"
)

type PostFilter struct {
	Community string
	Author    string
	Take      int
	Offset    int
}

type PostReader interface {
	FetchPosts(ctx context.Context, filter PostFilter, viewer *uint) ([]views.RankedPost, error)
	FetchPost(ctx context.Context, id uint) (models.Post, error)
}

type CommentReader interface {
	FetchComments(ctx context.Context, postID uint) ([]models.Comment, error)
	FetchComment(ctx context.Context, id uint) (models.Comment, error)
}

type ReactionReader interface {
	FetchReactionCounts(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind) ([]views.KindCount, error)
	FetchViewerReaction(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind, viewer uint) (*models.ReactionKind, error)
}

type MessageReader interface {
	FetchMessages(ctx context.Context, viewer uint) ([]models.Message, error)
}

type NotificationReader interface {
	FetchNotifications(ctx context.Context, viewer uint, unreadOnly bool) ([]models.Notification, error)
}

type Writer interface {
	InsertPost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, post models.Post) error
	InsertComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, comment models.Comment) error
	UpsertReaction(ctx context.Context, reaction *models.Reaction) error
	DeleteReaction(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind, account uint) error
	InsertMessage(ctx context.Context, message *models.Message) error
	InsertNotification(ctx context.Context, notification *models.Notification) error
	MarkMessagesRead(ctx context.Context, ids []uint, viewer uint) error
	MarkNotificationsRead(ctx context.Context, ids []uint, viewer uint) error
}

type AccountReader interface {
	FetchAccount(ctx context.Context, id uint) (models.Account, error)
	FetchAccountByUsername(ctx context.Context, username string) (models.Account, error)
	FetchFollowing(ctx context.Context, account uint) ([]models.Account, error)
	FetchFollowers(ctx context.Context, account uint) ([]models.Account, error)
	UpsertFollow(ctx context.Context, follower, followed uint) error
	DeleteFollow(ctx context.Context, follower, followed uint) error
}

type CommunityReader interface {
	FetchCommunities(ctx context.Context) ([]models.Community, error)
	FetchCommunity(ctx context.Context, name string) (models.Community, error)
	UpsertMembership(ctx context.Context, community, account uint) error
	DeleteMembership(ctx context.Context, community, account uint) error
}

type Searcher interface {
	Search(ctx context.Context, term string) ([]SearchResult, error)
}

// FactStore is the narrow boundary the core consumes the database through.
type FactStore interface {
	PostReader
	CommentReader
	ReactionReader
	MessageReader
	NotificationReader
	AccountReader
	CommunityReader
	Searcher
	Writer
}

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}
