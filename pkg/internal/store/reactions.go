package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	localCache "github.com/conclave-dev/conclave/pkg/internal/cache"
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/conclave-dev/conclave/pkg/internal/views"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	gocacheStore "github.com/eko/gocache/lib/v4/store"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func reactionTallyCacheKey(subjectKind models.ReactionSubjectKind, subjectID uint) string {
	return fmt.Sprintf("reaction-tally#%s#%d", subjectKind, subjectID)
}

// FetchReactionCounts returns the raw per-kind counts of one subject,
// served from the local cache when the subject was tallied recently.
func (s *Gorm) FetchReactionCounts(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind) ([]views.KindCount, error) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	cacheKey := reactionTallyCacheKey(subjectKind, subjectID)

	if cached, err := marshal.Get(ctx, cacheKey, new([]views.KindCount)); err == nil {
		return *cached.(*[]views.KindCount), nil
	}

	var counts []views.KindCount
	if err := s.db.WithContext(ctx).Model(&models.Reaction{}).
		Select("kind, COUNT(*) as count").
		Where("subject_id = ? AND subject_kind = ?", subjectID, subjectKind).
		Group("kind").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	_ = marshal.Set(ctx, cacheKey, counts,
		gocacheStore.WithExpiration(60*time.Second),
		gocacheStore.WithTags([]string{cacheKey}),
	)

	return counts, nil
}

func (s *Gorm) FetchViewerReaction(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind, viewer uint) (*models.ReactionKind, error) {
	var reaction models.Reaction
	if err := s.db.WithContext(ctx).
		Where("subject_id = ? AND subject_kind = ? AND account_id = ?", subjectID, subjectKind, viewer).
		First(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction.Kind, nil
}

// UpsertReaction keeps at most one row per (subject, account); a reaction
// of a different kind replaces the stored kind in place.
func (s *Gorm) UpsertReaction(ctx context.Context, reaction *models.Reaction) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "subject_id"}, {Name: "subject_kind"}, {Name: "account_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
	}).Create(reaction).Error; err != nil {
		return err
	}

	s.invalidateTally(ctx, reaction.SubjectKind, reaction.SubjectID)
	return nil
}

func (s *Gorm) DeleteReaction(ctx context.Context, subjectID uint, subjectKind models.ReactionSubjectKind, account uint) error {
	if err := s.db.WithContext(ctx).
		Where("subject_id = ? AND subject_kind = ? AND account_id = ?", subjectID, subjectKind, account).
		Delete(&models.Reaction{}).Error; err != nil {
		return err
	}

	s.invalidateTally(ctx, subjectKind, subjectID)
	return nil
}

func (s *Gorm) invalidateTally(ctx context.Context, subjectKind models.ReactionSubjectKind, subjectID uint) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	_ = marshal.Invalidate(ctx, gocacheStore.WithInvalidateTags([]string{
		reactionTallyCacheKey(subjectKind, subjectID),
	}))
}

// batchReactionCounts tallies many subjects in one grouped query.
func (s *Gorm) batchReactionCounts(ctx context.Context, idx []uint, subjectKind models.ReactionSubjectKind) (map[uint][]views.KindCount, error) {
	var rows []struct {
		SubjectID uint
		Kind      models.ReactionKind
		Count     int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Reaction{}).
		Select("subject_id, kind, COUNT(*) as count").
		Where("subject_id IN ? AND subject_kind = ?", idx, subjectKind).
		Group("subject_id, kind").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	grouped := lo.GroupBy(rows, func(row struct {
		SubjectID uint
		Kind      models.ReactionKind
		Count     int64
	}) uint {
		return row.SubjectID
	})

	mapping := make(map[uint][]views.KindCount, len(grouped))
	for id, entries := range grouped {
		mapping[id] = lo.Map(entries, func(row struct {
			SubjectID uint
			Kind      models.ReactionKind
			Count     int64
		}, _ int) views.KindCount {
			return views.KindCount{Kind: row.Kind, Count: row.Count}
		})
	}

	return mapping, nil
}
