package views

import (
	"github.com/conclave-dev/conclave/pkg/internal/models"
)

type KindCount struct {
	Kind  models.ReactionKind `json:"kind"`
	Count int64               `json:"count"`
}

// Tally is the derived reaction summary for one subject. Total is the sum
// of all kind counts, a magnitude of engagement rather than a polarity
// score; the controversial feed ranking reads the like and dislike counts
// directly instead of re-deriving anything from Total.
type Tally struct {
	Counts           map[models.ReactionKind]int64 `json:"counts"`
	Total            int64                         `json:"total"`
	AuthUserReaction *models.ReactionKind          `json:"auth_user_reaction,omitempty"`
}

func (t Tally) Likes() int64 {
	return t.Counts[models.ReactionLike]
}

func (t Tally) Dislikes() int64 {
	return t.Counts[models.ReactionDislike]
}

// Aggregate folds raw per-kind counts into a tally. Unknown kinds cannot
// occur here, they are rejected at the mutation boundary before a row is
// ever written. The viewer's own reaction, when present, is carried over
// verbatim.
func Aggregate(counts []KindCount, viewer *models.ReactionKind) Tally {
	tally := Tally{
		Counts: make(map[models.ReactionKind]int64, len(models.ReactionKinds)),
	}
	for _, kind := range models.ReactionKinds {
		tally.Counts[kind] = 0
	}

	for _, entry := range counts {
		tally.Counts[entry.Kind] += entry.Count
		tally.Total += entry.Count
	}

	if viewer != nil {
		kind := *viewer
		tally.AuthUserReaction = &kind
	}

	return tally
}
