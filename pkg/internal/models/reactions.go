package models

type ReactionKind = string

const (
	ReactionLike    = ReactionKind("like")
	ReactionLove    = ReactionKind("love")
	ReactionLaugh   = ReactionKind("laugh")
	ReactionDislike = ReactionKind("dislike")
	ReactionHate    = ReactionKind("hate")
)

var ReactionKinds = []ReactionKind{
	ReactionLike,
	ReactionLove,
	ReactionLaugh,
	ReactionDislike,
	ReactionHate,
}

type ReactionSubjectKind = string

const (
	ReactionSubjectPost    = ReactionSubjectKind("post")
	ReactionSubjectComment = ReactionSubjectKind("comment")
)

// Reaction holds at most one row per (subject, account). Reacting again
// with a different kind replaces the stored kind instead of adding a row.
type Reaction struct {
	BaseModel

	SubjectID   uint                `json:"subject_id" gorm:"uniqueIndex:idx_reactions_subject_account"`
	SubjectKind ReactionSubjectKind `json:"subject_kind" gorm:"uniqueIndex:idx_reactions_subject_account"`
	AccountID   uint                `json:"account_id" gorm:"uniqueIndex:idx_reactions_subject_account"`
	Kind        ReactionKind        `json:"kind"`
}
