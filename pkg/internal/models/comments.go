package models

type Comment struct {
	BaseModel

	Message string `json:"message"`

	// ParentID is nil for top-level comments. A parent, when present,
	// must belong to the same post.
	ParentID *uint    `json:"parent_id" gorm:"index"`
	Parent   *Comment `json:"parent" gorm:"foreignKey:ParentID"`

	PostID uint `json:"post_id" gorm:"index"`
	Post   Post `json:"post"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
