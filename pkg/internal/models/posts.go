package models

import "gorm.io/datatypes"

const (
	PostTypeText  = "text"
	PostTypeMedia = "media"
)

type Post struct {
	BaseModel

	Type string            `json:"type"`
	Body datatypes.JSONMap `json:"body" gorm:"index:,type:gin"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	CommunityID uint      `json:"community_id"`
	Community   Community `json:"community"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`
}

type PostTextBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type PostMediaBody struct {
	Title    string  `json:"title"`
	MediaSrc string  `json:"media_src"`
	Caption  *string `json:"caption"`
}
