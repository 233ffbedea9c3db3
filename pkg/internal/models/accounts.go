package models

import "time"

type Account struct {
	BaseModel

	Username    string `json:"username" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`
}

// Follow links a follower to the account they follow. The pair is the
// primary key so a duplicate insert is a no-op upsert.
type Follow struct {
	FollowerID uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint      `json:"followed_id" gorm:"primaryKey;autoIncrement:false"`
	FollowedAt time.Time `json:"followed_at" gorm:"autoCreateTime"`
}

type Membership struct {
	CommunityID uint      `json:"community_id" gorm:"primaryKey;autoIncrement:false"`
	AccountID   uint      `json:"account_id" gorm:"primaryKey;autoIncrement:false"`
	JoinedAt    time.Time `json:"joined_at" gorm:"autoCreateTime"`
}
