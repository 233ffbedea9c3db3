package models

type Community struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo"`

	Posts []Post `json:"posts" gorm:"foreignKey:CommunityID"`
}
