package models

import "time"

// Reply is a user-authored comment on a post.
// IsAgree is tri-state: nil means the author took no side.
type Reply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ReplyText string    `gorm:"not null" json:"reply_text"`
	IsAgree   *bool     `json:"is_agree"`
	CreatedAt time.Time `json:"created_at"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (Reply) TableName() string {
	return "replies"
}
