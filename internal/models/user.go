// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered member of the Flare application.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Email          string    `json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture *string   `json:"profile_picture"`
	Bio            string    `json:"bio"`
	ReplyPoints    int       `gorm:"not null;default:0" json:"reply_points"`
	JoinDate       time.Time `gorm:"autoCreateTime" json:"join_date"`

	Posts   []Post  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Replies []Reply `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}
