package models

import "time"

// Post is a user-authored opinion, optionally written in response to a prompt.
// Vote counters only ever increase; decrements are not exposed anywhere.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PromptID      *uint     `json:"prompt_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	UpvoteCount   int       `gorm:"not null;default:0" json:"upvote_count"`
	DownvoteCount int       `gorm:"not null;default:0" json:"downvote_count"`
	PostText      string    `gorm:"not null" json:"post_text"`
	CreatedAt     time.Time `json:"created_at"`

	Prompt *Prompt `gorm:"foreignKey:PromptID;constraint:OnDelete:SET NULL" json:"prompt,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// VoteKind is the direction of a vote cast on a post.
type VoteKind string

const (
	VoteUpvote   VoteKind = "upvote"
	VoteDownvote VoteKind = "downvote"
)

// Valid reports whether k is a recognized vote kind.
func (k VoteKind) Valid() bool {
	return k == VoteUpvote || k == VoteDownvote
}

// VoteTotals aggregates the vote counters across all posts by one author.
type VoteTotals struct {
	UserID         uint `json:"user_id"`
	TotalUpvotes   int  `json:"total_upvotes"`
	TotalDownvotes int  `json:"total_downvotes"`
}
