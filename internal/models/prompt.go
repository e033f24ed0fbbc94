package models

// Prompt is a writing topic that posts may optionally respond to.
type Prompt struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PromptText string `gorm:"not null" json:"prompt_text"`
	Category   string `gorm:"index;not null" json:"category"`
}
