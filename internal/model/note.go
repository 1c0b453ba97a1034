package model

import "time"

// Note is a piece of text owned by a user id. The user id is not checked
// against the auth API's users.
type Note struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"not null;index"`
	Text      string     `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"not null"`
	UpdatedAt *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}
