package models

import "time"

// One shared meal. Slug doubles as the primary key and the public URL
// segment, so it is never reused or rewritten once the row exists.
type Meal struct {
	Slug         string    `gorm:"primaryKey;size:255" json:"slug"`
	Title        string    `gorm:"not null" json:"title"`
	Creator      string    `gorm:"not null" json:"creator"`
	CreatorEmail string    `gorm:"not null" json:"creator_email"`
	Summary      string    `gorm:"not null" json:"summary"`
	Instructions string    `gorm:"not null" json:"instructions"` // sanitized before insert
	Image        string    `gorm:"not null" json:"image"`        // reference into the blob store
	CreatedAt    time.Time `json:"created_at"`
}
