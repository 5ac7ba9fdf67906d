package models

import "time"

// Blog is a published blog post. Description holds sanitized rich-text HTML;
// Image is the URL returned by the media host. Posts are write-once: no
// update or delete operation is exposed.
type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Type        string    `gorm:"size:64;not null" json:"type"`
	Author      string    `gorm:"size:128;not null" json:"author"`
	Image       string    `gorm:"size:512;not null" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
